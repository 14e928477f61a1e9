package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"

	"mazewalk/pkg/config"
	"mazewalk/pkg/sound"
)

const (
	sampleRate      = 44100
	framesPerBuffer = 1024
	numChannels     = 2
)

// AudioEngine plays gameplay cues on the default output device
type AudioEngine struct {
	config  config.AudioConfig
	mixer   *sound.Mixer
	stream  *portaudio.Stream
	mu      sync.Mutex
	running bool
}

// NewAudioEngine initializes PortAudio and starts the output stream
func NewAudioEngine(cfg config.AudioConfig) (*AudioEngine, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}

	synth := sound.NewSynth(sampleRate, time.Now().UnixNano())
	engine := &AudioEngine{
		config: cfg,
		mixer:  sound.NewMixer(synth, numChannels, float32(cfg.Volume)),
	}

	if err := engine.initAudio(); err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to initialize audio: %w", err)
	}

	return engine, nil
}

// initAudio opens and starts the output stream
func (ae *AudioEngine) initAudio() error {
	var err error

	ae.stream, err = portaudio.OpenDefaultStream(0, numChannels, sampleRate, framesPerBuffer, ae.mixer.Mix)
	if err != nil {
		return fmt.Errorf("failed to open audio stream: %w", err)
	}

	if err := ae.stream.Start(); err != nil {
		ae.stream.Close()
		return fmt.Errorf("failed to start audio stream: %w", err)
	}

	ae.running = true
	return nil
}

// Play queues a cue
func (ae *AudioEngine) Play(cue sound.Cue) {
	ae.mixer.Play(cue)
}

// Shutdown stops the stream and releases PortAudio
func (ae *AudioEngine) Shutdown() {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running {
		return
	}
	ae.running = false

	if ae.stream != nil {
		ae.stream.Stop()
		ae.stream.Close()
	}
	portaudio.Terminate()
}

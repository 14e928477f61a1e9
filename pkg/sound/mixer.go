package sound

import (
	"sync"

	"mazewalk/internal/util"
)

type voice struct {
	cue     Cue
	samples []float32
	pos     int
}

// Mixer sums playing cues into an interleaved output buffer. Play is called
// from the game loop and Mix from the audio callback.
type Mixer struct {
	mu       sync.Mutex
	synth    *Synth
	cache    map[Cue][]float32
	voices   []*voice
	volume   float32
	channels int
}

// NewMixer creates a mixer that pre-renders every cue
func NewMixer(synth *Synth, channels int, volume float32) *Mixer {
	m := &Mixer{
		synth:    synth,
		cache:    make(map[Cue][]float32),
		volume:   volume,
		channels: channels,
	}
	for _, cue := range []Cue{CueWallBump, CueJump, CueObstacleHit, CueGoal} {
		m.cache[cue] = synth.Generate(cue)
	}
	return m
}

// Play starts a cue. A cue that is already playing restarts instead of
// stacking, so holding a key against a wall does not pile up thuds.
func (m *Mixer) Play(cue Cue) {
	samples, ok := m.cache[cue]
	if !ok || len(samples) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.voices {
		if v.cue == cue {
			v.pos = 0
			return
		}
	}
	m.voices = append(m.voices, &voice{cue: cue, samples: samples})
}

// Active returns the number of cues still playing
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Mix overwrites out with the next block of interleaved frames
func (m *Mixer) Mix(out []float32) {
	for i := range out {
		out[i] = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	alive := m.voices[:0]
	for _, v := range m.voices {
		for i := 0; i+m.channels <= len(out) && v.pos < len(v.samples); i += m.channels {
			sample := v.samples[v.pos] * m.volume
			for c := 0; c < m.channels; c++ {
				out[i+c] += sample
			}
			v.pos++
		}
		if v.pos < len(v.samples) {
			alive = append(alive, v)
		}
	}
	for i := len(alive); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = alive

	for i := range out {
		out[i] = util.SoftClip(out[i])
	}
}

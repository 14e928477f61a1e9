package sound

import (
	"math"

	"mazewalk/internal/math/noise"
	"mazewalk/internal/util"
	"mazewalk/pkg/world"
)

// Cue identifies a short sound effect
type Cue int

const (
	CueWallBump Cue = iota
	CueJump
	CueObstacleHit
	CueGoal
)

func (c Cue) String() string {
	switch c {
	case CueWallBump:
		return "wall_bump"
	case CueJump:
		return "jump"
	case CueObstacleHit:
		return "obstacle_hit"
	case CueGoal:
		return "goal"
	}
	return "unknown"
}

// Synth renders cues into mono float32 samples
type Synth struct {
	sampleRate int
	noise      *noise.NoiseGenerator
	seed       int64
}

// NewSynth creates a synth for the given sample rate
func NewSynth(sampleRate int, seed int64) *Synth {
	return &Synth{
		sampleRate: sampleRate,
		noise:      noise.NewNoiseGenerator(seed),
		seed:       seed,
	}
}

// Generate renders a cue
func (s *Synth) Generate(cue Cue) []float32 {
	switch cue {
	case CueWallBump:
		return s.thud(0.12, 90)
	case CueJump:
		return s.sweep(0.18, 220, 440)
	case CueObstacleHit:
		return s.buzz(0.45, 300, 80)
	case CueGoal:
		return s.arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 0.12)
	}
	return nil
}

func (s *Synth) samples(seconds float64) []float32 {
	return make([]float32, int(seconds*float64(s.sampleRate)))
}

// envelope is a linear attack followed by exponential decay
func envelope(t, attack, decay float64) float64 {
	if t < attack {
		return t / attack
	}
	return math.Exp(-(t - attack) / decay)
}

// thud is a low sine impact with a little noise on top
func (s *Synth) thud(seconds, freq float64) []float32 {
	out := s.samples(seconds)
	for i := range out {
		t := float64(i) / float64(s.sampleRate)
		env := envelope(t, 0.005, 0.04)
		v := math.Sin(2*math.Pi*freq*t) + 0.3*s.noise.White()
		out[i] = float32(util.Clamp(v*env*0.8, -1, 1))
	}
	return out
}

// sweep glides linearly from one frequency to another
func (s *Synth) sweep(seconds, from, to float64) []float32 {
	out := s.samples(seconds)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(s.sampleRate)
		freq := util.Lerp(from, to, t/seconds)
		phase += 2 * math.Pi * freq / float64(s.sampleRate)
		out[i] = float32(math.Sin(phase) * envelope(t, 0.01, seconds/3) * 0.5)
	}
	return out
}

// buzz is a falling square tone roughened with gradient noise
func (s *Synth) buzz(seconds, from, to float64) []float32 {
	out := s.samples(seconds)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(s.sampleRate)
		freq := util.Lerp(from, to, t/seconds)
		phase += 2 * math.Pi * freq / float64(s.sampleRate)
		square := 1.0
		if math.Sin(phase) < 0 {
			square = -1.0
		}
		grit := s.noise.FBM1D(t*200, 3, s.seed)
		v := (0.7*square + 0.3*grit) * envelope(t, 0.01, seconds/2) * 0.5
		out[i] = float32(util.Clamp(v, -1, 1))
	}
	return out
}

// arpeggio plays each note in turn with a short decay
func (s *Synth) arpeggio(notes []float64, noteSeconds float64) []float32 {
	per := int(noteSeconds * float64(s.sampleRate))
	tail := per * 3
	out := make([]float32, per*len(notes)+tail)
	for n, freq := range notes {
		start := n * per
		for i := 0; start+i < len(out); i++ {
			t := float64(i) / float64(s.sampleRate)
			env := envelope(t, 0.005, noteSeconds)
			if env < 1e-3 {
				break
			}
			out[start+i] += float32(math.Sin(2*math.Pi*freq*t) * env * 0.3)
		}
	}
	return out
}

// CuesFor maps simulation events to the cues they trigger
func CuesFor(events world.Events) []Cue {
	var cues []Cue
	if events.Has(world.EventWallBump) {
		cues = append(cues, CueWallBump)
	}
	if events.Has(world.EventJump) {
		cues = append(cues, CueJump)
	}
	if events.Has(world.EventObstacleHit) {
		cues = append(cues, CueObstacleHit)
	}
	if events.Has(world.EventGoalReached) {
		cues = append(cues, CueGoal)
	}
	return cues
}

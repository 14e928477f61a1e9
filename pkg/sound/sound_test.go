package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazewalk/pkg/world"
)

const testRate = 8000

func TestCuesAreBounded(t *testing.T) {
	s := NewSynth(testRate, 1)

	for _, cue := range []Cue{CueWallBump, CueJump, CueObstacleHit, CueGoal} {
		t.Run(cue.String(), func(t *testing.T) {
			samples := s.Generate(cue)
			require.NotEmpty(t, samples)

			peak := float32(0)
			for _, v := range samples {
				assert.LessOrEqual(t, v, float32(1))
				assert.GreaterOrEqual(t, v, float32(-1))
				peak = max(peak, v)
			}
			assert.Greater(t, peak, float32(0.05), "cue should be audible")
		})
	}
}

func TestUnknownCueIsSilent(t *testing.T) {
	assert.Nil(t, NewSynth(testRate, 1).Generate(Cue(99)))
	assert.Equal(t, "unknown", Cue(99).String())
}

func TestMixerPlaysAndDrains(t *testing.T) {
	m := NewMixer(NewSynth(testRate, 1), 2, 1.0)
	out := make([]float32, 512)

	m.Mix(out)
	for _, v := range out {
		require.Zero(t, v)
	}

	m.Play(CueWallBump)
	m.Play(CueWallBump)
	assert.Equal(t, 1, m.Active(), "same cue restarts rather than stacking")

	m.Mix(out)
	assert.Equal(t, out[0], out[1], "mono cue is copied to both channels")
	nonZero := false
	for _, v := range out {
		if v != 0 {
			nonZero = true
			break
		}
	}
	assert.True(t, nonZero)

	// 0.12 s at 8 kHz is 960 frames, 256 frames per block
	for i := 0; i < 4; i++ {
		m.Mix(out)
	}
	assert.Zero(t, m.Active())
}

func TestMixerVolume(t *testing.T) {
	m := NewMixer(NewSynth(testRate, 1), 1, 0)
	out := make([]float32, 256)

	m.Play(CueGoal)
	m.Mix(out)
	for _, v := range out {
		assert.Zero(t, v)
	}
}

func TestCuesFor(t *testing.T) {
	assert.Empty(t, CuesFor(0))
	assert.Equal(t, []Cue{CueWallBump}, CuesFor(world.EventWallBump))
	assert.Equal(t,
		[]Cue{CueJump, CueObstacleHit, CueGoal},
		CuesFor(world.EventJump|world.EventObstacleHit|world.EventGoalReached))
}

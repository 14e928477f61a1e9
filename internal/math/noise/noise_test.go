package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerlin1DZeroOnLattice(t *testing.T) {
	ng := NewNoiseGenerator(1)
	for x := -3; x <= 3; x++ {
		assert.InDelta(t, 0.0, ng.Perlin1D(float64(x), 7), 1e-12)
	}
}

func TestNoiseRanges(t *testing.T) {
	ng := NewNoiseGenerator(42)
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.037

		w := ng.White()
		assert.GreaterOrEqual(t, w, -1.0)
		assert.Less(t, w, 1.0)

		f := ng.FBM1D(x, 4, 3)
		assert.GreaterOrEqual(t, f, -1.0-1e-9)
		assert.LessOrEqual(t, f, 1.0+1e-9)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewNoiseGenerator(5), NewNoiseGenerator(5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.White(), b.White())
	}
}

package noise

import (
	"math"
	"math/rand"
)

// NoiseGenerator produces seeded white and gradient noise
type NoiseGenerator struct {
	rng *rand.Rand
}

// NewNoiseGenerator creates a new noise generator with the given seed
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// White returns a uniform sample in [-1, 1)
func (ng *NoiseGenerator) White() float64 {
	return ng.rng.Float64()*2.0 - 1.0
}

// Perlin1D generates 1D gradient noise, zero at integer lattice points
func (ng *NoiseGenerator) Perlin1D(x float64, seed int64) float64 {
	x0 := math.Floor(x)
	x1 := x0 + 1.0

	sx := smoothstep(x - x0)

	g0 := gradient1D(hash(int(x0), int(seed)))
	g1 := gradient1D(hash(int(x1), int(seed)))

	v0 := g0 * (x - x0)
	v1 := g1 * (x - x1)

	return lerp(v0, v1, sx) * 2.0
}

// FBM1D sums octaves of Perlin1D; the result stays within [-1, 1]
func (ng *NoiseGenerator) FBM1D(x float64, octaves int, seed int64) float64 {
	sum, amp, norm := 0.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		sum += ng.Perlin1D(x, seed+int64(i)) * amp
		norm += amp
		x *= 2.0
		amp *= 0.5
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func hash(x, seed int) int {
	h := seed + x*374761393
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

func gradient1D(hash int) float64 {
	if hash&1 == 0 {
		return 1.0
	}
	return -1.0
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// smoothstep is the improved Perlin fade: 6t^5 - 15t^4 + 10t^3
func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

package util

import "math"

// Lerp performs linear interpolation between a and b with t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// SoftClip passes samples below the knee unchanged and compresses the rest
// so the output never leaves [-1, 1]
func SoftClip(v float32) float32 {
	const knee = 0.8
	x := float64(v)
	switch {
	case x > knee:
		return float32(knee + (1-knee)*math.Tanh((x-knee)/(1-knee)))
	case x < -knee:
		return float32(-knee - (1-knee)*math.Tanh((-x-knee)/(1-knee)))
	}
	return v
}

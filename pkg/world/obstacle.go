package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Obstacle is a cube sliding back and forth along Z
type Obstacle struct {
	X         float32
	BaseZ     float32
	Amplitude float32
	Size      float32
	RenderY   float32 // Height the cube is drawn at
	HitY      float32 // Height the hit test is centred at

	z float32
}

// NewObstacle creates an obstacle at its t=0 position
func NewObstacle(x, baseZ, amplitude, size, hitY float32) *Obstacle {
	return &Obstacle{
		X:         x,
		BaseZ:     baseZ,
		Amplitude: amplitude,
		Size:      size,
		RenderY:   0.1,
		HitY:      hitY,
		z:         baseZ,
	}
}

// Update moves the obstacle to its position at elapsed time t (seconds)
func (o *Obstacle) Update(t float64) {
	o.z = o.BaseZ + o.Amplitude*float32(math.Sin(t))
}

// Z returns the current Z coordinate
func (o *Obstacle) Z() float32 { return o.z }

// Center returns the hit-test centre
func (o *Obstacle) Center() mgl32.Vec3 {
	return mgl32.Vec3{o.X, o.HitY, o.z}
}

// HitRadius is the distance under which the player touches the obstacle
func (o *Obstacle) HitRadius() float32 {
	return o.Size + 0.5
}

// Hits reports whether a player at pos touches the obstacle
func (o *Obstacle) Hits(pos mgl32.Vec3) bool {
	return pos.Sub(o.Center()).Len() < o.HitRadius()
}

package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera limits
const (
	MinPitch = -89.0
	MaxPitch = 89.0
	MinFOV   = 1.0
	MaxFOV   = 45.0

	nearPlane = 0.1
	farPlane  = 100.0
)

// Direction is a horizontal movement direction
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera is a yaw/pitch first-person camera
type Camera struct {
	Position    mgl32.Vec3
	Front       mgl32.Vec3
	Up          mgl32.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	Sensitivity float32

	start mgl32.Vec3
}

// NewCamera creates a camera at start looking down +Z
func NewCamera(start mgl32.Vec3, sensitivity float32) *Camera {
	c := &Camera{
		Up:          mgl32.Vec3{0, 1, 0},
		FOV:         MaxFOV,
		Sensitivity: sensitivity,
		start:       start,
	}
	c.Reset()
	return c
}

// Reset returns the camera to its start pose. FOV is kept.
func (c *Camera) Reset() {
	c.Position = c.start
	c.Yaw = 90
	c.Pitch = 0
	c.updateFront()
}

// ProcessMouse applies a cursor offset; positive dy looks up
func (c *Camera) ProcessMouse(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, MinPitch, MaxPitch)
	c.updateFront()
}

// ProcessScroll zooms by changing the field of view
func (c *Camera) ProcessScroll(dy float32) {
	c.FOV = mgl32.Clamp(c.FOV-dy, MinFOV, MaxFOV)
}

// Displacement returns the offset a move of the given length would apply.
// Forward and backward follow the horizontal projection of Front.
func (c *Camera) Displacement(dir Direction, distance float32) mgl32.Vec3 {
	switch dir {
	case Forward:
		return c.flatFront().Mul(distance)
	case Backward:
		return c.flatFront().Mul(-distance)
	case Left:
		return c.right().Mul(-distance)
	case Right:
		return c.right().Mul(distance)
	}
	return mgl32.Vec3{}
}

// Move applies a displacement without any collision check
func (c *Camera) Move(dir Direction, distance float32) {
	c.Position = c.Position.Add(c.Displacement(dir, distance))
}

// ViewMatrix returns the look-at matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, nearPlane, farPlane)
}

func (c *Camera) flatFront() mgl32.Vec3 {
	flat := mgl32.Vec3{c.Front.X(), 0, c.Front.Z()}
	if flat.Len() == 0 {
		return flat
	}
	return flat.Normalize()
}

func (c *Camera) right() mgl32.Vec3 {
	r := c.Front.Cross(c.Up)
	if r.Len() == 0 {
		return r
	}
	return r.Normalize()
}

func (c *Camera) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

package world

import "github.com/go-gl/mathgl/mgl32"

// Jump holds the vertical motion state of the player
type Jump struct {
	Active   bool
	Velocity float32

	Gravity         float32 // Negative, units per second squared
	InitialVelocity float32
	GroundY         float32
}

// NewJump creates an idle jump state
func NewJump(gravity, initialVelocity, groundY float32) *Jump {
	return &Jump{
		Gravity:         gravity,
		InitialVelocity: initialVelocity,
		GroundY:         groundY,
	}
}

// Start begins a jump. It returns false if one is already in progress.
func (j *Jump) Start() bool {
	if j.Active {
		return false
	}
	j.Active = true
	j.Velocity = j.InitialVelocity
	return true
}

// Update integrates the jump and lands the position on the ground
func (j *Jump) Update(pos *mgl32.Vec3, dt float32) {
	if !j.Active {
		return
	}

	pos[1] += j.Velocity * dt
	j.Velocity += j.Gravity * dt

	if pos[1] <= j.GroundY {
		pos[1] = j.GroundY
		j.Cancel()
	}
}

// Cancel stops any jump in progress
func (j *Jump) Cancel() {
	j.Active = false
	j.Velocity = 0
}

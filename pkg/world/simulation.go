package world

import "github.com/go-gl/mathgl/mgl32"

// Settings are the tunables of the simulation
type Settings struct {
	Start            mgl32.Vec3
	MoveSpeed        float32
	MouseSensitivity float32
	CameraRadius     float32

	Gravity      float32
	JumpVelocity float32
	GroundY      float32

	ObstacleX         float32
	ObstacleBaseZ     float32
	ObstacleAmplitude float32
	ObstacleSize      float32
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		Start:             mgl32.Vec3{1, 1, 1},
		MoveSpeed:         2.0,
		MouseSensitivity:  0.05,
		CameraRadius:      0.15,
		Gravity:           -9.8,
		JumpVelocity:      5.0,
		GroundY:           1.0,
		ObstacleX:         3.0,
		ObstacleBaseZ:     5.0,
		ObstacleAmplitude: 3.0,
		ObstacleSize:      0.5,
	}
}

// MaxStep is the longest time in seconds a single Step integrates
const MaxStep = 0.1

// FrameInput is the input sampled for one frame
type FrameInput struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool

	MouseDX float32
	MouseDY float32 // Positive looks up
	ScrollY float32
}

// Events is a bit set of things that happened during a step
type Events uint8

const (
	EventWallBump Events = 1 << iota
	EventJump
	EventObstacleHit
	EventGoalReached
)

// Has reports whether e contains all of flag
func (e Events) Has(flag Events) bool {
	return e&flag == flag
}

// State is the whole mutable simulation, advanced once per frame
type State struct {
	Maze     *Maze
	Camera   *Camera
	Jump     *Jump
	Obstacle *Obstacle
	Won      bool

	// LastWall is the most recent wall cell that blocked a move
	LastWall Cell

	settings Settings
}

// NewState creates a simulation over the given maze
func NewState(maze *Maze, s Settings) *State {
	return &State{
		Maze:     maze,
		Camera:   NewCamera(s.Start, s.MouseSensitivity),
		Jump:     NewJump(s.Gravity, s.JumpVelocity, s.GroundY),
		Obstacle: NewObstacle(s.ObstacleX, s.ObstacleBaseZ, s.ObstacleAmplitude, s.ObstacleSize, s.GroundY),
		settings: s,
	}
}

// Step advances the simulation by dt seconds; now is the elapsed time since
// start and drives the obstacle.
func (s *State) Step(in FrameInput, dt, now float64) Events {
	if s.Won {
		return 0
	}

	// One step moves at most MoveSpeed*MaxStep, less than a cell
	dt = min(dt, MaxStep)

	var events Events
	cam := s.Camera

	// Look first so the move follows this frame's view
	if in.MouseDX != 0 || in.MouseDY != 0 {
		cam.ProcessMouse(in.MouseDX, in.MouseDY)
	}
	if in.ScrollY != 0 {
		cam.ProcessScroll(in.ScrollY)
	}

	// Tentative horizontal move, rejected as a whole on wall contact
	distance := s.settings.MoveSpeed * float32(dt)
	var offset mgl32.Vec3
	moved := false
	for dir, held := range [...]bool{
		Forward:  in.Forward,
		Backward: in.Backward,
		Left:     in.Left,
		Right:    in.Right,
	} {
		if held {
			offset = offset.Add(cam.Displacement(Direction(dir), distance))
			moved = true
		}
	}
	if moved {
		candidate := cam.Position.Add(offset)
		if cell, hit := s.Maze.CollidesAt(candidate, s.settings.CameraRadius); hit {
			s.LastWall = cell
			events |= EventWallBump
		} else {
			cam.Position = candidate
		}
	}

	if in.Jump && s.Jump.Start() {
		events |= EventJump
	}

	s.Jump.Update(&cam.Position, float32(dt))

	s.Obstacle.Update(now)
	if s.Obstacle.Hits(cam.Position) {
		cam.Reset()
		s.Jump.Cancel()
		events |= EventObstacleHit
	}

	if s.ReachedGoal() {
		s.Won = true
		events |= EventGoalReached
	}

	return events
}

// ReachedGoal reports whether the camera is inside the goal region
func (s *State) ReachedGoal() bool {
	goal := s.Maze.Goal()
	pos := s.Camera.Position
	return pos.X() >= float32(goal.X) && pos.Z() >= float32(goal.Z)
}

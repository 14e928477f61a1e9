package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *State {
	return NewState(DefaultMaze(), DefaultSettings())
}

func TestPitchIsClamped(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 1, 1}, 0.05)

	c.ProcessMouse(0, 10000)
	assert.Equal(t, float32(MaxPitch), c.Pitch)
	assert.InDelta(t, math.Sin(89*math.Pi/180), c.Front.Y(), 1e-5)

	c.ProcessMouse(0, -20000)
	assert.Equal(t, float32(MinPitch), c.Pitch)
}

func TestMouseTurnsYaw(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 1, 1}, 0.05)
	assert.InDelta(t, 1.0, c.Front.Z(), 1e-5)

	// 1800 px * 0.05 = 90 degrees
	c.ProcessMouse(1800, 0)
	assert.InDelta(t, 180.0, c.Yaw, 1e-4)
	assert.InDelta(t, -1.0, c.Front.X(), 1e-5)
}

func TestFOVIsClamped(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 1, 1}, 0.05)
	assert.Equal(t, float32(45), c.FOV)

	c.ProcessScroll(5)
	assert.Equal(t, float32(40), c.FOV)

	c.ProcessScroll(100)
	assert.Equal(t, float32(MinFOV), c.FOV)

	c.ProcessScroll(-100)
	assert.Equal(t, float32(MaxFOV), c.FOV)
}

func TestCameraMoveIgnoresPitch(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 1, 1}, 0.05)
	c.ProcessMouse(0, 600) // look 30 degrees up

	c.Move(Forward, 2)
	assert.InDelta(t, 1.0, c.Position.Y(), 1e-5)
	assert.InDelta(t, 3.0, c.Position.Z(), 1e-5)

	// Right of +Z with +Y up is -X
	c.Move(Right, 1)
	assert.InDelta(t, 0.0, c.Position.X(), 1e-5)
}

func TestJumpReturnsToGround(t *testing.T) {
	j := NewJump(-9.8, 5.0, 1.0)
	pos := mgl32.Vec3{1, 1, 1}

	require.True(t, j.Start())
	assert.False(t, j.Start(), "cannot jump while airborne")

	peak := pos.Y()
	for i := 0; i < 1000 && j.Active; i++ {
		j.Update(&pos, 1.0/60)
		peak = max(peak, pos.Y())
	}

	assert.False(t, j.Active)
	assert.Equal(t, float32(1.0), pos.Y())
	assert.Zero(t, j.Velocity)
	assert.Greater(t, peak, float32(2.0))
}

func TestStepMovesForward(t *testing.T) {
	s := newTestState()

	events := s.Step(FrameInput{Forward: true}, 0.1, 0)

	assert.Zero(t, events)
	assert.InDelta(t, 1.0, s.Camera.Position.X(), 1e-5)
	assert.InDelta(t, 1.2, s.Camera.Position.Z(), 1e-5)
	assert.InDelta(t, 1.0, s.Camera.Position.Y(), 1e-5)
}

func TestStepRejectsWallMove(t *testing.T) {
	s := newTestState()

	// Looking down +Z, left is +X towards the wall column at x=2
	require.Zero(t, s.Step(FrameInput{Left: true}, 0.1, 0))
	before := s.Camera.Position
	assert.InDelta(t, 1.2, before.X(), 1e-5)

	events := s.Step(FrameInput{Left: true}, 0.1, 0)

	assert.True(t, events.Has(EventWallBump))
	assert.Equal(t, before, s.Camera.Position)
	assert.Equal(t, Cell{X: 2, Z: 1}, s.LastWall)
}

func TestStepLooksBeforeMoving(t *testing.T) {
	s := newTestState()

	// 1800 px * 0.05 = 90 degrees, turning from +Z to -X
	s.Step(FrameInput{Forward: true, MouseDX: 1800}, 0.1, 0)

	assert.InDelta(t, 0.8, s.Camera.Position.X(), 1e-5)
	assert.InDelta(t, 1.0, s.Camera.Position.Z(), 1e-5)
}

func TestStepClampsLongFrames(t *testing.T) {
	s := newTestState()

	s.Step(FrameInput{Forward: true}, 5.0, 0)

	assert.InDelta(t, 1.0+2.0*MaxStep, s.Camera.Position.Z(), 1e-5)
}

func TestStepJump(t *testing.T) {
	s := newTestState()

	events := s.Step(FrameInput{Jump: true}, 1.0/60, 0)
	assert.True(t, events.Has(EventJump))
	assert.Greater(t, s.Camera.Position.Y(), float32(1.0))

	for i := 0; i < 200; i++ {
		s.Step(FrameInput{}, 1.0/60, 0)
	}
	assert.False(t, s.Jump.Active)
	assert.Equal(t, float32(1.0), s.Camera.Position.Y())
}

func TestObstacleHitResetsCamera(t *testing.T) {
	s := newTestState()
	s.Camera.Position = mgl32.Vec3{3, 1, 5}
	s.Camera.ProcessMouse(300, 100)

	events := s.Step(FrameInput{}, 1.0/60, 0)

	assert.True(t, events.Has(EventObstacleHit))
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, s.Camera.Position)
	assert.Equal(t, float32(90), s.Camera.Yaw)
	assert.Equal(t, float32(0), s.Camera.Pitch)
}

func TestJumpClearsObstacle(t *testing.T) {
	s := newTestState()
	s.Camera.Position = mgl32.Vec3{3, 2.5, 5}
	s.Jump.Active = true

	events := s.Step(FrameInput{}, 1.0/60, 0)

	assert.False(t, events.Has(EventObstacleHit))
	assert.InDelta(t, 2.5, s.Camera.Position.Y(), 1e-5)
	assert.InDelta(t, 5.0, s.Camera.Position.Z(), 1e-5)
}

func TestObstacleFollowsSine(t *testing.T) {
	o := NewObstacle(3, 5, 3, 0.5, 1)

	o.Update(math.Pi / 2)
	assert.InDelta(t, 8.0, o.Z(), 1e-5)

	o.Update(3 * math.Pi / 2)
	assert.InDelta(t, 2.0, o.Z(), 1e-5)
	assert.InDelta(t, 1.0, o.HitRadius(), 1e-6)
}

func TestReachingGoalWins(t *testing.T) {
	s := newTestState()
	s.Camera.Position = mgl32.Vec3{8, 1, 8}

	events := s.Step(FrameInput{}, 1.0/60, 0)
	assert.True(t, events.Has(EventGoalReached))
	assert.True(t, s.Won)

	assert.Zero(t, s.Step(FrameInput{Forward: true}, 1.0/60, 0), "finished game ignores input")
	assert.Equal(t, mgl32.Vec3{8, 1, 8}, s.Camera.Position)
}

func TestBuildScene(t *testing.T) {
	s := newTestState()
	s.Obstacle.Update(math.Pi / 2)

	scene := BuildScene(s, 4.0/3.0)

	assert.Len(t, scene.Walls, len(s.Maze.Walls()))
	assert.Equal(t, mgl32.Vec4{4.5, -0.5, 4.5, 1}, scene.Floor.Col(3))
	assert.Equal(t, mgl32.Vec4{8, 0.5, 8, 1}, scene.Goal.Col(3))

	obstacle := scene.Obstacle.Col(3)
	assert.InDelta(t, 3.0, obstacle.X(), 1e-5)
	assert.InDelta(t, 8.0, obstacle.Z(), 1e-5)
	assert.Equal(t, mgl32.Vec4{0.2, 0.3, 0.3, 1.0}, scene.ClearColor)
}

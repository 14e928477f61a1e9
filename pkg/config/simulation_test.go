package config

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazewalk/pkg/world"
)

func TestDefaultSimulationMatchesWorldDefaults(t *testing.T) {
	assert.Equal(t, world.DefaultSettings(), DefaultConfig().Simulation())
}

func TestSimulationStartsAtGroundHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.GroundHeight = 1.5

	s := cfg.Simulation()
	assert.Equal(t, mgl32.Vec3{1, 1.5, 1}, s.Start)
	assert.Equal(t, float32(1.5), s.GroundY)
}

func TestBuildMaze(t *testing.T) {
	cfg := DefaultConfig()
	m, err := cfg.BuildMaze()
	require.NoError(t, err)
	assert.Equal(t, world.DefaultMaze().Walls(), m.Walls())

	cfg.Maze.Layout = []string{"#"}
	_, err = cfg.BuildMaze()
	assert.True(t, errors.Is(err, world.ErrInvalidMaze))
}

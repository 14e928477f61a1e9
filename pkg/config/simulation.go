package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"mazewalk/pkg/world"
)

// Simulation converts the tunables into simulation settings. The player
// starts on world.StartCell at ground height.
func (c *Config) Simulation() world.Settings {
	return world.Settings{
		Start:             mgl32.Vec3{float32(world.StartCell.X), c.Physics.GroundHeight, float32(world.StartCell.Z)},
		MoveSpeed:         c.Controls.MoveSpeed,
		MouseSensitivity:  c.Controls.MouseSensitivity,
		CameraRadius:      c.Physics.CameraRadius,
		Gravity:           c.Physics.Gravity,
		JumpVelocity:      c.Physics.JumpVelocity,
		GroundY:           c.Physics.GroundHeight,
		ObstacleX:         c.Obstacle.X,
		ObstacleBaseZ:     c.Obstacle.BaseZ,
		ObstacleAmplitude: c.Obstacle.Amplitude,
		ObstacleSize:      c.Obstacle.Size,
	}
}

// BuildMaze returns the configured layout, or the built-in one when none is set
func (c *Config) BuildMaze() (*world.Maze, error) {
	if len(c.Maze.Layout) == 0 {
		return world.DefaultMaze(), nil
	}
	return world.ParseMaze(c.Maze.Layout)
}

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the main configuration
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Controls ControlsConfig `yaml:"controls"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Maze     MazeConfig     `yaml:"maze"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Textures TexturesConfig `yaml:"textures"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig contains window and frame loop settings
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	VSync     bool   `yaml:"vsync"`
	FrameRate int    `yaml:"framerate"` // 0 disables the cap
}

// ControlsConfig contains first-person control tuning
type ControlsConfig struct {
	MoveSpeed        float32 `yaml:"move_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

// PhysicsConfig contains player body and jump tuning
type PhysicsConfig struct {
	CameraRadius float32 `yaml:"camera_radius"`
	Gravity      float32 `yaml:"gravity"`
	JumpVelocity float32 `yaml:"jump_velocity"`
	GroundHeight float32 `yaml:"ground_height"`
}

// MazeConfig describes the maze layout; empty means the built-in one
type MazeConfig struct {
	Layout []string `yaml:"layout"`
}

// ObstacleConfig describes the moving cube
type ObstacleConfig struct {
	X         float32 `yaml:"x"`
	BaseZ     float32 `yaml:"base_z"`
	Amplitude float32 `yaml:"amplitude"`
	Size      float32 `yaml:"size"`
}

// TexturesConfig contains texture file paths
type TexturesConfig struct {
	Floor string `yaml:"floor"`
	Wall  string `yaml:"wall"`
}

// AudioConfig contains audio-related configuration
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Optional, logs to stdout and file when set
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1600,
			Height:    1200,
			Title:     "3D Maze",
			VSync:     true,
			FrameRate: 0,
		},
		Controls: ControlsConfig{
			MoveSpeed:        2.0,
			MouseSensitivity: 0.05,
		},
		Physics: PhysicsConfig{
			CameraRadius: 0.15,
			Gravity:      -9.8,
			JumpVelocity: 5.0,
			GroundHeight: 1.0,
		},
		Obstacle: ObstacleConfig{
			X:         3.0,
			BaseZ:     5.0,
			Amplitude: 3.0,
			Size:      0.5,
		},
		Textures: TexturesConfig{
			Floor: "assets/textures/floor.jpg",
			Wall:  "assets/textures/wall.jpg",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a file on top of the defaults.
// A missing file returns the defaults with an error wrapping fs.ErrNotExist.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("reading config %s: %w", filePath, err)
	}

	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", filePath, err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := config.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serializing config: %w", err)
	}
	return data, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.FrameRate < 0:
		return fmt.Errorf("%w: negative framerate", ErrInvalidConfig)
	case c.Controls.MoveSpeed <= 0:
		return fmt.Errorf("%w: move_speed must be positive", ErrInvalidConfig)
	case c.Controls.MouseSensitivity <= 0:
		return fmt.Errorf("%w: mouse_sensitivity must be positive", ErrInvalidConfig)
	case c.Physics.CameraRadius <= 0 || c.Physics.CameraRadius >= 0.5:
		return fmt.Errorf("%w: camera_radius must be in (0, 0.5)", ErrInvalidConfig)
	case c.Physics.Gravity >= 0:
		return fmt.Errorf("%w: gravity must be negative", ErrInvalidConfig)
	case c.Physics.JumpVelocity <= 0:
		return fmt.Errorf("%w: jump_velocity must be positive", ErrInvalidConfig)
	case c.Obstacle.Size <= 0:
		return fmt.Errorf("%w: obstacle size must be positive", ErrInvalidConfig)
	case c.Textures.Floor == "" || c.Textures.Wall == "":
		return fmt.Errorf("%w: both texture paths are required", ErrInvalidConfig)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume must be in [0, 1]", ErrInvalidConfig)
	}
	return nil
}

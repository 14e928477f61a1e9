package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, float32(0.05), cfg.Controls.MouseSensitivity)
	assert.Empty(t, cfg.Maze.Layout)
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  width: 800
  height: 600
controls:
  move_speed: 3.5
textures:
  floor: floor.png
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, float32(3.5), cfg.Controls.MoveSpeed)
	assert.Equal(t, "floor.png", cfg.Textures.Floor)
	assert.Equal(t, "assets/textures/wall.jpg", cfg.Textures.Wall, "untouched keys keep defaults")
	assert.Equal(t, float32(-9.8), cfg.Physics.Gravity)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"unknown key", "window:\n  depth: 3\n", false},
		{"malformed yaml", "window: [\n", false},
		{"positive gravity", "physics:\n  gravity: 9.8\n", true},
		{"huge camera", "physics:\n  camera_radius: 0.7\n", true},
		{"loud", "audio:\n  volume: 1.5\n", true},
		{"empty texture", "textures:\n  wall: \"\"\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Maze.Layout = []string{"##", ".."}
	cfg.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

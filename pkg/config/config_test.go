package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{30, 30, 40, 255}, bg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
fps = 30
edge_color = "#ff0000"
log_level = "debug"

[camera]
fov = 45
depth_perspective = false
`))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "#1e1e28", cfg.Background, "unset keys keep their defaults")
	assert.Equal(t, 45.0, cfg.Camera.FOV)
	assert.Equal(t, 5.0, cfg.Camera.Distance)
	assert.False(t, cfg.Camera.DepthPerspective)

	edge, err := cfg.Edge()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, edge)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid toml", "fps = "},
		{"wrong type", `fps = "fast"`},
		{"zero fps", "fps = 0"},
		{"bad scale", "snapshot_scale = -1"},
		{"bad fov", "[camera]\nfov = 180"},
		{"bad distance", "[camera]\ndistance = 0"},
		{"bad depth distance", "[camera]\ndepth_distance = -2"},
		{"bad background", `background = "navy"`},
		{"bad edge color", `edge_color = "#12"`},
		{"bad log level", `log_level = "loud"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("fps = 24\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.FPS)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefaultMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

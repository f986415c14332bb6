// Package config loads the viewer configuration file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/taigrr/tesseract/pkg/scene"
)

// Config holds the viewer settings. Zero fields in a file keep their
// defaults.
type Config struct {
	FPS           int    `toml:"fps"`
	Background    string `toml:"background"`
	EdgeColor     string `toml:"edge_color"`
	LogLevel      string `toml:"log_level"`
	SnapshotScale int    `toml:"snapshot_scale"`
	SnapshotDir   string `toml:"snapshot_dir"`

	Camera Camera `toml:"camera"`
}

// Camera holds the default camera settings.
type Camera struct {
	Distance         float64 `toml:"distance"`
	FOV              float64 `toml:"fov"` // degrees
	Orthogonal       bool    `toml:"orthogonal"`
	DepthPerspective bool    `toml:"depth_perspective"`
	DepthDistance    float64 `toml:"depth_distance"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FPS:           60,
		Background:    "#1e1e28",
		EdgeColor:     "#00ff80",
		LogLevel:      "info",
		SnapshotScale: 4,
		SnapshotDir:   ".",
		Camera: Camera{
			Distance:         5,
			FOV:              60,
			DepthPerspective: true,
			DepthDistance:    3,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "tesseract", "config.toml"), nil
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// LoadDefault reads the per-user config file. A missing file gives the
// defaults.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes TOML data on top of the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and color strings.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.SnapshotScale <= 0 {
		return fmt.Errorf("snapshot_scale must be positive, got %d", c.SnapshotScale)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("camera.distance must be positive, got %g", c.Camera.Distance)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be between 0 and 180 degrees, got %g", c.Camera.FOV)
	}
	if c.Camera.DepthPerspective && c.Camera.DepthDistance <= 0 {
		return fmt.Errorf("camera.depth_distance must be positive, got %g", c.Camera.DepthDistance)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := c.Edge(); err != nil {
		return fmt.Errorf("edge_color: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background color.
func (c Config) BackgroundColor() (color.RGBA, error) {
	return scene.ParseColor(c.Background)
}

// Edge returns the parsed default edge color.
func (c Config) Edge() (color.RGBA, error) {
	return scene.ParseColor(c.EdgeColor)
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

package ccircle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle  = "CC Window"
	DefaultWidth  = 640
	DefaultHeight = 480

	// MaxDimension caps requested window sizes before they reach the driver.
	MaxDimension = 16384
)

// WindowConfig describes a window to create. Zero values mean defaults. The
// position is used only when both X and Y are set; otherwise the windowing
// system chooses it, and Normalize drops a lone coordinate.
type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  uint   `yaml:"width" toml:"width"`
	Height uint   `yaml:"height" toml:"height"`
	X      *int   `yaml:"x,omitempty" toml:"x,omitempty"`
	Y      *int   `yaml:"y,omitempty" toml:"y,omitempty"`
}

// NewWindowConfig returns a config for the given title with default geometry.
func NewWindowConfig(title string) WindowConfig {
	return WindowConfig{Title: title}.Normalize()
}

// At returns a copy of the config positioned at (x, y).
func (c WindowConfig) At(x, y int) WindowConfig {
	c.X = &x
	c.Y = &y
	return c
}

// Normalize fills defaults and clamps oversized dimensions.
func (c WindowConfig) Normalize() WindowConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if (c.X == nil) != (c.Y == nil) {
		c.X, c.Y = nil, nil
	}
	if c.Width > MaxDimension {
		c.Width = MaxDimension
	}
	if c.Height > MaxDimension {
		c.Height = MaxDimension
	}
	return c
}

func (c WindowConfig) surfaceConfig() SurfaceConfig {
	n := c.Normalize()
	return SurfaceConfig{
		Title:  n.Title,
		Width:  int(n.Width),
		Height: int(n.Height),
		X:      n.X,
		Y:      n.Y,
		Format: DefaultPixelFormat,
	}
}

// LoadConfig reads a WindowConfig from a .yaml, .yml or .toml file.
func LoadConfig(path string) (WindowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(filepath.Ext(path), data)
}

// ParseConfig decodes data according to the file extension ext.
func ParseConfig(ext string, data []byte) (WindowConfig, error) {
	var cfg WindowConfig
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return WindowConfig{}, fmt.Errorf("parse yaml config: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return WindowConfig{}, fmt.Errorf("parse toml config: %w", err)
		}
	default:
		return WindowConfig{}, fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg.Normalize(), nil
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxAnimatedFrames caps max_frames when animated output is on: every frame
// of the animation stays in memory until the run ends.
const MaxAnimatedFrames = 1000

// Config holds the scene, animation and output settings.
type Config struct {
	// View
	ZAngle        float64 `json:"z_angle" yaml:"z_angle"`
	XAngle        float64 `json:"x_angle" yaml:"x_angle"`
	ViewWidth     float64 `json:"view_width" yaml:"view_width"`
	FallbackBasis bool    `json:"fallback_basis" yaml:"fallback_basis"`

	// Animation
	AngularStep float64 `json:"angular_step" yaml:"angular_step"`
	Substeps    int     `json:"substeps" yaml:"substeps"`
	IntervalMS  int     `json:"interval_ms" yaml:"interval_ms"`
	MaxFrames   int     `json:"max_frames" yaml:"max_frames"`

	// Output
	OutputDir   string  `json:"output_dir" yaml:"output_dir"`
	Format      string  `json:"format" yaml:"format"`
	Animated    bool    `json:"animated" yaml:"animated"`
	RenderSize  int     `json:"render_size" yaml:"render_size"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	LineWidth   float64 `json:"line_width" yaml:"line_width"`
	Workers     int     `json:"workers" yaml:"workers"`

	LogLevel string `json:"log_level" yaml:"log_level"`

	Shapes []ShapeSpec `json:"shapes" yaml:"shapes"`
}

// ShapeSpec declares one shape of the scene.
type ShapeSpec struct {
	ID     string     `json:"id" yaml:"id"`
	Kind   string     `json:"kind" yaml:"kind"` // square, cube or axis
	Side   float64    `json:"side" yaml:"side"` // side length, or half-length for axis
	Color  string     `json:"color" yaml:"color"`
	Center [3]float64 `json:"center" yaml:"center"`
}

// Default returns the settings of the stock scene: a view tilted 20° and
// spun 12°, one green cube resting on the origin and the world axes.
func Default() Config {
	return Config{
		ZAngle: 12,
		XAngle: 20,
		Shapes: []ShapeSpec{
			{ID: "cube", Kind: "cube", Side: 2, Color: "green", Center: [3]float64{0, 0, 1}},
			{ID: "axis", Kind: "axis", Color: "red"},
		},
	}
}

// Load reads a JSON or YAML (by extension) config file over Default().
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	// A file that declares shapes replaces the stock scene entirely.
	cfg.Shapes = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Shapes == nil {
		cfg.Shapes = Default().Shapes
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Nil pointers and zero values leave the file value alone.
type Flags struct {
	ZAngle    *float64
	XAngle    *float64
	ViewWidth float64
	OutputDir string
	Format    string
	Animated  bool
	Frames    int
	Size      int
	Workers   int
	LogLevel  string
}

// Resolve applies flag overrides, then fills every unset field with its
// default.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.ZAngle != nil {
		c.ZAngle = *flags.ZAngle
	}
	if flags.XAngle != nil {
		c.XAngle = *flags.XAngle
	}
	if flags.ViewWidth > 0 {
		c.ViewWidth = flags.ViewWidth
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Animated {
		c.Animated = true
	}
	if flags.Frames > 0 {
		c.MaxFrames = flags.Frames
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	// Defaults
	if c.ViewWidth == 0 {
		c.ViewWidth = 5
	}
	if c.AngularStep == 0 {
		c.AngularStep = 0.0006
	}
	if c.Substeps <= 0 {
		c.Substeps = 10
	}
	if c.IntervalMS <= 0 {
		c.IntervalMS = 16
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	c.Format = strings.ToLower(c.Format)
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 1.5
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	finite := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("config: %s=%v: %w", name, v, ErrInvalidConfig)
		}
		return nil
	}
	for name, v := range map[string]float64{
		"z_angle":      c.ZAngle,
		"x_angle":      c.XAngle,
		"view_width":   c.ViewWidth,
		"angular_step": c.AngularStep,
	} {
		if err := finite(name, v); err != nil {
			return err
		}
	}
	if c.ViewWidth <= 0 {
		return fmt.Errorf("config: view_width must be positive: %w", ErrInvalidConfig)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("config: max_frames must not be negative: %w", ErrInvalidConfig)
	}
	switch c.Format {
	case "webp", "tga":
	default:
		return fmt.Errorf("config: format %q (want webp or tga): %w", c.Format, ErrInvalidConfig)
	}
	if c.Animated && c.Format != "webp" {
		return fmt.Errorf("config: animated output needs format webp: %w", ErrInvalidConfig)
	}
	if c.Animated && c.MaxFrames > MaxAnimatedFrames {
		return fmt.Errorf("config: animated output is limited to %d frames, got %d: %w", MaxAnimatedFrames, c.MaxFrames, ErrInvalidConfig)
	}

	seen := make(map[string]bool)
	for i, s := range c.Shapes {
		if s.ID == "" {
			continue
		}
		if seen[s.ID] {
			return fmt.Errorf("config: shapes[%d]: duplicate id %q: %w", i, s.ID, ErrInvalidConfig)
		}
		seen[s.ID] = true
	}
	return nil
}

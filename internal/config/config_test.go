package config

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "scene.json", `{
  "z_angle": 30,
  "substeps": 4,
  "format": "TGA",
  "shapes": [{"id": "s", "kind": "square", "side": 3, "color": "#00f", "center": [1, 2, 3]}]
}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.ZAngle)
	assert.Equal(t, 20.0, cfg.XAngle, "unset keeps default")
	assert.Equal(t, 4, cfg.Substeps)
	require.Len(t, cfg.Shapes, 1)
	assert.Equal(t, ShapeSpec{ID: "s", Kind: "square", Side: 3, Color: "#00f", Center: [3]float64{1, 2, 3}}, cfg.Shapes[0])

	cfg.Resolve(Flags{})
	assert.Equal(t, "tga", cfg.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", `
x_angle: -10
animated: true
max_frames: 90
shapes:
  - id: box
    kind: cube
    side: 1.5
    color: steelblue
    center: [0, 0, 0.75]
  - kind: axis
    color: black
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -10.0, cfg.XAngle)
	assert.Equal(t, 12.0, cfg.ZAngle)
	assert.True(t, cfg.Animated)
	assert.Equal(t, 90, cfg.MaxFrames)
	require.Len(t, cfg.Shapes, 2)
	assert.Equal(t, [3]float64{0, 0, 0.75}, cfg.Shapes[0].Center)
	assert.Empty(t, cfg.Shapes[1].ID)
}

func TestLoadWithoutShapesKeepsStockScene(t *testing.T) {
	cfg, err := Load(writeFile(t, "c.yml", "z_angle: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Shapes, cfg.Shapes)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", "{"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "shapes: {"))
	assert.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{})

	assert.Equal(t, 5.0, cfg.ViewWidth)
	assert.Equal(t, 0.0006, cfg.AngularStep)
	assert.Equal(t, 10, cfg.Substeps)
	assert.Equal(t, 16, cfg.IntervalMS)
	assert.Equal(t, 0, cfg.MaxFrames)
	assert.Equal(t, "renders", cfg.OutputDir)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, 512, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestResolveFlagsOverride(t *testing.T) {
	z, x := 0.0, 45.0
	cfg := Default()
	cfg.OutputDir = "from-file"
	cfg.Resolve(Flags{ZAngle: &z, XAngle: &x, OutputDir: "out", Frames: 12, Size: 128, Animated: true, LogLevel: "debug"})

	assert.Equal(t, 0.0, cfg.ZAngle)
	assert.Equal(t, 45.0, cfg.XAngle)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 12, cfg.MaxFrames)
	assert.Equal(t, 128, cfg.RenderSize)
	assert.True(t, cfg.Animated)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"format":     func(c *Config) { c.Format = "gif" },
		"animated":   func(c *Config) { c.Format = "tga"; c.Animated = true },
		"view width": func(c *Config) { c.ViewWidth = -1 },
		"nan angle":  func(c *Config) { c.ZAngle = math.NaN() },
		"max frames": func(c *Config) { c.MaxFrames = -3 },
		"duplicate":  func(c *Config) { c.Shapes = append(c.Shapes, ShapeSpec{ID: "cube", Kind: "axis"}) },
		"inf step":   func(c *Config) { c.AngularStep = math.Inf(1) },
		"long anim":  func(c *Config) { c.Animated = true; c.MaxFrames = MaxAnimatedFrames + 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.Resolve(Flags{})
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateAnimatedFrameLimit(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{Animated: true, Frames: MaxAnimatedFrames})
	require.NoError(t, cfg.Validate())

	cfg.MaxFrames = MaxAnimatedFrames + 1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Animated = false
	assert.NoError(t, cfg.Validate(), "plain frame export has no limit")
}

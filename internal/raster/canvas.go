package raster

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"wireview/internal/postprocess"
	"wireview/internal/shape"
	"wireview/internal/view"
)

// Frame is one presented image.
type Frame struct {
	Index  int
	Image  *image.NRGBA
	Status string
}

// FrameSink receives every frame the canvas presents.
type FrameSink interface {
	WriteFrame(f Frame) error
}

// CanvasConfig controls the rendered frame.
type CanvasConfig struct {
	Size        int     // output side in pixels
	Supersample int     // render at Size*Supersample, then downsample
	ViewWidth   float64 // plane units visible across the frame
	LineWidth   float64 // in output pixels
	Background  color.NRGBA
	TextColor   color.NRGBA
}

func DefaultCanvasConfig() CanvasConfig {
	return CanvasConfig{
		Size:        512,
		Supersample: 2,
		ViewWidth:   DefaultViewWidth,
		LineWidth:   1.5,
		Background:  color.NRGBA{255, 255, 255, 255},
		TextColor:   color.NRGBA{0, 0, 0, 255},
	}
}

type polyline struct {
	pts   view.Polyline
	color color.NRGBA
}

// Canvas is a headless surface that rasterizes the current polylines on
// every Present and hands the result to a FrameSink.
type Canvas struct {
	cfg    CanvasConfig
	sink   FrameSink
	lines  map[shape.ID]polyline
	status string
	frames int
}

func NewCanvas(cfg CanvasConfig, sink FrameSink) *Canvas {
	def := DefaultCanvasConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}
	if cfg.ViewWidth <= 0 {
		cfg.ViewWidth = def.ViewWidth
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = def.LineWidth
	}
	return &Canvas{
		cfg:   cfg,
		sink:  sink,
		lines: make(map[shape.ID]polyline),
	}
}

func (c *Canvas) UpsertPolyline(id shape.ID, pts view.Polyline, col color.NRGBA) {
	c.lines[id] = polyline{pts: pts, color: col}
}

func (c *Canvas) Remove(id shape.ID) {
	delete(c.lines, id)
}

func (c *Canvas) SetStatusText(text string) {
	c.status = text
}

// Present renders the current frame and writes it to the sink.
func (c *Canvas) Present() error {
	img := c.Render()
	f := Frame{Index: c.frames, Image: img, Status: c.status}
	c.frames++
	if c.sink == nil {
		return nil
	}
	if err := c.sink.WriteFrame(f); err != nil {
		return fmt.Errorf("raster: frame %d: %w", f.Index, err)
	}
	return nil
}

// Render draws the current polylines and status label without presenting.
func (c *Canvas) Render() *image.NRGBA {
	ss := c.cfg.Supersample
	renderSize := c.cfg.Size * ss

	fb := NewFrameBuffer(renderSize, renderSize)
	fb.Fill(c.cfg.Background)

	vp := Viewport{Width: c.cfg.ViewWidth, Pixels: renderSize}
	width := c.cfg.LineWidth * float64(ss)

	// Stable draw order so overlapping lines do not flicker between frames.
	ids := make([]shape.ID, 0, len(c.lines))
	for id := range c.lines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		pl := c.lines[id]
		for i := 1; i < len(pl.pts); i++ {
			x0, y0 := vp.ToPixel(pl.pts[i-1])
			x1, y1 := vp.ToPixel(pl.pts[i])
			fb.DrawLine(x0, y0, x1, y1, width, pl.color)
		}
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, c.cfg.Size)
	}
	if c.status != "" {
		DrawLabel(img, c.status, c.cfg.TextColor)
	}
	return img
}

// Package window shows the animation in a desktop window.
package window

import (
	"context"
	"image/color"
	"sort"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"wireview/internal/raster"
	"wireview/internal/shape"
	"wireview/internal/view"
)

// Config controls the window.
type Config struct {
	Title      string
	Size       int     // window side in pixels
	ViewWidth  float64 // plane units visible across the window
	LineWidth  float32
	Background color.NRGBA
}

func DefaultConfig() Config {
	return Config{
		Title:      "wireview",
		Size:       600,
		ViewWidth:  raster.DefaultViewWidth,
		LineWidth:  1.5,
		Background: color.NRGBA{0x1e, 0x1e, 0x1e, 0xff},
	}
}

type polyline struct {
	pts   view.Polyline
	color color.NRGBA
}

// Window is both the surface the loop draws on and the driver that ticks
// it: ebiten calls Update at the configured TPS and each Update runs one
// tick. Run blocks until the window is closed or ctx is done.
type Window struct {
	cfg Config
	vp  raster.Viewport
	log *zap.Logger

	mu     sync.Mutex
	lines  map[shape.ID]polyline
	status string

	ctx    context.Context
	onTick func() error
}

func New(cfg Config, logger *zap.Logger) *Window {
	def := DefaultConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.ViewWidth <= 0 {
		cfg.ViewWidth = def.ViewWidth
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = def.LineWidth
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Window{
		cfg:   cfg,
		vp:    raster.Viewport{Width: cfg.ViewWidth, Pixels: cfg.Size},
		log:   logger,
		lines: make(map[shape.ID]polyline),
	}
}

func (w *Window) UpsertPolyline(id shape.ID, pts view.Polyline, c color.NRGBA) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines[id] = polyline{pts: pts, color: c}
}

func (w *Window) Remove(id shape.ID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.lines, id)
}

func (w *Window) SetStatusText(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = text
}

// Present is a no-op: ebiten draws the current state after every Update.
func (w *Window) Present() error { return nil }

// Run opens the window and calls onTick from Update.
func (w *Window) Run(ctx context.Context, interval time.Duration, onTick func() error) error {
	w.ctx = ctx
	w.onTick = onTick

	tps := ebiten.SyncWithFPS
	if interval > 0 {
		tps = int(time.Second / interval)
		if tps < 1 {
			tps = 1
		}
	}

	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.cfg.Size, w.cfg.Size)
	ebiten.SetTPS(tps)
	w.log.Debug("window opened", zap.Int("size", w.cfg.Size), zap.Int("tps", tps))
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if w.ctx != nil && w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if w.onTick == nil {
		return nil
	}
	return w.onTick()
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.cfg.Background)

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, id := range w.sortedIDs() {
		pl := w.lines[id]
		for _, seg := range w.segments(pl.pts) {
			vector.StrokeLine(screen, seg[0], seg[1], seg[2], seg[3], w.cfg.LineWidth, pl.color, true)
		}
	}
	ebitenutil.DebugPrint(screen, w.status)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.Size, w.cfg.Size
}

func (w *Window) sortedIDs() []shape.ID {
	ids := make([]shape.ID, 0, len(w.lines))
	for id := range w.lines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// segments converts a polyline into pixel-space line segments
// (x0, y0, x1, y1).
func (w *Window) segments(pts view.Polyline) [][4]float32 {
	if len(pts) < 2 {
		return nil
	}
	out := make([][4]float32, 0, len(pts)-1)
	px, py := w.vp.ToPixel(pts[0])
	for _, p := range pts[1:] {
		x, y := w.vp.ToPixel(p)
		out = append(out, [4]float32{float32(px), float32(py), float32(x), float32(y)})
		px, py = x, y
	}
	return out
}

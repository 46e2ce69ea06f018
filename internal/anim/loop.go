// Package anim advances a view and pushes re-projected shapes to a surface.
package anim

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"wireview/internal/shape"
	"wireview/internal/view"
)

const (
	DefaultAngularStep = 0.0006 // radians per substep
	DefaultSubsteps    = 10
)

// Loop owns a view and a set of shapes. Tick, AddShape and RemoveShape must
// be called from the same goroutine; only Stop is safe to call elsewhere.
type Loop struct {
	view    *view.View
	surface Surface
	log     *zap.Logger

	shapes    map[shape.ID]shape.Shape
	step      float64
	substeps  int
	maxFrames int
	frames    int

	mu     sync.Mutex
	cancel context.CancelFunc
	halted bool
}

type Option func(*Loop)

func WithAngularStep(rad float64) Option {
	return func(l *Loop) { l.step = rad }
}

func WithSubsteps(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.substeps = n
		}
	}
}

// WithMaxFrames stops the loop after n presented frames. Zero means never.
func WithMaxFrames(n int) Option {
	return func(l *Loop) {
		if n >= 0 {
			l.maxFrames = n
		}
	}
}

func New(v *view.View, surface Surface, logger *zap.Logger, opts ...Option) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loop{
		view:     v,
		surface:  surface,
		log:      logger,
		shapes:   make(map[shape.ID]shape.Shape),
		step:     DefaultAngularStep,
		substeps: DefaultSubsteps,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Loop) View() *view.View { return l.view }

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() int { return l.frames }

// AddShape inserts s, replacing any shape with the same id.
func (l *Loop) AddShape(s shape.Shape) {
	l.shapes[s.ID()] = s
}

// RemoveShape drops the shape and its polyline. Removing an unknown id is
// a no-op that only logs a warning.
func (l *Loop) RemoveShape(id shape.ID) {
	if _, ok := l.shapes[id]; !ok {
		l.log.Warn("remove: shape not in view", zap.String("shape", string(id)))
		return
	}
	delete(l.shapes, id)
	l.surface.Remove(id)
}

// Shapes returns the current shapes ordered by id.
func (l *Loop) Shapes() []shape.Shape {
	out := make([]shape.Shape, 0, len(l.shapes))
	for _, s := range l.shapes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Tick advances the view by substeps·step and renders one frame. Only the
// final state is drawn, so projection happens once per tick. A shape that
// fails to project is skipped for this frame; the rest are still drawn.
func (l *Loop) Tick() error {
	for i := 0; i < l.substeps; i++ {
		l.view.Advance(l.step)
	}

	for _, s := range l.Shapes() {
		pts, err := l.view.Project(s.EdgePoints())
		if err != nil {
			l.log.Warn("project failed, skipping shape",
				zap.String("shape", string(s.ID())),
				zap.Int("frame", l.frames),
				zap.Error(err))
			continue
		}
		l.surface.UpsertPolyline(s.ID(), pts, s.Color())
	}

	zd, xd := l.view.Degrees()
	l.surface.SetStatusText(fmt.Sprintf("z-rot = %.3f, xy-rot = %.3f", zd, xd))
	if err := l.surface.Present(); err != nil {
		return fmt.Errorf("anim: present frame %d: %w", l.frames, err)
	}
	l.frames++

	if l.maxFrames > 0 && l.frames >= l.maxFrames {
		l.log.Debug("frame limit reached", zap.Int("frames", l.frames))
		l.Stop()
	}
	return nil
}

// Run drives Tick through d until ctx is done, Stop is called or the frame
// limit is reached.
func (l *Loop) Run(ctx context.Context, d Driver, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.halted {
		l.mu.Unlock()
		return nil
	}
	l.cancel = cancel
	l.mu.Unlock()

	l.log.Info("animation started",
		zap.Int("shapes", len(l.shapes)),
		zap.Duration("interval", interval),
		zap.Int("substeps", l.substeps),
		zap.Float64("step", l.step),
		zap.Int("max_frames", l.maxFrames))

	err := d.Run(ctx, interval, func() error {
		// A stop inside the previous tick must not render one more frame.
		if ctx.Err() != nil {
			return nil
		}
		return l.Tick()
	})

	l.log.Info("animation stopped", zap.Int("frames", l.frames), zap.Error(err))
	return err
}

// Stop halts the driver. Calling it before Run makes Run return at once.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.halted = true
	if l.cancel != nil {
		l.cancel()
	}
}

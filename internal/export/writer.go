// Package export writes presented frames to disk.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"wireview/internal/raster"
)

// Config holds the output settings for one run.
type Config struct {
	OutputDir  string
	Format     string
	Animated   bool
	FrameDelay time.Duration
	Workers    int
}

// Result holds the outcome of writing one frame.
type Result struct {
	Index   int
	Path    string
	Status  string
	Success bool
	Error   string
}

// ErrWriterClosed is returned by WriteFrame and Close after Close.
var ErrWriterClosed = errors.New("writer closed")

// Writer is a raster.FrameSink that encodes frames on a worker pool while
// the animation keeps running.
//
// Cancelling the context passed to NewWriter stops WriteFrame from
// accepting frames. Frames already queued are still written, and Close
// still writes manifest.json for them.
type Writer struct {
	cfg Config
	log *zap.Logger

	ctx  context.Context
	g    *errgroup.Group
	jobs chan raster.Frame
	done chan struct{}

	// sendMu guards jobs against close while a send is in flight.
	sendMu sync.RWMutex
	closed bool

	mu        sync.Mutex
	results   []Result
	animation []image.Image
	processed atomic.Int64
	start     time.Time
}

// NewWriter creates the output directories and starts the workers.
func NewWriter(ctx context.Context, cfg Config, logger *zap.Logger) (*Writer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Format == "" {
		cfg.Format = FormatWebP
	}
	if !ValidFormat(cfg.Format) {
		return nil, fmt.Errorf("export: unknown format %q", cfg.Format)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if err := os.MkdirAll(filepath.Join(cfg.OutputDir, "frames"), 0755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	w := &Writer{
		cfg:   cfg,
		log:   logger,
		ctx:   ctx,
		g:     new(errgroup.Group),
		jobs:  make(chan raster.Frame, cfg.Workers*2),
		done:  make(chan struct{}),
		start: time.Now(),
	}

	for i := 0; i < cfg.Workers; i++ {
		w.g.Go(w.work)
	}
	go w.reportProgress()
	return w, nil
}

// WriteFrame queues f for encoding. It blocks while all workers are busy.
func (w *Writer) WriteFrame(f raster.Frame) error {
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if w.closed {
		return fmt.Errorf("export: frame %d: %w", f.Index, ErrWriterClosed)
	}
	if err := w.ctx.Err(); err != nil {
		return fmt.Errorf("export: frame %d: %w", f.Index, err)
	}

	select {
	case w.jobs <- f:
	case <-w.ctx.Done():
		return fmt.Errorf("export: frame %d: %w", f.Index, w.ctx.Err())
	}
	if w.cfg.Animated {
		w.mu.Lock()
		w.animation = append(w.animation, f.Image)
		w.mu.Unlock()
	}
	return nil
}

// work drains jobs until Close closes the channel.
func (w *Writer) work() error {
	for f := range w.jobs {
		r := w.writeOne(f)
		w.mu.Lock()
		w.results = append(w.results, r)
		w.mu.Unlock()
		w.processed.Add(1)
	}
	return nil
}

func (w *Writer) writeOne(f raster.Frame) Result {
	name := fmt.Sprintf("%05d.%s", f.Index, w.cfg.Format)
	rel := filepath.Join("frames", name)
	r := Result{Index: f.Index, Path: rel, Status: f.Status}

	out, err := os.Create(filepath.Join(w.cfg.OutputDir, rel))
	if err != nil {
		r.Error = err.Error()
		return r
	}
	defer out.Close()

	if err := encodeFrame(out, w.cfg.Format, f.Image); err != nil {
		r.Error = fmt.Sprintf("%s encode: %v", w.cfg.Format, err)
		return r
	}
	r.Success = true
	return r
}

func (w *Writer) reportProgress() {
	p := message.NewPrinter(language.English)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			n := w.processed.Load()
			if n > 0 {
				rate := float64(n) / time.Since(w.start).Seconds()
				w.log.Info("export progress",
					zap.String("written", p.Sprintf("%d", n)),
					zap.String("rate", p.Sprintf("%.1f frames/sec", rate)))
			}
		}
	}
}

// Close waits for queued frames, then writes the animation (if enabled)
// and manifest.json. Results are ordered by frame index.
func (w *Writer) Close() ([]Result, error) {
	w.sendMu.Lock()
	if w.closed {
		w.sendMu.Unlock()
		return nil, fmt.Errorf("export: %w", ErrWriterClosed)
	}
	w.closed = true
	close(w.jobs)
	w.sendMu.Unlock()

	err := w.g.Wait()
	close(w.done)
	if err != nil {
		return w.sortedResults(), fmt.Errorf("export: %w", err)
	}

	results := w.sortedResults()
	m := Manifest{
		Format:     w.cfg.Format,
		FrameDelay: int(w.cfg.FrameDelay / time.Millisecond),
	}
	for _, r := range results {
		if r.Success {
			m.Frames = append(m.Frames, ManifestEntry{Index: r.Index, Image: filepath.ToSlash(r.Path), Status: r.Status})
		}
	}

	if w.cfg.Animated && len(w.animation) > 0 {
		if err := w.writeAnimation(); err != nil {
			return results, err
		}
		m.Animation = "animation.webp"
	}

	if err := WriteManifest(filepath.Join(w.cfg.OutputDir, "manifest.json"), m); err != nil {
		return results, fmt.Errorf("export: manifest: %w", err)
	}
	return results, nil
}

func (w *Writer) writeAnimation() error {
	path := filepath.Join(w.cfg.OutputDir, "animation.webp")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	delay := uint(w.cfg.FrameDelay / time.Millisecond)
	if err := encodeAnimation(f, w.animation, delay); err != nil {
		return fmt.Errorf("export: animation: %w", err)
	}
	w.log.Info("animation written", zap.String("path", path), zap.Int("frames", len(w.animation)))
	return nil
}

func (w *Writer) sortedResults() []Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Result, len(w.results))
	copy(out, w.results)
	sortResults(out)
	return out
}

func sortResults(rs []Result) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Index < rs[j].Index })
}

// Count returns how many results succeeded and failed.
func Count(rs []Result) (ok, failed int) {
	for _, r := range rs {
		if r.Success {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}

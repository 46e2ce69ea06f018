package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"wireview/internal/anim"
	"wireview/internal/config"
	"wireview/internal/export"
	"wireview/internal/logging"
	"wireview/internal/raster"
	"wireview/internal/scene"
	"wireview/internal/shape"
	"wireview/internal/view"
	"wireview/internal/window"
)

// headlessFrames bounds a headless run when no frame limit is set.
const headlessFrames = 120

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a JSON or YAML scene config")
	windowed := flag.Bool("window", false, "Show the animation in a window instead of writing frames")
	frames := flag.Int("frames", 0, "Stop after N frames (headless default: 120)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Frame format: webp or tga (default: webp)")
	animated := flag.Bool("animated", false, fmt.Sprintf("Also write animation.webp (at most %d frames, all held in memory)", config.MaxAnimatedFrames))
	zAngle := flag.Float64("z", 0, "Initial z rotation in degrees")
	xAngle := flag.Float64("x", 0, "Initial x tilt in degrees")
	width := flag.Float64("width", 0, "View width in plane units (default: 5)")
	size := flag.Int("size", 0, "Output side in pixels (default: 512)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: info)")

	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	flags := config.Flags{
		ViewWidth: *width,
		OutputDir: *outputDir,
		Format:    *format,
		Animated:  *animated,
		Frames:    *frames,
		Size:      *size,
		Workers:   *workers,
		LogLevel:  *logLevel,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "z":
			flags.ZAngle = zAngle
		case "x":
			flags.XAngle = xAngle
		}
	})
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	shapes, err := scene.Build(cfg.Shapes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	var opts []view.Option
	if cfg.FallbackBasis {
		opts = append(opts, view.WithFallbackBasis())
	}
	v := view.New(cfg.ZAngle, cfg.XAngle, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *windowed {
		err = runWindow(ctx, cfg, v, shapes, logger)
	} else {
		err = runHeadless(ctx, cfg, v, shapes, logger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func loopOptions(cfg config.Config) []anim.Option {
	return []anim.Option{
		anim.WithAngularStep(cfg.AngularStep),
		anim.WithSubsteps(cfg.Substeps),
		anim.WithMaxFrames(cfg.MaxFrames),
	}
}

func interval(cfg config.Config) time.Duration {
	return time.Duration(cfg.IntervalMS) * time.Millisecond
}

func runWindow(ctx context.Context, cfg config.Config, v *view.View, shapes []shape.Shape, logger *zap.Logger) error {
	w := window.New(window.Config{
		Size:      cfg.RenderSize,
		ViewWidth: cfg.ViewWidth,
		LineWidth: float32(cfg.LineWidth),
	}, logger)

	loop := anim.New(v, w, logger, loopOptions(cfg)...)
	for _, s := range shapes {
		loop.AddShape(s)
	}
	return loop.Run(ctx, w, interval(cfg))
}

func runHeadless(ctx context.Context, cfg config.Config, v *view.View, shapes []shape.Shape, logger *zap.Logger) error {
	if cfg.MaxFrames == 0 {
		cfg.MaxFrames = headlessFrames
	}

	p := message.NewPrinter(language.English)
	p.Printf("Wireframe view → %s\n", cfg.Format)
	p.Printf("Shapes: %d, Frames: %d, Workers: %d\n", len(shapes), cfg.MaxFrames, cfg.Workers)
	p.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// A signal stops the loop only; frames already presented are still
	// written and listed in the manifest.
	writer, err := export.NewWriter(context.WithoutCancel(ctx), export.Config{
		OutputDir:  cfg.OutputDir,
		Format:     cfg.Format,
		Animated:   cfg.Animated,
		FrameDelay: interval(cfg),
		Workers:    cfg.Workers,
	}, logger)
	if err != nil {
		return err
	}

	canvas := raster.NewCanvas(raster.CanvasConfig{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		ViewWidth:   cfg.ViewWidth,
		LineWidth:   cfg.LineWidth,
		Background:  raster.DefaultCanvasConfig().Background,
		TextColor:   raster.DefaultCanvasConfig().TextColor,
	}, writer)

	loop := anim.New(v, canvas, logger, loopOptions(cfg)...)
	for _, s := range shapes {
		loop.AddShape(s)
	}

	// Headless runs as fast as the encoders accept frames.
	runErr := loop.Run(ctx, anim.TickerDriver{}, 0)
	results, closeErr := writer.Close()

	fmt.Println("------------------------------------------------------------")
	p.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	success, failed := export.Count(results)
	p.Printf("Rendered: %d/%d\n", success, len(results))
	if failed > 0 {
		p.Printf("\nFailed (%d):\n", failed)
		shown := 0
		for _, r := range results {
			if r.Success {
				continue
			}
			p.Printf("  frame %d: %s\n", r.Index, r.Error)
			if shown++; shown == 20 {
				break
			}
		}
	}

	if err := errors.Join(runErr, closeErr); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d frames failed", failed)
	}
	return nil
}

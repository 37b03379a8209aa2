package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/piechart/internal/chart"
	"github.com/handiism/piechart/internal/config"
	"github.com/handiism/piechart/internal/demo"
	"github.com/handiism/piechart/internal/export"
	"github.com/handiism/piechart/internal/logger"
	"go.uber.org/zap"
)

func main() {
	opts := newOptions(flag.CommandLine)
	flag.Parse()

	if opts.parts == "" && !opts.random && flag.NArg() == 0 {
		fmt.Println("piechart - Render pie and donut charts")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  piechart -parts red:1,blue:3 [options]")
		fmt.Println("  piechart -random [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: piechart-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if opts.config != "" {
		var err error
		settings, err = config.Load(opts.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	set := opts.apply(settings, flag.CommandLine)

	log, err := logger.New(logger.Config{Level: settings.LogLevel, JSON: settings.LogJSON})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Get parts
	input := opts.parts
	if input == "" && flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	var parts []chart.Part
	if opts.random {
		seed := opts.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		gen := demo.NewGenerator(rand.New(rand.NewPCG(seed, seed)))
		parts = gen.Parts()
		if !set["mode"] {
			applyMode(settings, gen.Mode())
		}
		log.Info("Generated random chart", zap.Uint64("seed", seed), zap.Int("parts", len(parts)), zap.String("mode", settings.Mode))
	} else {
		parts, err = demo.ParseParts(input)
		if err != nil {
			log.Fatal("Invalid parts", zap.Error(err))
		}
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := export.NewManager(settings, func(event export.ProgressEvent) {
		switch event.Level {
		case export.LevelError:
			log.Error(event.Message)
		case export.LevelWarning:
			log.Warn(event.Message)
		case export.LevelVerbose:
			log.Debug(event.Message)
		default:
			log.Info(event.Message)
		}
	})

	paths, err := manager.Export(ctx, opts.name, parts)
	if err != nil {
		if ctx.Err() != nil {
			log.Warn("Export cancelled")
			os.Exit(130)
		}
		log.Error("Export failed", zap.Error(err))
		os.Exit(1)
	}

	files, frames, _ := manager.GetProgress()
	log.Info("Export complete",
		zap.Int32("files", files),
		zap.Int32("gif_frames", frames),
		zap.Strings("paths", paths),
	)
}

// applyMode stores a generated mode in settings. A random donut width of
// zero would hide the chart in exported files, so it falls back to 1.
func applyMode(s *config.Settings, mode chart.Mode) {
	s.Mode = mode.String()
	if mode.IsDonut() {
		s.LineWidth = max(mode.LineWidth(), 1)
	}
}

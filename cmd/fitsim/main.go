package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/fitsim/internal/config"
	"github.com/udisondev/fitsim/internal/engine"
	"github.com/udisondev/fitsim/internal/fit"
	"github.com/udisondev/fitsim/internal/stats"
)

const ConfigPath = "config/fitsim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// report is one calculated fit.
type report struct {
	File    string      `json:"file"`
	Name    string      `json:"name,omitempty"`
	Skipped []string    `json:"skipped,omitempty"`
	Stats   stats.Stats `json:"stats"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fitsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "config file (default $FITSIM_CONFIG or "+ConfigPath+")")
	skillLevel := fs.Int("skill-level", -1, "override the configured proficiency level (0..5)")
	explain := fs.String("explain", "", `print the modifiers of one attribute, e.g. "Rifter:maxVelocity"`)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	if fs.NArg() == 0 {
		return errors.New("usage: fitsim [flags] fit.yaml [fit.yaml ...]")
	}

	// Load config FIRST to determine log level
	path := *cfgPath
	if path == "" {
		path = ConfigPath
		if p := os.Getenv("FITSIM_CONFIG"); p != "" {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *skillLevel >= 0 {
		cfg.SkillLevel = *skillLevel
	}

	// stdout carries the JSON result, logs go to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", path, "catalog", cfg.Catalog.Source, "skill_level", cfg.SkillLevel)

	catalog, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer closeCatalog()

	opts := engine.Options{SkillLevel: cfg.SkillLevel, LookupConcurrency: cfg.LookupConcurrency}
	files := fs.Args()
	reports := make([]report, len(files))
	sims := make([]*engine.Simulation, len(files))

	// Each file gets its own pipeline; simulations are never shared.
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			f, err := fit.Load(file)
			if err != nil {
				return err
			}

			lookupCtx := gctx
			if cfg.LookupTimeout > 0 {
				var cancel context.CancelFunc
				lookupCtx, cancel = context.WithTimeout(gctx, cfg.LookupTimeout)
				defer cancel()
			}
			sim, err := engine.Run(lookupCtx, catalog, f, opts)
			if err != nil {
				return fmt.Errorf("simulating %s: %w", file, err)
			}

			sims[i] = sim
			reports[i] = report{File: file, Name: f.Name, Skipped: sim.Skipped(), Stats: stats.Compute(sim)}
			slog.Info("fit calculated",
				"file", file,
				"hull", f.Hull,
				"fingerprint", reports[i].Stats.Fingerprint,
				"dps", reports[i].Stats.DPS.Total.Total,
				"ehp", reports[i].Stats.EHP.Total)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if *explain != "" {
		for i, sim := range sims {
			if err := explainAttribute(stderr, files[i], sim, *explain); err != nil {
				return err
			}
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/fitsim/internal/config"
	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/db"
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

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("catalogload", flag.ContinueOnError)
	fs.SetOutput(logOut)
	cfgPath := fs.String("config", "", "config file (default $FITSIM_CONFIG or "+ConfigPath+")")
	file := fs.String("file", "", "YAML catalog to import (default: the embedded catalog)")
	dsn := fs.String("dsn", "", "PostgreSQL DSN, overrides the database section of the config")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

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

	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	catalog, err := loadCatalog(*file)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	slog.Info("catalog loaded", "file", *file, "items", catalog.Len())

	target := cfg.Database.DSN()
	if *dsn != "" {
		target = *dsn
	}

	version, err := db.RunMigrations(ctx, target)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied", "version", version)

	database, err := db.New(ctx, target, cfg.Database.MaxConns)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	repo := db.NewCatalogRepository(database.Pool())
	if err := repo.SaveAll(ctx, catalog.Items()); err != nil {
		return fmt.Errorf("importing catalog: %w", err)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	slog.Info("catalog imported", "upserted", catalog.Len(), "total", total)
	return nil
}

func loadCatalog(file string) (*data.MemoryCatalog, error) {
	if file == "" {
		return data.LoadDefaultCatalog()
	}
	return data.LoadCatalogFile(file)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

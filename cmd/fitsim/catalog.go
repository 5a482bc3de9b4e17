package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/fitsim/internal/config"
	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/db"
)

// openCatalog returns the configured catalog and a function releasing it.
func openCatalog(ctx context.Context, cfg config.Fitsim) (data.Catalog, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.SourceEmbedded:
		c, err := data.LoadDefaultCatalog()
		if err != nil {
			return nil, noop, err
		}
		slog.Debug("embedded catalog loaded", "items", c.Len())
		return c, noop, nil

	case config.SourceYAML:
		c, err := data.LoadCatalogFile(cfg.Catalog.Path)
		if err != nil {
			return nil, noop, err
		}
		slog.Debug("catalog file loaded", "path", cfg.Catalog.Path, "items", c.Len())
		return c, noop, nil

	case config.SourcePostgres:
		database, err := db.New(ctx, cfg.Database.DSN(), cfg.Database.MaxConns)
		if err != nil {
			return nil, noop, err
		}
		slog.Debug("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
		return db.NewCatalogRepository(database.Pool()), database.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

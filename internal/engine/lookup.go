package engine

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/fitsim/internal/data"
)

// resolveItems looks every name up concurrently, at most limit at a time.
// Names without a catalog entry map to nil; any transport error aborts.
func resolveItems(ctx context.Context, catalog data.Catalog, names []string, limit int) (map[string]*data.Item, error) {
	results := make([]*data.Item, len(names))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, name := range names {
		g.Go(func() error {
			it, err := catalog.Lookup(gctx, name)
			if err != nil {
				return fmt.Errorf("looking up %q: %w", name, err)
			}
			results[i] = it
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make(map[string]*data.Item, len(names))
	for i, name := range names {
		if results[i] == nil {
			slog.Warn("catalog entry not found, skipping", "name", name)
		}
		items[name] = results[i]
	}
	return items, nil
}

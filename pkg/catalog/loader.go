package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// LoadAll loads catalogs from all given paths concurrently and merges them
// into a single catalog. The merged catalog takes its name from the first
// path's catalog, and versions appearing in more than one file are kept
// once. Loading stops at the first failure.
func LoadAll(ctx context.Context, paths ...string) (*Catalog, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog paths provided")
	}

	g, gctx := errgroup.WithContext(ctx)
	results := make([]*Catalog, len(paths))

	for i, path := range paths {
		// Capture loop variables for goroutine
		i := i
		path := path

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c, err := LoadFromFile(path)
			if err != nil {
				return err
			}

			slog.Debug("loaded catalog",
				slog.String("path", path),
				slog.Int("versions", c.Len()),
			)

			results[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := results[0]
	for _, c := range results[1:] {
		merged.Merge(c)
	}
	return merged, nil
}

// assets.go — The asset generator and its shared fan-out helper.
package assets

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Options configures a Generator.
type Options struct {
	Paths     Paths
	Brand     Brand
	Resources *Resources
	Jobs      int // concurrent renders per operation; values below 1 mean 1
}

// Generator produces the store assets. It holds no mutable state, so its
// operations may run in any order and repeatedly.
type Generator struct {
	paths    Paths
	brand    Brand
	res      *Resources
	renderer *Renderer
	jobs     int
}

// New creates a Generator.
func New(opts Options) *Generator {
	return &Generator{
		paths:    opts.Paths,
		brand:    opts.Brand,
		res:      opts.Resources,
		renderer: NewRenderer(opts.Resources.Fonts),
		jobs:     max(opts.Jobs, 1),
	}
}

// Paths returns the filesystem layout the generator reads and writes.
func (g *Generator) Paths() Paths {
	return g.paths
}

// forEach runs fn for indexes 0..n-1 on at most g.jobs goroutines and stops
// scheduling new work after the first error or once ctx is done.
func (g *Generator) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.jobs)

	for i := 0; i < n; i++ {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(egCtx, i)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func logWrote(ctx context.Context, path string) {
	slog.DebugContext(ctx, "wrote image", "path", path)
}

package gen

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// MeasureRuntime runs parallel Collect calls at the same time and returns
// the wall time until all of them finished. Because the collections overlap,
// the result is close to a single collection's Count × Interval.
// parallel <= 0 uses DefaultParallel.
func MeasureRuntime(ctx context.Context, parallel int, opts ...Option) (time.Duration, error) {
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for range parallel {
		g.Go(func() error {
			_, err := Collect(gctx, opts...)
			return err
		})
	}

	err := g.Wait()
	return time.Since(start), err
}

package curve

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/levy/internal/fractal"
)

// Sweep generates every method concurrently and returns the sequences in
// input order. The first failure cancels the remaining work.
func Sweep(ctx context.Context, methods []Method) ([]fractal.PointSequence, error) {
	out := make([]fractal.PointSequence, len(methods))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range methods {
		g.Go(func() error {
			pts, err := Generate(ctx, m)
			if err != nil {
				return err
			}
			out[i] = pts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// IterationSweep expands base at every iteration count in [start, stop].
func IterationSweep(ctx context.Context, base Grammar, start, stop int) ([]fractal.PointSequence, error) {
	if start < 0 || stop < start {
		return nil, fractal.InvalidParam("iteration range", [2]int{start, stop})
	}
	methods := make([]Method, 0, stop-start+1)
	for it := start; it <= stop; it++ {
		methods = append(methods, base.WithIterations(it))
	}
	return Sweep(ctx, methods)
}

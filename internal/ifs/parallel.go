package ifs

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/levy/internal/fractal"
)

// SampleParallel splits the N points into chunks independent chaos games.
// Chunk i is seeded with seed+i, runs its own warm-up from opts.Start and
// fills its own region of the output, so the result depends only on the
// seed and the chunk count. With one chunk it equals Sample.
func (f *IFS) SampleParallel(ctx context.Context, opts SampleOptions, chunks int) (fractal.PointSequence, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if chunks < 1 {
		return nil, fractal.InvalidParam("chunks", chunks)
	}
	if opts.N == 0 {
		return fractal.PointSequence{}, nil
	}
	if chunks > opts.N {
		chunks = opts.N
	}

	seed := opts.seed()
	out := make(fractal.PointSequence, opts.N)

	g, ctx := errgroup.WithContext(ctx)
	size, rem := opts.N/chunks, opts.N%chunks
	start := 0
	for i := 0; i < chunks; i++ {
		n := size
		if i < rem {
			n++
		}
		region := out[start : start+n]
		start += n

		chunkSeed := seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f.run(NewRand(chunkSeed), opts.Start, opts.Discard, region)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

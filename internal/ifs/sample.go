package ifs

import (
	"math/rand/v2"

	"github.com/san-kum/levy/internal/fractal"
)

const (
	DefaultPoints  = 50_000
	DefaultDiscard = 100
)

// pcgStream is the fixed PCG stream selector; the seed alone picks the
// sequence.
const pcgStream = 0x9e3779b97f4a7c15

// SampleOptions configures one chaos-game run.
type SampleOptions struct {
	// N is the number of points returned.
	N int
	// Discard is the number of warm-up iterations dropped before recording.
	Discard int
	// Seed makes the run reproducible. Nil draws a fresh seed.
	Seed *int64
	// Start is the initial point.
	Start fractal.Point
}

// Seed returns a pointer to s, for SampleOptions.Seed.
func Seed(s int64) *int64 { return &s }

func (o SampleOptions) validate() error {
	if o.N < 0 {
		return fractal.InvalidParam("n_points", o.N)
	}
	if o.Discard < 0 {
		return fractal.InvalidParam("discard", o.Discard)
	}
	if !o.Start.IsFinite() {
		return fractal.InvalidParam("start", o.Start)
	}
	return nil
}

func (o SampleOptions) seed() int64 {
	if o.Seed != nil {
		return *o.Seed
	}
	return rand.Int64()
}

// NewRand returns the generator used for a given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), pcgStream))
}

// Sample runs the chaos game: N+Discard iterations, each applying a map
// drawn according to the normalized weights, recording every point after
// the first Discard iterations. N == 0 returns an empty sequence.
func (f *IFS) Sample(opts SampleOptions) (fractal.PointSequence, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.N == 0 {
		return fractal.PointSequence{}, nil
	}
	out := make(fractal.PointSequence, opts.N)
	f.run(NewRand(opts.seed()), opts.Start, opts.Discard, out)
	return out, nil
}

// run fills out with consecutive chaos-game points after discard warm-up
// steps.
func (f *IFS) run(rng *rand.Rand, x fractal.Point, discard int, out fractal.PointSequence) {
	for i := 0; i < discard; i++ {
		x = x.Transform(f.maps[f.choose(rng.Float64())])
	}
	for i := range out {
		x = x.Transform(f.maps[f.choose(rng.Float64())])
		out[i] = x
	}
}

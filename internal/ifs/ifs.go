package ifs

import (
	"math"
	"sort"

	"github.com/san-kum/levy/internal/fractal"
)

// IFS is a weighted set of affine maps. It is immutable after New.
type IFS struct {
	maps  []fractal.AffineMap
	probs []float64
	cum   []float64
}

// New builds an IFS. A nil weights slice selects every map with equal
// probability. Weights must be non-negative with a positive sum; they are
// normalized to sum to 1.
func New(maps []fractal.AffineMap, weights []float64) (*IFS, error) {
	if len(maps) == 0 {
		return nil, fractal.InvalidParam("maps", "empty")
	}
	for i, m := range maps {
		if !m.IsFinite() {
			return nil, fractal.InvalidParam("map", i)
		}
	}
	if weights == nil {
		weights = make([]float64, len(maps))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(maps) {
		return nil, fractal.InvalidParam("weights", len(weights))
	}

	probs, err := normalize(weights)
	if err != nil {
		return nil, err
	}

	f := &IFS{
		maps:  make([]fractal.AffineMap, len(maps)),
		probs: probs,
		cum:   make([]float64, len(probs)),
	}
	copy(f.maps, maps)

	acc := 0.0
	for i, p := range probs {
		acc += p
		f.cum[i] = acc
	}
	f.cum[len(f.cum)-1] = 1
	return f, nil
}

func normalize(weights []float64) ([]float64, error) {
	total := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, &fractal.ParamError{Name: "weight", Value: w, Wrapped: fractal.ErrInvalidProbability}
		}
		total += w
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, &fractal.ParamError{Name: "weight sum", Value: total, Wrapped: fractal.ErrInvalidProbability}
	}

	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = w / total
	}
	return probs, nil
}

// Len returns the number of maps.
func (f *IFS) Len() int { return len(f.maps) }

// Maps returns a copy of the maps.
func (f *IFS) Maps() []fractal.AffineMap {
	out := make([]fractal.AffineMap, len(f.maps))
	copy(out, f.maps)
	return out
}

// Probabilities returns a copy of the normalized weights.
func (f *IFS) Probabilities() []float64 {
	out := make([]float64, len(f.probs))
	copy(out, f.probs)
	return out
}

// choose maps a uniform draw u in [0, 1) to a map index.
func (f *IFS) choose(u float64) int {
	i := sort.Search(len(f.cum), func(i int) bool { return f.cum[i] > u })
	if i >= len(f.cum) {
		i = len(f.cum) - 1
	}
	return i
}

package analysis

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/san-kum/levy/internal/fractal"
)

const (
	// DefaultMaxPairs bounds the number of sampled pairs when
	// CorrelationOptions.MaxPairs is zero.
	DefaultMaxPairs = 100_000

	// CorrelationFloor is the smallest correlation sum passed to the
	// logarithm.
	CorrelationFloor = 1e-12

	pcgStream = 0x9e3779b97f4a7c15

	// distance workers only pay off past this many pairs each
	minDistanceChunk = 4096
)

// CorrelationOptions configures EstimateCorrelationDimension.
type CorrelationOptions struct {
	// MaxPairs bounds the number of index pairs drawn. Zero means
	// DefaultMaxPairs.
	MaxPairs int
	Seed     int64
}

// CorrelationResult holds the correlation-sum fit. Stats carries C(r) per
// radius before clamping.
type CorrelationResult struct {
	Fit           fractal.FitResult        `json:"fit"`
	Stats         []fractal.ScaleStatistic `json:"stats"`
	PairsUsed     int                      `json:"pairs_used"`
	Normalization Normalization            `json:"normalization"`
}

// Dimension is the estimated correlation dimension.
func (r CorrelationResult) Dimension() float64 { return r.Fit.Slope }

// EstimateCorrelationDimension estimates the correlation dimension from the
// fraction of sampled point pairs closer than each radius. Points are first
// normalized to the unit square, so radii are relative to the set's extent.
//
// min(MaxPairs, n(n−1)/2) index pairs are drawn independently and uniformly
// with replacement; pairs that pick the same index twice are discarded.
func EstimateCorrelationDimension(points fractal.PointSequence, radii []float64, opts CorrelationOptions) (CorrelationResult, error) {
	if len(points) < 2 {
		return CorrelationResult{}, &fractal.ParamError{Name: "points", Value: len(points), Wrapped: fractal.ErrInsufficientData}
	}
	if opts.MaxPairs < 0 {
		return CorrelationResult{}, fractal.InvalidParam("max_pairs", opts.MaxPairs)
	}
	maxPairs := opts.MaxPairs
	if maxPairs == 0 {
		maxPairs = DefaultMaxPairs
	}
	scales, err := sortedScales("radius", radii)
	if err != nil {
		return CorrelationResult{}, err
	}
	if distinctCount(scales) < 2 {
		return CorrelationResult{}, &fractal.ParamError{Name: "radii", Value: len(scales), Wrapped: fractal.ErrInsufficientData}
	}

	unit, norm, err := NormalizeUnit(points)
	if err != nil {
		return CorrelationResult{}, err
	}

	dists := samplePairDistances(unit, pairBudget(len(unit), maxPairs), opts.Seed)
	if len(dists) == 0 {
		return CorrelationResult{}, &fractal.ParamError{Name: "pairs used", Value: 0, Wrapped: fractal.ErrInsufficientData}
	}
	sort.Float64s(dists)

	stats := make([]fractal.ScaleStatistic, len(scales))
	x := make([]float64, len(scales))
	y := make([]float64, len(scales))
	for i, r := range scales {
		within := sort.Search(len(dists), func(k int) bool { return dists[k] > r })
		c := float64(within) / float64(len(dists))
		stats[i] = fractal.ScaleStatistic{Scale: r, Value: c}
		x[i] = math.Log(r)
		y[i] = math.Log(math.Max(c, CorrelationFloor))
	}

	fit, err := FitLogLog(x, y)
	if err != nil {
		return CorrelationResult{}, err
	}
	return CorrelationResult{
		Fit:           fit,
		Stats:         stats,
		PairsUsed:     len(dists),
		Normalization: norm,
	}, nil
}

func pairBudget(n, maxPairs int) int {
	// n(n−1)/2 without overflow for large n
	if n > 1<<20 {
		return maxPairs
	}
	total := n * (n - 1) / 2
	if total < maxPairs {
		return total
	}
	return maxPairs
}

// samplePairDistances draws the index pairs sequentially from one generator
// and computes their distances in parallel.
func samplePairDistances(points fractal.PointSequence, pairs int, seed int64) []float64 {
	rng := rand.New(rand.NewPCG(uint64(seed), pcgStream))
	n := len(points)

	is := make([]int32, 0, pairs)
	js := make([]int32, 0, pairs)
	for k := 0; k < pairs; k++ {
		i, j := rng.IntN(n), rng.IntN(n)
		if i == j {
			continue
		}
		is = append(is, int32(i))
		js = append(js, int32(j))
	}

	dists := make([]float64, len(is))
	fractal.ParallelFor(len(is), minDistanceChunk, func(start, end int) {
		for k := start; k < end; k++ {
			dists[k] = points[is[k]].Distance(points[js[k]])
		}
	})
	return dists
}

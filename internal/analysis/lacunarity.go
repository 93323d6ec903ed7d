package analysis

import (
	"math"

	"github.com/san-kum/levy/internal/fractal"
)

// MaxBins bounds the grid resolution of Lacunarity per axis. Smaller deltas
// are rejected with fractal.ErrInvalidParameter.
const MaxBins = 1 << 31

// LacunarityResult holds Λ(δ) per box size. A scale whose occupancy mean is
// zero reports NaN.
type LacunarityResult struct {
	Stats         []fractal.ScaleStatistic `json:"stats"`
	Normalization Normalization            `json:"normalization"`
}

// Lacunarity computes Λ(δ) = var/mean² + 1 of the cell occupancy counts
// on an nbin×nbin grid over the unit square, nbin = max(1, round(1/δ)).
// Points are normalized to [0, 1]² first; the right and top edges belong to
// the last cell. The variance is the population variance over all nbin²
// cells, empty ones included.
func Lacunarity(points fractal.PointSequence, deltas []float64) (LacunarityResult, error) {
	if len(points) == 0 {
		return LacunarityResult{}, &fractal.ParamError{Name: "points", Value: 0, Wrapped: fractal.ErrInsufficientData}
	}
	scales, err := sortedScales("delta", deltas)
	if err != nil {
		return LacunarityResult{}, err
	}
	bins := make([]int, len(scales))
	for i, d := range scales {
		if bins[i], err = binsFor(d); err != nil {
			return LacunarityResult{}, err
		}
	}
	unit, norm, err := NormalizeUnit(points)
	if err != nil {
		return LacunarityResult{}, err
	}

	stats := make([]fractal.ScaleStatistic, len(scales))
	for i, d := range scales {
		stats[i] = fractal.ScaleStatistic{Scale: d, Value: lacunarityAt(unit, bins[i])}
	}
	return LacunarityResult{Stats: stats, Normalization: norm}, nil
}

func binsFor(delta float64) (int, error) {
	r := math.Round(1 / delta)
	if r > MaxBins {
		return 0, fractal.InvalidParam("delta", delta)
	}
	if r < 1 {
		return 1, nil
	}
	return int(r), nil
}

// lacunarityAt only visits occupied cells. With n points over k cells,
// mean = n/k and var = Σc²/k - mean², so Λ = k·Σc²/n².
func lacunarityAt(unit fractal.PointSequence, nbin int) float64 {
	if len(unit) == 0 {
		return math.NaN()
	}
	var sumSq float64
	for _, c := range occupancy(unit, nbin) {
		sumSq += float64(c) * float64(c)
	}
	n := float64(len(unit))
	k := float64(nbin) * float64(nbin)
	return k * sumSq / (n * n)
}

// occupancy histograms unit-square points into the occupied cells of an
// nbin×nbin grid.
func occupancy(unit fractal.PointSequence, nbin int) map[cell]int {
	counts := make(map[cell]int, len(unit))
	for _, p := range unit {
		counts[cell{ix: binIndex(p.X, nbin), iy: binIndex(p.Y, nbin)}]++
	}
	return counts
}

func binIndex(v float64, nbin int) int64 {
	i := int64(v * float64(nbin))
	if i >= int64(nbin) {
		return int64(nbin) - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

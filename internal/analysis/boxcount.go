package analysis

import (
	"math"

	"github.com/san-kum/levy/internal/fractal"
)

// BoxResult holds the box-counting fit and the count N(δ) per scale.
type BoxResult struct {
	Fit   fractal.FitResult        `json:"fit"`
	Stats []fractal.ScaleStatistic `json:"stats"`
}

// Dimension is the estimated box-counting dimension.
func (r BoxResult) Dimension() float64 { return r.Fit.Slope }

type cell struct{ ix, iy int64 }

// maxCellIndex bounds span/δ so that cell indices fit in an int64.
const maxCellIndex = 1 << 62

func checkResolution(min, max fractal.Point, delta float64) error {
	if math.Max(max.X-min.X, max.Y-min.Y)/delta > maxCellIndex {
		return fractal.InvalidParam("delta", delta)
	}
	return nil
}

// BoxCount returns the number of distinct grid cells of side delta that
// contain at least one point. The grid is anchored at the component-wise
// minimum of points. A delta so small that span/delta exceeds 2^62 is
// rejected.
func BoxCount(points fractal.PointSequence, delta float64) (int, error) {
	if len(points) == 0 {
		return 0, &fractal.ParamError{Name: "points", Value: 0, Wrapped: fractal.ErrInsufficientData}
	}
	if !(delta > 0) || math.IsInf(delta, 0) {
		return 0, fractal.InvalidParam("delta", delta)
	}
	if !points.IsValid() {
		return 0, fractal.InvalidParam("points", "non-finite coordinate")
	}
	min, max := points.Bounds()
	if err := checkResolution(min, max, delta); err != nil {
		return 0, err
	}
	return countCells(points, min, delta), nil
}

func countCells(points fractal.PointSequence, origin fractal.Point, delta float64) int {
	occupied := make(map[cell]struct{}, len(points)/4+1)
	for _, p := range points {
		c := cell{
			ix: int64(math.Floor((p.X - origin.X) / delta)),
			iy: int64(math.Floor((p.Y - origin.Y) / delta)),
		}
		occupied[c] = struct{}{}
	}
	return len(occupied)
}

// EstimateBoxDimension counts boxes at every delta and fits
// log N(δ) = D·log(1/δ) + b. Stats are ordered by ascending delta.
func EstimateBoxDimension(points fractal.PointSequence, deltas []float64) (BoxResult, error) {
	if len(points) == 0 {
		return BoxResult{}, &fractal.ParamError{Name: "points", Value: 0, Wrapped: fractal.ErrInsufficientData}
	}
	if !points.IsValid() {
		return BoxResult{}, fractal.InvalidParam("points", "non-finite coordinate")
	}
	scales, err := sortedScales("delta", deltas)
	if err != nil {
		return BoxResult{}, err
	}
	if distinctCount(scales) < 2 {
		return BoxResult{}, &fractal.ParamError{Name: "deltas", Value: len(scales), Wrapped: fractal.ErrInsufficientData}
	}

	min, max := points.Bounds()
	if err := checkResolution(min, max, scales[0]); err != nil {
		return BoxResult{}, err
	}
	stats := make([]fractal.ScaleStatistic, len(scales))
	x := make([]float64, len(scales))
	y := make([]float64, len(scales))
	for i, d := range scales {
		n := countCells(points, min, d)
		stats[i] = fractal.ScaleStatistic{Scale: d, Value: float64(n)}
		x[i] = math.Log(1 / d)
		y[i] = math.Log(float64(n))
	}

	fit, err := FitLogLog(x, y)
	if err != nil {
		return BoxResult{}, err
	}
	return BoxResult{Fit: fit, Stats: stats}, nil
}

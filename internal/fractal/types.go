package fractal

import (
	"fmt"
	"math"
)

// PointSequence is an ordered list of points. The order is the polyline order
// for grammar curves and the visitation order for chaos-game samples.
type PointSequence []Point

func (s PointSequence) Clone() PointSequence {
	c := make(PointSequence, len(s))
	copy(c, s)
	return c
}

func (s PointSequence) Len() int { return len(s) }

// Bounds returns the component-wise minimum and maximum. An empty sequence
// returns two zero points.
func (s PointSequence) Bounds() (min, max Point) {
	if len(s) == 0 {
		return Point{}, Point{}
	}
	min, max = s[0], s[0]
	for _, p := range s[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// IsValid reports whether every point is finite.
func (s PointSequence) IsValid() bool {
	for _, p := range s {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// XY splits the sequence into coordinate slices.
func (s PointSequence) XY() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// ScaleStatistic is one measurement (box count, correlation sum or
// lacunarity) taken at one scale.
type ScaleStatistic struct {
	Scale float64 `json:"scale"`
	Value float64 `json:"value"`
}

// Scales returns the scales of stats in order.
func Scales(stats []ScaleStatistic) []float64 {
	out := make([]float64, len(stats))
	for i, st := range stats {
		out[i] = st.Scale
	}
	return out
}

// Values returns the measurements of stats in order.
func Values(stats []ScaleStatistic) []float64 {
	out := make([]float64, len(stats))
	for i, st := range stats {
		out[i] = st.Value
	}
	return out
}

// FitResult is a linear fit y = Slope·x + Intercept in log-log space.
// R is the goodness of fit, sqrt(max(0, 1 − SSres/SStot)), and 1 when the
// data has no variance.
type FitResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R         float64 `json:"r"`
}

func (f FitResult) String() string {
	return fmt.Sprintf("slope=%.4f intercept=%.4f r=%.4f", f.Slope, f.Intercept, f.R)
}

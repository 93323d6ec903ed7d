package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/levy/internal/fractal"
)

// FitLogLog fits y = slope·x + intercept by ordinary least squares. x and y
// are expected to be logarithms already. At least two distinct x values are
// required.
func FitLogLog(x, y []float64) (fractal.FitResult, error) {
	if len(x) != len(y) {
		return fractal.FitResult{}, fractal.InvalidParam("fit lengths", [2]int{len(x), len(y)})
	}
	if len(x) < 2 || !hasSpread(x) {
		return fractal.FitResult{}, &fractal.ParamError{Name: "distinct scales", Value: len(x), Wrapped: fractal.ErrInsufficientData}
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return fractal.FitResult{}, fractal.InvalidParam("fit input", i)
		}
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	r := 1.0
	if ssTot := sumSquaredDeviations(y); ssTot > 0 {
		r = math.Sqrt(math.Max(0, stat.RSquared(x, y, nil, intercept, slope)))
	}
	return fractal.FitResult{Slope: slope, Intercept: intercept, R: r}, nil
}

func hasSpread(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return true
		}
	}
	return false
}

func sumSquaredDeviations(y []float64) float64 {
	mean := stat.Mean(y, nil)
	ss := 0.0
	for _, v := range y {
		ss += (v - mean) * (v - mean)
	}
	return ss
}

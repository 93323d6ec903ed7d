package analysis

import (
	"math"
	"sort"

	"github.com/san-kum/levy/internal/fractal"
)

// DyadicScales returns 2^-from, 2^-(from+1), ..., 2^-to in ascending order.
func DyadicScales(from, to int) []float64 {
	if to < from {
		from, to = to, from
	}
	out := make([]float64, 0, to-from+1)
	for k := to; k >= from; k-- {
		out = append(out, math.Ldexp(1, -k))
	}
	return out
}

// sortedScales validates scales and returns them sorted ascending in a new
// slice.
func sortedScales(name string, scales []float64) ([]float64, error) {
	out := make([]float64, len(scales))
	for i, s := range scales {
		if !(s > 0) || math.IsInf(s, 0) {
			return nil, fractal.InvalidParam(name, s)
		}
		out[i] = s
	}
	sort.Float64s(out)
	return out, nil
}

func distinctCount(sorted []float64) int {
	n := 0
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			n++
		}
	}
	return n
}

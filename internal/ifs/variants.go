package ifs

import (
	"math"

	"github.com/san-kum/levy/internal/fractal"
)

// LevyMaps returns the two maps of the generalized Lévy curve: rotations by
// ±angleDeg scaled by 1/√2, the second translated by (0.5, 0.5). At 45° this
// is the classical Lévy C-curve.
func LevyMaps(angleDeg float64) []fractal.AffineMap {
	theta := angleDeg * math.Pi / 180
	s := fractal.Scaling(1 / math.Sqrt2)
	return []fractal.AffineMap{
		s.Mul(fractal.Rotation(theta)),
		s.Mul(fractal.Rotation(-theta)).WithTranslation(fractal.Vec{X: 0.5, Y: 0.5}),
	}
}

// LevyGeneralized returns the Lévy IFS for angleDeg with equal weights.
func LevyGeneralized(angleDeg float64) (*IFS, error) {
	if math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) {
		return nil, fractal.InvalidParam("angle_deg", angleDeg)
	}
	return New(LevyMaps(angleDeg), []float64{0.5, 0.5})
}

// Levy returns the classical Lévy C-curve IFS.
func Levy() *IFS {
	f, err := LevyGeneralized(45)
	if err != nil {
		panic(err)
	}
	return f
}

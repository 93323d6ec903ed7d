package fractal

import "math"

// AffineMap describes the transform p ↦ L·p + t with
//
//	L = | A C |    t = | E |
//	    | B D |        | F |
//
// The zero value maps every point to the origin; use [Identity] for the
// identity. AffineMap is a value type and is never modified in place.
type AffineMap struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = AffineMap{A: 1, D: 1}

// NewAffineMap builds a map from a row-major 2x2 linear part and a
// translation.
func NewAffineMap(linear [2][2]float64, translation Vec) AffineMap {
	return AffineMap{
		A: linear[0][0], C: linear[0][1],
		B: linear[1][0], D: linear[1][1],
		E: translation.X, F: translation.Y,
	}
}

// Rotation returns a counter-clockwise rotation by th radians about the
// origin.
func Rotation(th float64) AffineMap {
	sin, cos := math.Sincos(th)
	return AffineMap{A: cos, B: sin, C: -sin, D: cos}
}

// Scaling returns a uniform scaling by s about the origin.
func Scaling(s float64) AffineMap {
	return AffineMap{A: s, D: s}
}

// Translation returns a pure translation by v.
func Translation(v Vec) AffineMap {
	return AffineMap{A: 1, D: 1, E: v.X, F: v.Y}
}

// Mul returns the composition m∘o, so that m.Mul(o) applied to p equals
// m applied to (o applied to p).
func (m AffineMap) Mul(o AffineMap) AffineMap {
	return AffineMap{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// Then returns the map that applies m first and o second.
func (m AffineMap) Then(o AffineMap) AffineMap {
	return o.Mul(m)
}

// WithTranslation returns m with its translation replaced by v.
func (m AffineMap) WithTranslation(v Vec) AffineMap {
	m.E, m.F = v.X, v.Y
	return m
}

// Apply is the same as p.Transform(m).
func (m AffineMap) Apply(p Point) Point {
	return p.Transform(m)
}

// Determinant returns the determinant of the linear part.
func (m AffineMap) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Linear returns the row-major linear part.
func (m AffineMap) Linear() [2][2]float64 {
	return [2][2]float64{{m.A, m.C}, {m.B, m.D}}
}

// Translation returns the translation part.
func (m AffineMap) Translation() Vec {
	return Vec{X: m.E, Y: m.F}
}

// IsFinite reports whether all coefficients are finite.
func (m AffineMap) IsFinite() bool {
	for _, v := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

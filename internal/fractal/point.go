package fractal

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Translate(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Transform applies m to p.
func (p Point) Transform(m AffineMap) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Sub computes p−o.
func (p Point) Sub(o Point) Vec {
	return Vec{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

type Vec struct {
	X float64
	Y float64
}

// VecFromAngle returns the unit vector at th radians from the positive x
// axis, turning counter-clockwise in a y-up frame.
func VecFromAngle(th float64) Vec {
	y, x := math.Sincos(th)
	return Vec{X: x, Y: y}
}

func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Hypot returns the magnitude of the vector.
func (v Vec) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

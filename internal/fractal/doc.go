// Package fractal provides the shared primitives for generating and measuring
// plane fractal curves.
//
// The package defines the value types every other package exchanges:
//
//   - [Point] and [Vec]: plane coordinates and displacements
//   - [AffineMap]: a 2D affine transform (linear part + translation)
//   - [PointSequence]: the ordered output of every generation method
//   - [ScaleStatistic]: one measurement taken at one scale
//   - [FitResult]: a log-log least squares fit
//
// It also owns the error kinds reported by the generators and estimators,
// see [ErrInvalidParameter] and friends.
//
// # Example
//
//	m := fractal.Rotation(math.Pi / 4).Mul(fractal.Scaling(1 / math.Sqrt2))
//	p := fractal.Pt(1, 0).Transform(m)
//
// # Thread Safety
//
// All types are plain values or slices owned by the caller. Nothing in this
// package holds global mutable state.
package fractal

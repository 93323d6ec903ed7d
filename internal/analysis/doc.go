// Package analysis estimates the fractal dimension of planar point sets.
//
// The package includes three scale-based estimators:
//
//   - [EstimateBoxDimension]: box counting on a grid anchored at the set's
//     minimum corner, fitted as log N(δ) against log(1/δ)
//   - [EstimateCorrelationDimension]: Grassberger–Procaccia correlation sum
//     over randomly sampled point pairs, fitted as log C(r) against log r
//   - [Lacunarity]: gliding-box lacunarity Λ(δ) = var/mean² + 1 of the cell
//     occupancy histogram
//
// Every estimator returns its per-scale statistics alongside the fit so
// callers can inspect or re-plot them. Inputs are never modified.
//
// # Calibration
//
// A dense, uniformly filled square has dimension 2:
//
//	res, _ := analysis.EstimateBoxDimension(lattice, analysis.DyadicScales(2, 5))
//	if math.Abs(res.Fit.Slope-2) < 0.3 {
//	    // estimator behaves
//	}
package analysis

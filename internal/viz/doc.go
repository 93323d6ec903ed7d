// Package viz renders curves and estimator output as terminal text.
//
//   - [Canvas]: braille pixel canvas, 2×4 dots per cell
//   - [Plot]: fit a point sequence onto a canvas, as a polyline or a cloud
//   - [FitChart]: asciigraph chart of observed log-log data against the fit
//   - [StatsTable]: lipgloss table of per-scale statistics
package viz

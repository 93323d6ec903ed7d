package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/levy/internal/fractal"
)

// FitChart plots observed y values against the fitted line at the same x.
// x must be in plotting order. Charts with fewer than two samples render as
// an empty string.
func FitChart(x, y []float64, fit fractal.FitResult, caption string) string {
	if len(x) < 2 || len(x) != len(y) {
		return ""
	}
	fitted := make([]float64, len(x))
	for i, v := range x {
		fitted[i] = fit.Slope*v + fit.Intercept
	}
	return asciigraph.PlotMany([][]float64{y, fitted},
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Yellow),
		asciigraph.Caption(caption),
	)
}

// SeriesChart plots one series, such as lacunarity over box sizes.
func SeriesChart(values []float64, caption string) string {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) < 2 {
		return ""
	}
	return asciigraph.Plot(clean,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}

package analysis

import (
	"math"

	"github.com/san-kum/levy/internal/fractal"
)

// SpanEpsilon is the smallest axis span used when normalizing. Point sets
// with a narrower span are stretched as if their span were SpanEpsilon.
const SpanEpsilon = 1e-12

// Normalization describes how a point set was mapped into the unit square.
type Normalization struct {
	Min   fractal.Point `json:"min"`
	SpanX float64       `json:"span_x"`
	SpanY float64       `json:"span_y"`
	// Degenerate is set when an axis span was floored to SpanEpsilon.
	Degenerate bool `json:"degenerate"`
}

// Err returns fractal.ErrDegenerateGeometry when the normalization had to
// floor a span, and nil otherwise.
func (n Normalization) Err() error {
	if n.Degenerate {
		return &fractal.ParamError{Name: "span", Value: [2]float64{n.SpanX, n.SpanY}, Wrapped: fractal.ErrDegenerateGeometry}
	}
	return nil
}

// NormalizeUnit maps points into [0, 1]² with an independent min-max
// rescaling per axis. The input is not modified.
func NormalizeUnit(points fractal.PointSequence) (fractal.PointSequence, Normalization, error) {
	if len(points) == 0 {
		return nil, Normalization{}, &fractal.ParamError{Name: "points", Value: 0, Wrapped: fractal.ErrInsufficientData}
	}
	if !points.IsValid() {
		return nil, Normalization{}, fractal.InvalidParam("points", "non-finite coordinate")
	}

	min, max := points.Bounds()
	norm := Normalization{
		Min:   min,
		SpanX: max.X - min.X,
		SpanY: max.Y - min.Y,
	}
	if norm.SpanX < SpanEpsilon {
		norm.SpanX = SpanEpsilon
		norm.Degenerate = true
	}
	if norm.SpanY < SpanEpsilon {
		norm.SpanY = SpanEpsilon
		norm.Degenerate = true
	}

	out := make(fractal.PointSequence, len(points))
	for i, p := range points {
		out[i] = fractal.Point{
			X: math.Min(1, (p.X-min.X)/norm.SpanX),
			Y: math.Min(1, (p.Y-min.Y)/norm.SpanY),
		}
	}
	return out, norm, nil
}

// RequireSpan returns fractal.ErrDegenerateGeometry when points have zero
// extent along either axis.
func RequireSpan(points fractal.PointSequence) error {
	_, norm, err := NormalizeUnit(points)
	if err != nil {
		return err
	}
	return norm.Err()
}

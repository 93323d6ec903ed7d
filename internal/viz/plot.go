package viz

import (
	"math"

	"github.com/san-kum/levy/internal/fractal"
)

// Style selects how Plot draws a sequence.
type Style int

const (
	// Polyline joins consecutive points.
	Polyline Style = iota
	// Scatter draws each point on its own.
	Scatter
)

// Plot draws points onto a w×h cell canvas. The bounding box is scaled
// uniformly to fit and centered, with y pointing up. Non-finite points are
// skipped.
func Plot(points fractal.PointSequence, w, h int, style Style) *Canvas {
	c := NewCanvas(w, h)
	if len(points) == 0 {
		return c
	}
	pw, ph := c.PixelSize()
	proj := newProjection(points, pw, ph)

	havePrev := false
	var px, py int
	for _, p := range points {
		if !p.IsFinite() {
			havePrev = false
			continue
		}
		x, y := proj.apply(p)
		if style == Polyline && havePrev {
			c.DrawLine(px, py, x, y)
		} else {
			c.Set(x, y)
		}
		px, py, havePrev = x, y, true
	}
	return c
}

type projection struct {
	min        fractal.Point
	scale      float64
	offX, offY float64
	pixelH     int
}

func newProjection(points fractal.PointSequence, pw, ph int) projection {
	min, max := finiteBounds(points)
	spanX := math.Max(max.X-min.X, 1e-12)
	spanY := math.Max(max.Y-min.Y, 1e-12)
	scale := math.Min(float64(pw-1)/spanX, float64(ph-1)/spanY)
	return projection{
		min:    min,
		scale:  scale,
		offX:   (float64(pw-1) - spanX*scale) / 2,
		offY:   (float64(ph-1) - spanY*scale) / 2,
		pixelH: ph,
	}
}

func (pr projection) apply(p fractal.Point) (int, int) {
	x := (p.X-pr.min.X)*pr.scale + pr.offX
	y := (p.Y-pr.min.Y)*pr.scale + pr.offY
	return int(math.Round(x)), pr.pixelH - 1 - int(math.Round(y))
}

func finiteBounds(points fractal.PointSequence) (min, max fractal.Point) {
	first := true
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		if first {
			min, max, first = p, p, false
			continue
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

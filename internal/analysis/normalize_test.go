package analysis

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/levy/internal/fractal"
)

var _ = Describe("NormalizeUnit", func() {
	It("maps the bounding box onto the unit square", func() {
		in := fractal.PointSequence{fractal.Pt(-2, 10), fractal.Pt(2, 14), fractal.Pt(0, 11)}
		out, norm, err := NormalizeUnit(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(norm.Degenerate).To(BeFalse())
		Expect(norm.Err()).To(Succeed())
		Expect(norm.SpanX).To(Equal(4.0))
		Expect(norm.SpanY).To(Equal(4.0))
		Expect(out).To(Equal(fractal.PointSequence{fractal.Pt(0, 0), fractal.Pt(1, 1), fractal.Pt(0.5, 0.25)}))
	})

	It("leaves its input alone", func() {
		in := fractal.PointSequence{fractal.Pt(-2, 10), fractal.Pt(2, 14)}
		before := in.Clone()
		_, _, err := NormalizeUnit(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(in).To(Equal(before))
	})

	It("floors a zero span and flags it", func() {
		out, norm, err := NormalizeUnit(horizontalLine(5))
		Expect(err).NotTo(HaveOccurred())
		Expect(norm.Degenerate).To(BeTrue())
		Expect(norm.SpanY).To(Equal(SpanEpsilon))
		Expect(norm.Err()).To(MatchError(fractal.ErrDegenerateGeometry))
		for _, p := range out {
			Expect(p.Y).To(Equal(0.0))
		}
	})

	It("rejects empty and non-finite input", func() {
		_, _, err := NormalizeUnit(nil)
		Expect(err).To(MatchError(fractal.ErrInsufficientData))

		_, _, err = NormalizeUnit(fractal.PointSequence{fractal.Pt(math.NaN(), 0)})
		Expect(err).To(MatchError(fractal.ErrInvalidParameter))
	})
})

var _ = Describe("RequireSpan", func() {
	It("accepts a two-dimensional set", func() {
		Expect(RequireSpan(cellCentres(3))).To(Succeed())
	})

	It("rejects a single repeated point", func() {
		pts := fractal.PointSequence{fractal.Pt(1, 1), fractal.Pt(1, 1)}
		Expect(RequireSpan(pts)).To(MatchError(fractal.ErrDegenerateGeometry))
	})
})

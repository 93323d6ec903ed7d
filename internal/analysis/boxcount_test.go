package analysis

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/levy/internal/fractal"
)

var _ = Describe("Box counting", func() {
	Describe("BoxCount", func() {
		It("counts a repeated point once at every scale", func() {
			pts := fractal.PointSequence{fractal.Pt(3, 3), fractal.Pt(3, 3), fractal.Pt(3, 3)}
			for _, d := range []float64{1e-6, 0.01, 1, 100} {
				n, err := BoxCount(pts, d)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(1))
			}
		})

		It("counts every occupied cell of a lattice", func() {
			n, err := BoxCount(cellCentres(8), 1.0/8)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(64))
		})

		It("never increases as the box grows", func() {
			pts := uniformCloud(5000, 7)
			prev := math.MaxInt
			for _, d := range DyadicScales(0, 8) {
				n, err := BoxCount(pts, d)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(BeNumerically("<=", prev))
				prev = n
			}
		})

		It("rejects boxes too small to index exactly", func() {
			pts := fractal.PointSequence{fractal.Pt(0, 0), fractal.Pt(1e7, 0), fractal.Pt(2e7, 0)}
			n, err := BoxCount(pts, 1e-6)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(3))

			_, err = BoxCount(pts, 1e-12)
			Expect(err).To(MatchError(fractal.ErrInvalidParameter))

			_, err = EstimateBoxDimension(pts, []float64{1, 1e-12})
			Expect(err).To(MatchError(fractal.ErrInvalidParameter))
		})

		DescribeTable("rejects bad input",
			func(pts fractal.PointSequence, delta float64, kind error) {
				_, err := BoxCount(pts, delta)
				Expect(err).To(MatchError(kind))
			},
			Entry("empty", fractal.PointSequence{}, 0.1, fractal.ErrInsufficientData),
			Entry("zero delta", cellCentres(2), 0.0, fractal.ErrInvalidParameter),
			Entry("negative delta", cellCentres(2), -0.5, fractal.ErrInvalidParameter),
			Entry("NaN delta", cellCentres(2), math.NaN(), fractal.ErrInvalidParameter),
			Entry("infinite delta", cellCentres(2), math.Inf(1), fractal.ErrInvalidParameter),
		)
	})

	Describe("EstimateBoxDimension", func() {
		It("gives 2 for a filled square", func() {
			res, err := EstimateBoxDimension(cellCentres(128), DyadicScales(2, 5))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Dimension()).To(BeNumerically("~", 2, 0.3))
			Expect(res.Fit.R).To(BeNumerically(">", 0.99))
		})

		It("gives 1 for a segment", func() {
			res, err := EstimateBoxDimension(horizontalLine(4096), DyadicScales(2, 8))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Dimension()).To(BeNumerically("~", 1, 0.1))
		})

		It("gives 0 with a perfect fit for a single point", func() {
			res, err := EstimateBoxDimension(fractal.PointSequence{fractal.Pt(1, 2)}, []float64{0.1, 0.5})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Dimension()).To(BeNumerically("~", 0, 1e-12))
			Expect(res.Fit.R).To(Equal(1.0))
		})

		It("reports stats by ascending delta without touching the inputs", func() {
			pts := uniformCloud(200, 3)
			ptsBefore := pts.Clone()
			deltas := []float64{0.5, 0.1, 0.25}
			res, err := EstimateBoxDimension(pts, deltas)
			Expect(err).NotTo(HaveOccurred())
			Expect(fractal.Scales(res.Stats)).To(Equal([]float64{0.1, 0.25, 0.5}))
			Expect(deltas).To(Equal([]float64{0.5, 0.1, 0.25}))
			Expect(pts).To(Equal(ptsBefore))
		})

		DescribeTable("rejects bad input",
			func(pts fractal.PointSequence, deltas []float64, kind error) {
				_, err := EstimateBoxDimension(pts, deltas)
				Expect(err).To(MatchError(kind))
			},
			Entry("empty points", fractal.PointSequence{}, []float64{0.1, 0.2}, fractal.ErrInsufficientData),
			Entry("one delta", cellCentres(2), []float64{0.1}, fractal.ErrInsufficientData),
			Entry("repeated delta", cellCentres(2), []float64{0.1, 0.1}, fractal.ErrInsufficientData),
			Entry("non-positive delta", cellCentres(2), []float64{0.1, 0}, fractal.ErrInvalidParameter),
		)
	})
})

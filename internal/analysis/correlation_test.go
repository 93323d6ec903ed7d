package analysis

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/levy/internal/fractal"
)

var _ = Describe("EstimateCorrelationDimension", func() {
	radii := []float64{0.02, 0.05, 0.1, 0.2}

	It("gives 2 for a filled square", func() {
		res, err := EstimateCorrelationDimension(cellCentres(128), radii, CorrelationOptions{Seed: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Dimension()).To(BeNumerically("~", 2, 0.3))
		Expect(res.PairsUsed).To(BeNumerically("<=", DefaultMaxPairs))
		Expect(res.PairsUsed).To(BeNumerically(">", DefaultMaxPairs*9/10))
		Expect(res.Normalization.Degenerate).To(BeFalse())
	})

	It("gives 1 for a segment and flags the flat axis", func() {
		res, err := EstimateCorrelationDimension(horizontalLine(2000), []float64{0.01, 0.03, 0.1}, CorrelationOptions{Seed: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Dimension()).To(BeNumerically("~", 1, 0.2))
		Expect(res.Normalization.Degenerate).To(BeTrue())
	})

	It("is deterministic for a fixed seed", func() {
		pts := uniformCloud(1000, 11)
		opts := CorrelationOptions{MaxPairs: 5000, Seed: 42}
		a, err := EstimateCorrelationDimension(pts, radii, opts)
		Expect(err).NotTo(HaveOccurred())
		b, err := EstimateCorrelationDimension(pts, radii, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("draws no more pairs than exist", func() {
		pts := fractal.PointSequence{fractal.Pt(0, 0), fractal.Pt(1, 0), fractal.Pt(0, 1), fractal.Pt(1, 1)}
		for seed := int64(0); seed < 20; seed++ {
			res, err := EstimateCorrelationDimension(pts, []float64{0.5, 1.5}, CorrelationOptions{Seed: seed})
			if err != nil {
				Expect(err).To(MatchError(fractal.ErrInsufficientData))
				continue
			}
			Expect(res.PairsUsed).To(BeNumerically("<=", 6))
		}
	})

	It("reports C(r) as a non-decreasing fraction", func() {
		res, err := EstimateCorrelationDimension(uniformCloud(500, 5), radii, CorrelationOptions{MaxPairs: 2000})
		Expect(err).NotTo(HaveOccurred())
		prev := 0.0
		for _, st := range res.Stats {
			Expect(st.Value).To(BeNumerically(">=", prev))
			Expect(st.Value).To(BeNumerically("<=", 1))
			prev = st.Value
		}
	})

	It("clamps an empty correlation sum before the logarithm", func() {
		pts := fractal.PointSequence{fractal.Pt(0, 0), fractal.Pt(1, 1)}
		res, err := EstimateCorrelationDimension(pts, []float64{1e-6, 2}, CorrelationOptions{MaxPairs: 50, Seed: 9})
		if err != nil {
			Expect(err).To(MatchError(fractal.ErrInsufficientData))
			return
		}
		Expect(res.Stats[0].Value).To(Equal(0.0))
		Expect(res.Stats[1].Value).To(Equal(1.0))
		Expect(res.Fit.Slope).To(BeNumerically(">", 0))
	})

	DescribeTable("rejects bad input",
		func(pts fractal.PointSequence, radii []float64, opts CorrelationOptions, kind error) {
			_, err := EstimateCorrelationDimension(pts, radii, opts)
			Expect(err).To(MatchError(kind))
		},
		Entry("one point", fractal.PointSequence{fractal.Pt(0, 0)}, []float64{0.1, 0.2}, CorrelationOptions{}, fractal.ErrInsufficientData),
		Entry("one radius", cellCentres(3), []float64{0.1}, CorrelationOptions{}, fractal.ErrInsufficientData),
		Entry("negative radius", cellCentres(3), []float64{-0.1, 0.2}, CorrelationOptions{}, fractal.ErrInvalidParameter),
		Entry("negative pair budget", cellCentres(3), []float64{0.1, 0.2}, CorrelationOptions{MaxPairs: -1}, fractal.ErrInvalidParameter),
	)
})

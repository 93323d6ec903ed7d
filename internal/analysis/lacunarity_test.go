package analysis

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/levy/internal/fractal"
)

var _ = Describe("Lacunarity", func() {
	It("is 1 for a lattice with one point per cell", func() {
		res, err := Lacunarity(cellCentres(16), []float64{1.0 / 16, 1.0 / 8, 1.0 / 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Stats).To(HaveLen(3))
		for _, st := range res.Stats {
			Expect(st.Value).To(BeNumerically("~", 1, 1e-12))
		}
	})

	It("exceeds 1 for a clustered set", func() {
		pts := cellCentres(4)
		for i := 0; i < 100; i++ {
			pts = append(pts, fractal.Pt(0.01, 0.01))
		}
		res, err := Lacunarity(pts, []float64{0.25})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Stats[0].Value).To(BeNumerically(">", 1))
	})

	It("uses a single cell for boxes larger than the square", func() {
		res, err := Lacunarity(uniformCloud(100, 1), []float64{3})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Stats[0].Value).To(Equal(1.0))
	})

	It("reports NaN for an empty histogram", func() {
		Expect(math.IsNaN(lacunarityAt(nil, 4))).To(BeTrue())
	})

	It("places points on the far edge in the last cell", func() {
		counts := occupancy(fractal.PointSequence{fractal.Pt(1, 1), fractal.Pt(0, 0), fractal.Pt(0.1, 0.2)}, 2)
		Expect(counts).To(Equal(map[cell]int{{ix: 0, iy: 0}: 2, {ix: 1, iy: 1}: 1}))
	})

	It("rounds the bin count", func() {
		for delta, want := range map[float64]int{0.3: 3, 0.4: 3, 10: 1} {
			n, err := binsFor(delta)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(want))
		}
	})

	It("matches the dense population variance", func() {
		pts, _, err := NormalizeUnit(uniformCloud(500, 3))
		Expect(err).NotTo(HaveOccurred())
		for _, nbin := range []int{1, 3, 8} {
			dense := make([]float64, nbin*nbin)
			for c, n := range occupancy(pts, nbin) {
				dense[int(c.ix)*nbin+int(c.iy)] = float64(n)
			}
			mean, variance := stat.PopMeanVariance(dense, nil)
			Expect(lacunarityAt(pts, nbin)).To(BeNumerically("~", variance/(mean*mean)+1, 1e-9))
		}
	})

	It("handles very small boxes without a dense grid", func() {
		pts := fractal.PointSequence{fractal.Pt(0, 0), fractal.Pt(1, 1), fractal.Pt(0.5, 0.25)}
		res, err := Lacunarity(pts, []float64{1e-9})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Stats[0].Value).To(BeNumerically("~", 1e18/3, 1e6))

		_, err = Lacunarity(pts, []float64{1e-10, 0.5})
		Expect(err).To(MatchError(fractal.ErrInvalidParameter))
	})

	It("carries the normalization of a degenerate set", func() {
		res, err := Lacunarity(horizontalLine(10), []float64{0.5})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Normalization.Degenerate).To(BeTrue())
	})

	It("rejects empty input and bad deltas", func() {
		_, err := Lacunarity(nil, []float64{0.5})
		Expect(err).To(MatchError(fractal.ErrInsufficientData))

		_, err = Lacunarity(cellCentres(2), []float64{0})
		Expect(err).To(MatchError(fractal.ErrInvalidParameter))
	})
})

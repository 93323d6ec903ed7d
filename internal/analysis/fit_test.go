package analysis

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/levy/internal/fractal"
)

var _ = Describe("FitLogLog", func() {
	It("recovers an exact line", func() {
		x := []float64{0, 1, 2, 3}
		y := []float64{1, 3, 5, 7}
		fit, err := FitLogLog(x, y)
		Expect(err).NotTo(HaveOccurred())
		Expect(fit.Slope).To(BeNumerically("~", 2, 1e-12))
		Expect(fit.Intercept).To(BeNumerically("~", 1, 1e-12))
		Expect(fit.R).To(BeNumerically("~", 1, 1e-12))
	})

	It("reports R = 1 when y has no variance", func() {
		fit, err := FitLogLog([]float64{1, 2, 3}, []float64{4, 4, 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(fit.Slope).To(BeNumerically("~", 0, 1e-12))
		Expect(fit.R).To(Equal(1.0))
	})

	It("reports R below 1 for scattered data", func() {
		fit, err := FitLogLog([]float64{0, 1, 2, 3}, []float64{0, 2, 1, 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(fit.R).To(BeNumerically(">", 0))
		Expect(fit.R).To(BeNumerically("<", 1))
	})

	DescribeTable("rejects unusable input",
		func(x, y []float64, kind error) {
			_, err := FitLogLog(x, y)
			Expect(err).To(MatchError(kind))
		},
		Entry("length mismatch", []float64{1, 2}, []float64{1}, fractal.ErrInvalidParameter),
		Entry("single point", []float64{1}, []float64{1}, fractal.ErrInsufficientData),
		Entry("no x spread", []float64{2, 2, 2}, []float64{1, 2, 3}, fractal.ErrInsufficientData),
		Entry("infinite y", []float64{1, 2}, []float64{1, math.Inf(-1)}, fractal.ErrInvalidParameter),
	)
})

var _ = Describe("DyadicScales", func() {
	It("lists powers of two ascending", func() {
		Expect(DyadicScales(2, 5)).To(Equal([]float64{1.0 / 32, 1.0 / 16, 1.0 / 8, 1.0 / 4}))
	})

	It("accepts swapped bounds", func() {
		Expect(DyadicScales(5, 2)).To(Equal(DyadicScales(2, 5)))
	})
})

package sampler_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hmcsim/internal/sampler"
)

var _ = Describe("Metropolis test", func() {
	DescribeTable("AcceptProbability",
		func(h0, h1, want float64) {
			Expect(sampler.AcceptProbability(h0, h1)).To(BeNumerically("~", want, 1e-12))
		},
		Entry("energy decreased", 2.0, 1.0, 1.0),
		Entry("energy unchanged", 1.0, 1.0, 1.0),
		Entry("energy increased", 1.0, 2.0, math.Exp(-1)),
		Entry("proposal at +Inf", 1.0, math.Inf(1), 0.0),
		Entry("proposal at NaN", 1.0, math.NaN(), 0.0),
		Entry("both at +Inf", math.Inf(1), math.Inf(1), 0.0),
		Entry("escape from +Inf", math.Inf(1), 1.0, 0.0),
	)

	It("accepts draws strictly below the probability", func() {
		Expect(sampler.Accept(0.5, 0.49)).To(BeTrue())
		Expect(sampler.Accept(0.5, 0.5)).To(BeFalse())
		Expect(sampler.Accept(0, 0)).To(BeFalse())
		Expect(sampler.Accept(1, 0.999999)).To(BeTrue())
	})
})

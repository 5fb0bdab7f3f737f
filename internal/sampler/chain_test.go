package sampler_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hmcsim/internal/dynamo"
	"github.com/san-kum/hmcsim/internal/metrics"
	"github.com/san-kum/hmcsim/internal/sampler"
	"github.com/san-kum/hmcsim/internal/target"
)

func allFinite(samples []dynamo.Vec) bool {
	for _, q := range samples {
		if !q.IsValid() {
			return false
		}
	}
	return true
}

var _ = Describe("RunChain", func() {
	DescribeTable("returns exactly n samples with a consistent acceptance rate",
		func(n int, stepSize float64, numSteps int, name string) {
			res, err := sampler.RunChain(n, stepSize, numSteps, 0, 0, name, sampler.WithSeed(11))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Samples).To(HaveLen(n))
			Expect(res.AcceptanceRate).To(Equal(float64(res.Accepted) / float64(n)))
			Expect(res.AcceptanceRate).To(BeNumerically(">=", 0))
			Expect(res.AcceptanceRate).To(BeNumerically("<=", 1))
		},
		Entry("bimodal", 100, 0.1, 10, "bimodal"),
		Entry("banana", 100, 0.1, 10, "banana"),
		Entry("single sample", 1, 0.05, 3, "banana"),
		Entry("oversized step", 50, 2.2, 10, "bimodal"),
	)

	It("samples the banana target with finite coordinates", func() {
		res, err := sampler.RunChain(1000, 0.1, 10, 0, 0, "banana", sampler.WithSeed(2024))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Samples).To(HaveLen(1000))
		Expect(allFinite(res.Samples)).To(BeTrue())
		Expect(res.AcceptanceRate).To(BeNumerically(">", 0.1))
	})

	It("accepts a short move that starts on a bimodal mode", func() {
		accepted := 0
		for seed := uint64(1); seed <= 50; seed++ {
			res, err := sampler.RunChain(1, 0.01, 1, 2.5, 2.5, "bimodal", sampler.WithSeed(seed))
			Expect(err).NotTo(HaveOccurred())
			accepted += res.Accepted
		}
		Expect(accepted).To(BeNumerically(">=", 49))
	})

	It("moves away from the starting point", func() {
		res, err := sampler.RunChain(100, 0.15, 20, 0, 0, "bimodal", sampler.WithSeed(5))
		Expect(err).NotTo(HaveOccurred())

		s := metrics.Summarize(res)
		Expect(s.Variance.X).To(BeNumerically(">", 0.001))
		Expect(s.Variance.Y).To(BeNumerically(">", 0.001))
	})

	It("accepts more often with a small step than with a large one", func() {
		small, err := sampler.RunChain(200, 0.01, 10, 0, 0, "bimodal", sampler.WithSeed(3))
		Expect(err).NotTo(HaveOccurred())
		large, err := sampler.RunChain(200, 2.2, 10, 0, 0, "bimodal", sampler.WithSeed(3))
		Expect(err).NotTo(HaveOccurred())

		Expect(small.AcceptanceRate).To(BeNumerically(">", large.AcceptanceRate))
		Expect(small.AcceptanceRate).To(BeNumerically(">", 0.8))
		Expect(large.AcceptanceRate).To(BeNumerically("<", 0.5))
	})

	It("balances the two bimodal modes across independent chains", func() {
		var sum dynamo.Vec
		total := 0

		for seed := uint64(1); seed <= 200; seed++ {
			res, err := sampler.RunChain(200, 0.15, 20, 0, 0, "bimodal", sampler.WithSeed(seed))
			Expect(err).NotTo(HaveOccurred())
			for _, q := range res.Samples {
				sum = sum.Add(q)
				total++
			}
		}

		mean := sum.Scale(1 / float64(total))
		Expect(math.Abs(mean.X)).To(BeNumerically("<", 0.6))
		Expect(math.Abs(mean.Y)).To(BeNumerically("<", 0.6))
	})

	It("runs without a seed", func() {
		res, err := sampler.RunChain(20, 0.1, 5, 0, 0, "bimodal")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Samples).To(HaveLen(20))
	})

	Context("with an explicit seed", func() {
		It("is reproducible", func() {
			a, err := sampler.RunChain(300, 0.1, 10, 0.5, -0.5, "banana", sampler.WithSeed(99))
			Expect(err).NotTo(HaveOccurred())
			b, err := sampler.RunChain(300, 0.1, 10, 0.5, -0.5, "banana", sampler.WithSeed(99))
			Expect(err).NotTo(HaveOccurred())

			Expect(a.Samples).To(Equal(b.Samples))
			Expect(a.AcceptanceRate).To(Equal(b.AcceptanceRate))
		})

		It("matches an injected source with the same seed", func() {
			a, err := sampler.RunChain(50, 0.1, 10, 0, 0, "bimodal", sampler.WithSeed(8))
			Expect(err).NotTo(HaveOccurred())
			b, err := sampler.RunChain(50, 0.1, 10, 0, 0, "bimodal", sampler.WithSource(sampler.NewSource(8)))
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Samples).To(Equal(b.Samples))
		})

		It("differs between seeds", func() {
			a, err := sampler.RunChain(100, 0.1, 10, 0, 0, "banana", sampler.WithSeed(1))
			Expect(err).NotTo(HaveOccurred())
			b, err := sampler.RunChain(100, 0.1, 10, 0, 0, "banana", sampler.WithSeed(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Samples).NotTo(Equal(b.Samples))
		})
	})

	It("rejects divergent trajectories without failing", func() {
		res, err := sampler.RunChain(100, 50, 10, 2.5, 2.5, "bimodal", sampler.WithSeed(4))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Samples).To(HaveLen(100))
		Expect(allFinite(res.Samples)).To(BeTrue())
		Expect(res.AcceptanceRate).To(BeNumerically("<", 0.1))
	})

	DescribeTable("rejects invalid arguments",
		func(n int, stepSize float64, numSteps int, x float64, name string) {
			res, err := sampler.RunChain(n, stepSize, numSteps, x, 0, name)
			Expect(err).To(MatchError(dynamo.ErrInvalidArgument))
			Expect(res).To(BeNil())
		},
		Entry("zero samples", 0, 0.1, 10, 0.0, "banana"),
		Entry("negative samples", -5, 0.1, 10, 0.0, "banana"),
		Entry("zero step size", 10, 0.0, 10, 0.0, "banana"),
		Entry("negative step size", 10, -0.1, 10, 0.0, "banana"),
		Entry("zero steps", 10, 0.1, 0, 0.0, "banana"),
		Entry("non-finite start", 10, 0.1, 10, math.Inf(1), "banana"),
		Entry("unknown target", 10, 0.1, 10, 0.0, "unknown_dist_name"),
	)
})

var _ = Describe("Sampler", func() {
	It("stops on a cancelled context without a partial result", func() {
		s, err := sampler.New(target.Banana, dynamo.DefaultConfig(), sampler.WithSeed(1))
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := s.Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(res).To(BeNil())
	})

	It("reports attached metrics", func() {
		cfg := dynamo.DefaultConfig()
		cfg.Samples = 200
		s, err := sampler.New(target.Banana, cfg, sampler.WithSeed(1), sampler.WithMetrics(metrics.DefaultMetrics()...))
		Expect(err).NotTo(HaveOccurred())

		res, err := s.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Metrics).To(HaveKey("mean_x"))
		Expect(res.Metrics).To(HaveKey("mean_y"))
		Expect(res.Metrics).To(HaveKey("mode_balance"))

		s2 := metrics.Summarize(res)
		Expect(res.Metrics["mean_x"]).To(BeNumerically("~", s2.Mean.X, 1e-9))
	})

	It("refuses a nil potential", func() {
		_, err := sampler.New(nil, dynamo.DefaultConfig())
		Expect(err).To(MatchError(dynamo.ErrInvalidArgument))
	})
})

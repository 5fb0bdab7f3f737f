package sampler

import "math"

// AcceptProbability is min(1, exp(h0 - h1)). A difference that is not a
// finite number, such as a proposal that escaped into an infinite-energy
// region, yields zero.
func AcceptProbability(h0, h1 float64) float64 {
	diff := h0 - h1
	if math.IsNaN(diff) || math.IsInf(diff, 0) {
		return 0
	}
	return math.Min(1, math.Exp(diff))
}

// Accept reports whether a uniform draw u in [0, 1) falls under prob.
func Accept(prob, u float64) bool {
	return u < prob
}

package target

import (
	"math"

	"github.com/san-kum/hmcsim/internal/dynamo"
)

const (
	modeOffset = 2.5
	modeWidth  = 1.5
	ridgeScale = 10.0
)

// bimodalPotential has no floor inside the logarithm: far from both modes
// the density underflows to zero and the energy becomes +Inf, which the
// acceptance test treats as a certain rejection.
func bimodalPotential(q dynamo.Vec) float64 {
	d1 := (q.X-modeOffset)*(q.X-modeOffset) + (q.Y-modeOffset)*(q.Y-modeOffset)
	d2 := (q.X+modeOffset)*(q.X+modeOffset) + (q.Y+modeOffset)*(q.Y+modeOffset)
	return -math.Log(math.Exp(-d1/modeWidth) + math.Exp(-d2/modeWidth))
}

func bananaPotential(q dynamo.Vec) float64 {
	a := 1 - q.X
	b := q.Y - q.X*q.X
	return a*a + ridgeScale*b*b
}

package target

import "github.com/san-kum/hmcsim/internal/dynamo"

// GradientStep is the fixed finite-difference offset per axis.
const GradientStep = 1e-4

func centralDiff(pot dynamo.Potential, q dynamo.Vec) dynamo.Vec {
	uxp := pot.Potential(dynamo.Vec{X: q.X + GradientStep, Y: q.Y})
	uxm := pot.Potential(dynamo.Vec{X: q.X - GradientStep, Y: q.Y})
	uyp := pot.Potential(dynamo.Vec{X: q.X, Y: q.Y + GradientStep})
	uym := pot.Potential(dynamo.Vec{X: q.X, Y: q.Y - GradientStep})

	return dynamo.Vec{
		X: (uxp - uxm) / (2 * GradientStep),
		Y: (uyp - uym) / (2 * GradientStep),
	}
}

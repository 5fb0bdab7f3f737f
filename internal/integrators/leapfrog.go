package integrators

import "github.com/san-kum/hmcsim/internal/dynamo"

// Leapfrog advances a phase-space point with the velocity Verlet scheme.
// The gradient at the end of one step is reused for the first half-kick
// of the next, so numSteps steps cost numSteps+1 gradient evaluations.
type Leapfrog struct {
	observers []dynamo.Observer
}

func NewLeapfrog(observers ...dynamo.Observer) *Leapfrog {
	return &Leapfrog{observers: observers}
}

func (l *Leapfrog) AddObserver(o dynamo.Observer) { l.observers = append(l.observers, o) }

func (l *Leapfrog) Integrate(pot dynamo.Potential, q, p dynamo.Vec, stepSize float64, numSteps int) (dynamo.Vec, dynamo.Vec) {
	halfStep := 0.5 * stepSize
	grad := pot.Gradient(q)

	l.notify(0, q, p)

	for i := 1; i <= numSteps; i++ {
		p.X -= halfStep * grad.X
		p.Y -= halfStep * grad.Y

		q.X += stepSize * p.X
		q.Y += stepSize * p.Y

		grad = pot.Gradient(q)
		p.X -= halfStep * grad.X
		p.Y -= halfStep * grad.Y

		l.notify(i, q, p)
	}

	return q, p
}

func (l *Leapfrog) notify(step int, q, p dynamo.Vec) {
	for _, o := range l.observers {
		o.OnStep(step, q, p)
	}
}

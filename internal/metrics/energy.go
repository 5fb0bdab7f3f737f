package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/hmcsim/internal/dynamo"
	"github.com/san-kum/hmcsim/internal/integrators"
)

// EnergyDrift watches a leapfrog trajectory and records how far the
// Hamiltonian strays from its starting value.
type EnergyDrift struct {
	pot           dynamo.Potential
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
	trace         []float64
}

func NewEnergyDrift(pot dynamo.Potential) *EnergyDrift {
	return &EnergyDrift{pot: pot}
}

func (e *EnergyDrift) OnStep(step int, q, p dynamo.Vec) {
	energy := dynamo.Hamiltonian(e.pot, q, p)

	if e.samples == 0 {
		e.initialEnergy = energy
	}

	e.currentEnergy = energy
	e.samples++

	drift := math.Abs(energy - e.initialEnergy)
	e.trace = append(e.trace, drift)
	e.maxDrift = math.Max(e.maxDrift, drift)
}

// Value is the largest |H - H0| seen so far.
func (e *EnergyDrift) Value() float64 { return e.maxDrift }

// Final is |H - H0| at the last observed step.
func (e *EnergyDrift) Final() float64 { return math.Abs(e.currentEnergy - e.initialEnergy) }

func (e *EnergyDrift) Trace() []float64 { return e.trace }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxDrift = 0
	e.samples = 0
	e.trace = nil
}

type SweepLevel struct {
	StepSize   float64
	NumSteps   int
	MaxError   float64
	FinalError float64
	Trace      []float64
}

// EnergySweep integrates the same initial point over a fixed total time,
// halving the step size at each level.
func EnergySweep(pot dynamo.Potential, q0, p0 dynamo.Vec, totalTime float64, baseSteps, levels int) []SweepLevel {
	out := make([]SweepLevel, 0, levels)
	n := baseSteps
	for i := 0; i < levels; i++ {
		drift := NewEnergyDrift(pot)
		dt := totalTime / float64(n)
		integrators.NewLeapfrog(drift).Integrate(pot, q0, p0, dt, n)

		out = append(out, SweepLevel{
			StepSize:   dt,
			NumSteps:   n,
			MaxError:   drift.Value(),
			FinalError: drift.Final(),
			Trace:      drift.Trace(),
		})
		n *= 2
	}
	return out
}

// ConvergenceOrder fits log(MaxError) against log(StepSize) and returns
// the slope. A second order integrator gives a value near 2. Levels with
// a zero or non-finite error are skipped; NaN is returned when fewer than
// two remain.
func ConvergenceOrder(levels []SweepLevel) float64 {
	xs := make([]float64, 0, len(levels))
	ys := make([]float64, 0, len(levels))
	for _, l := range levels {
		if !(l.MaxError > 0) || math.IsInf(l.MaxError, 0) {
			continue
		}
		xs = append(xs, math.Log(l.StepSize))
		ys = append(ys, math.Log(l.MaxError))
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}

// PeakError is the largest max-error across all levels.
func PeakError(levels []SweepLevel) float64 {
	if len(levels) == 0 {
		return 0
	}
	errs := make([]float64, len(levels))
	for i, l := range levels {
		errs[i] = l.MaxError
	}
	return floats.Max(errs)
}

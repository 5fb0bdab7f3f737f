package dynamo

import (
	"fmt"
	"math"
)

// Vec is a point in the plane. It stores a position q or a momentum p
// depending on where it is used.
type Vec struct {
	X, Y float64
}

func (v Vec) IsValid() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

func (v Vec) Norm2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Add(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y}
}

func (v Vec) Scale(factor float64) Vec {
	return Vec{v.X * factor, v.Y * factor}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", v.X, v.Y)
}

// Potential is an energy landscape U(q) together with its gradient.
type Potential interface {
	Potential(q Vec) float64
	Gradient(q Vec) Vec
}

// Kinetic returns the unit-mass kinetic energy |p|²/2.
func Kinetic(p Vec) float64 {
	return 0.5 * p.Norm2()
}

// Hamiltonian returns U(q) + K(p).
func Hamiltonian(pot Potential, q, p Vec) float64 {
	return pot.Potential(q) + Kinetic(p)
}

type Config struct {
	Samples  int
	StepSize float64
	NumSteps int
	Start    Vec
}

func DefaultConfig() Config {
	return Config{
		Samples:  1000,
		StepSize: 0.1,
		NumSteps: 10,
	}
}

// Validate rejects configurations that cannot produce a well-defined chain.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return &ArgumentError{Name: "samples", Reason: fmt.Sprintf("must be positive, got %d", c.Samples)}
	}
	if c.NumSteps <= 0 {
		return &ArgumentError{Name: "num_steps", Reason: fmt.Sprintf("must be positive, got %d", c.NumSteps)}
	}
	if !(c.StepSize > 0) || math.IsInf(c.StepSize, 0) {
		return &ArgumentError{Name: "step_size", Reason: fmt.Sprintf("must be positive and finite, got %g", c.StepSize)}
	}
	if !c.Start.IsValid() {
		return &ArgumentError{Name: "start", Reason: fmt.Sprintf("must be finite, got %v", c.Start)}
	}
	return nil
}

// Result holds every position a chain kept, one per iteration.
type Result struct {
	Samples        []Vec
	Accepted       int
	AcceptanceRate float64
	Metrics        map[string]float64
}

// Metric accumulates a statistic over the positions a chain keeps.
type Metric interface {
	Name() string
	Observe(q Vec)
	Value() float64
	Reset()
}

// Observer sees every phase-space point an integrator visits.
type Observer interface {
	OnStep(step int, q, p Vec)
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

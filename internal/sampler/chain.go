package sampler

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/hmcsim/internal/dynamo"
	"github.com/san-kum/hmcsim/internal/integrators"
	"github.com/san-kum/hmcsim/internal/target"
)

type Sampler struct {
	pot        dynamo.Potential
	cfg        dynamo.Config
	integrator *integrators.Leapfrog
	momentum   distuv.Normal
	uniform    distuv.Uniform
	log        zerolog.Logger
	metrics    []dynamo.Metric
}

// New validates cfg and prepares a sampler for pot. Successive calls to
// Run continue the same random stream.
func New(pot dynamo.Potential, cfg dynamo.Config, opts ...Option) (*Sampler, error) {
	if pot == nil {
		return nil, &dynamo.ArgumentError{Name: "potential", Reason: "must not be nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	return &Sampler{
		pot:        pot,
		cfg:        cfg,
		integrator: integrators.NewLeapfrog(),
		momentum:   distuv.Normal{Mu: 0, Sigma: 1, Src: o.src},
		uniform:    distuv.Uniform{Min: 0, Max: 1, Src: o.src},
		log:        o.log,
		metrics:    o.metrics,
	}, nil
}

// Run draws cfg.Samples positions starting from cfg.Start. A cancelled
// context aborts the run and no partial result is returned.
func (s *Sampler) Run(ctx context.Context) (*dynamo.Result, error) {
	n := s.cfg.Samples
	result := &dynamo.Result{
		Samples: make([]dynamo.Vec, 0, n),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.log.Debug().
		Int("samples", n).
		Float64("step_size", s.cfg.StepSize).
		Int("num_steps", s.cfg.NumSteps).
		Stringer("start", s.cfg.Start).
		Msg("chain started")

	q := s.cfg.Start
	divergent := 0

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("chain interrupted at iteration %d: %w", i, ctx.Err())
		default:
		}

		p := dynamo.Vec{X: s.momentum.Rand(), Y: s.momentum.Rand()}
		h0 := dynamo.Hamiltonian(s.pot, q, p)

		qNew, pNew := s.integrator.Integrate(s.pot, q, p, s.cfg.StepSize, s.cfg.NumSteps)
		h1 := dynamo.Hamiltonian(s.pot, qNew, pNew)

		prob := AcceptProbability(h0, h1)
		if !dynamo.IsFinite(h0 - h1) {
			divergent++
			s.log.Debug().
				Int("iteration", i).
				Float64("h0", h0).
				Float64("h1", h1).
				Msg("non-finite energy, proposal rejected")
		}

		if Accept(prob, s.uniform.Rand()) {
			q = qNew
			result.Accepted++
		}

		result.Samples = append(result.Samples, q)
		for _, m := range s.metrics {
			m.Observe(q)
		}
	}

	result.AcceptanceRate = float64(result.Accepted) / float64(n)
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.log.Debug().
		Int("accepted", result.Accepted).
		Int("divergent", divergent).
		Float64("acceptance_rate", result.AcceptanceRate).
		Msg("chain finished")

	return result, nil
}

// RunChain samples the named target from (startX, startY). Unknown
// target names and unusable parameters fail with dynamo.ErrInvalidArgument.
func RunChain(nSamples int, stepSize float64, numSteps int, startX, startY float64, name string, opts ...Option) (*dynamo.Result, error) {
	variant, err := target.ParseVariant(name)
	if err != nil {
		return nil, err
	}

	cfg := dynamo.Config{
		Samples:  nSamples,
		StepSize: stepSize,
		NumSteps: numSteps,
		Start:    dynamo.Vec{X: startX, Y: startY},
	}

	s, err := New(variant, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(context.Background())
}

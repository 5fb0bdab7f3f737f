package experiment

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/hmcsim/internal/config"
	"github.com/san-kum/hmcsim/internal/dynamo"
	"github.com/san-kum/hmcsim/internal/metrics"
	"github.com/san-kum/hmcsim/internal/sampler"
	"github.com/san-kum/hmcsim/internal/target"
)

type Experiment struct {
	cfg     *config.Config
	variant target.Variant
	seed    uint64
	sampler *sampler.Sampler
	log     zerolog.Logger
}

type Outcome struct {
	Result  *dynamo.Result
	Summary metrics.Summary
	Seed    uint64
	Elapsed time.Duration
}

// New prepares one chain run from cfg. When cfg carries no seed a random
// one is drawn and kept so the run can be repeated.
func New(cfg *config.Config, log zerolog.Logger) (*Experiment, error) {
	variant, err := cfg.Variant()
	if err != nil {
		return nil, err
	}

	seed := rand.Uint64()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	s, err := sampler.New(variant, cfg.Chain(),
		sampler.WithSeed(seed),
		sampler.WithLogger(log),
		sampler.WithMetrics(metrics.DefaultMetrics()...),
	)
	if err != nil {
		return nil, err
	}

	return &Experiment{
		cfg:     cfg,
		variant: variant,
		seed:    seed,
		sampler: s,
		log:     log,
	}, nil
}

func (e *Experiment) Seed() uint64 { return e.seed }

func (e *Experiment) Variant() target.Variant { return e.variant }

func (e *Experiment) Run(ctx context.Context) (*Outcome, error) {
	start := time.Now()
	res, err := e.sampler.Run(ctx)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	e.log.Info().
		Str("target", e.variant.String()).
		Uint64("seed", e.seed).
		Int("samples", len(res.Samples)).
		Float64("acceptance_rate", res.AcceptanceRate).
		Dur("elapsed", elapsed).
		Msg("chain complete")

	return &Outcome{
		Result:  res,
		Summary: metrics.Summarize(res),
		Seed:    e.seed,
		Elapsed: elapsed,
	}, nil
}

// StepSizeRow is one line of a step-size comparison.
type StepSizeRow struct {
	StepSize float64
	Outcome  *Outcome
	Err      error
}

// CompareStepSizes runs cfg once per step size with the same seed.
func CompareStepSizes(ctx context.Context, cfg *config.Config, stepSizes []float64, log zerolog.Logger) []StepSizeRow {
	rows := make([]StepSizeRow, 0, len(stepSizes))
	for _, h := range stepSizes {
		c := *cfg
		c.StepSize = h

		row := StepSizeRow{StepSize: h}
		exp, err := New(&c, log)
		if err != nil {
			row.Err = err
			rows = append(rows, row)
			continue
		}
		row.Outcome, row.Err = exp.Run(ctx)
		rows = append(rows, row)
	}
	return rows
}

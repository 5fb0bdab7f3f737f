package sampler

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/san-kum/hmcsim/internal/dynamo"
)

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func randomSource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

type options struct {
	src     rand.Source
	log     zerolog.Logger
	metrics []dynamo.Metric
}

type Option func(*options)

func WithSeed(seed uint64) Option {
	return func(o *options) { o.src = NewSource(seed) }
}

func WithSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

func WithMetrics(metrics ...dynamo.Metric) Option {
	return func(o *options) { o.metrics = append(o.metrics, metrics...) }
}

func buildOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = randomSource()
	}
	return o
}

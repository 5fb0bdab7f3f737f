package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/hmcsim/internal/dynamo"
)

// Mean tracks the running mean of one coordinate.
type Mean struct {
	name  string
	axis  int
	sum   float64
	count int
}

func NewMeanX() *Mean { return &Mean{name: "mean_x", axis: 0} }
func NewMeanY() *Mean { return &Mean{name: "mean_y", axis: 1} }

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(q dynamo.Vec) {
	if m.axis == 0 {
		m.sum += q.X
	} else {
		m.sum += q.Y
	}
	m.count++
}

func (m *Mean) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.count = 0
}

// ModeBalance is the fraction of samples on the x+y > 0 side of the
// plane. For the bimodal target it should settle near one half once the
// chain crosses between modes.
type ModeBalance struct {
	upper   int
	samples int
}

func NewModeBalance() *ModeBalance { return &ModeBalance{} }

func (m *ModeBalance) Name() string { return "mode_balance" }

func (m *ModeBalance) Observe(q dynamo.Vec) {
	m.samples++
	if q.X+q.Y > 0 {
		m.upper++
	}
}

func (m *ModeBalance) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.upper) / float64(m.samples)
}

func (m *ModeBalance) Reset() {
	m.upper = 0
	m.samples = 0
}

// Summary describes the positions of a finished chain.
type Summary struct {
	Count          int
	Mean           dynamo.Vec
	Variance       dynamo.Vec
	AcceptanceRate float64
	Finite         bool
}

func Summarize(res *dynamo.Result) Summary {
	s := Summary{Count: len(res.Samples), AcceptanceRate: res.AcceptanceRate, Finite: true}
	if s.Count == 0 {
		return s
	}

	xs := make([]float64, s.Count)
	ys := make([]float64, s.Count)
	for i, q := range res.Samples {
		xs[i], ys[i] = q.X, q.Y
		if !q.IsValid() {
			s.Finite = false
		}
	}

	s.Mean.X, s.Variance.X = stat.MeanVariance(xs, nil)
	s.Mean.Y, s.Variance.Y = stat.MeanVariance(ys, nil)
	if s.Count == 1 {
		s.Variance = dynamo.Vec{}
	}
	return s
}

// MeanError is the distance of the sample mean from want.
func (s Summary) MeanError(want dynamo.Vec) float64 {
	return math.Sqrt(s.Mean.Sub(want).Norm2())
}

func DefaultMetrics() []dynamo.Metric {
	return []dynamo.Metric{NewMeanX(), NewMeanY(), NewModeBalance()}
}

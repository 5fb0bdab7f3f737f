package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hmcsim/internal/metrics"
)

// PlotEnergySweep tabulates each refinement level and plots the |H - H0|
// trace of the coarsest one.
func PlotEnergySweep(target string, levels []metrics.SweepLevel) string {
	var b strings.Builder
	b.WriteString(Title.Render("leapfrog energy error: "+target) + "\n\n")
	fmt.Fprintf(&b, "%-12s  %-8s  %-14s  %-14s  %-8s\n", "step_size", "steps", "max|dH|", "final|dH|", "ratio")

	for i, l := range levels {
		ratio := "-"
		if i > 0 && l.MaxError > 0 {
			ratio = fmt.Sprintf("%.3f", levels[i-1].MaxError/l.MaxError)
		}
		fmt.Fprintf(&b, "%-12g  %-8d  %-14.6e  %-14.6e  %-8s\n", l.StepSize, l.NumSteps, l.MaxError, l.FinalError, ratio)
	}

	order := metrics.ConvergenceOrder(levels)
	if math.IsNaN(order) {
		b.WriteString("\nobserved order: n/a\n")
	} else {
		fmt.Fprintf(&b, "\nobserved order: %s\n", Value.Render(fmt.Sprintf("%.3f", order)))
	}
	fmt.Fprintf(&b, "peak max|dH|:   %.6e\n", metrics.PeakError(levels))

	if len(levels) == 0 {
		return b.String()
	}
	trace := levels[0].Trace
	if len(trace) < 2 || !finite(trace) {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(asciigraph.Plot(trace,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("|H - H0| per step (step size %g)", levels[0].StepSize)),
	))
	b.WriteString("\n")
	return b.String()
}

func finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

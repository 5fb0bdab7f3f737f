package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hmcsim/internal/metrics"
)

type SummaryInput struct {
	Target   string
	Seed     uint64
	StepSize float64
	NumSteps int
	Summary  metrics.Summary
	Metrics  map[string]float64
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, Label.Render(label), value)
}

func RenderSummary(in SummaryInput) string {
	s := in.Summary
	lines := []string{
		Title.Render("hmc chain: " + in.Target),
		"",
		row("samples", Value.Render(fmt.Sprintf("%d", s.Count))),
		row("step size", Value.Render(fmt.Sprintf("%g x %d", in.StepSize, in.NumSteps))),
		row("seed", Value.Render(fmt.Sprintf("%d", in.Seed))),
		row("acceptance", RateStyle(s.AcceptanceRate).Render(fmt.Sprintf("%.2f%%", 100*s.AcceptanceRate))),
		row("mean", Value.Render(s.Mean.String())),
		row("variance", Value.Render(s.Variance.String())),
	}
	if v, ok := in.Metrics["mode_balance"]; ok {
		lines = append(lines, row("mode balance", Value.Render(fmt.Sprintf("%.3f", v))))
	}
	if !s.Finite {
		lines = append(lines, Bad.Render("non-finite samples present"))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

type ComparisonRow struct {
	StepSize float64
	Rate     float64
	MeanX    float64
	MeanY    float64
	TimeMs   float64
	Err      error
}

func RenderComparison(target string, rows []ComparisonRow) string {
	var b strings.Builder
	b.WriteString(Title.Render("step size comparison: "+target) + "\n\n")
	fmt.Fprintf(&b, "%-12s  %-12s  %-12s  %-12s  %-10s\n", "step_size", "acceptance", "mean_x", "mean_y", "time_ms")
	b.WriteString(strings.Repeat("-", 66) + "\n")
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(&b, "%-12g  %s\n", r.StepSize, Bad.Render("error: "+r.Err.Error()))
			continue
		}
		rate := RateStyle(r.Rate).Render(fmt.Sprintf("%-12.4f", r.Rate))
		fmt.Fprintf(&b, "%-12g  %s  %12.4f  %12.4f  %10.2f\n", r.StepSize, rate, r.MeanX, r.MeanY, r.TimeMs)
	}
	return b.String()
}

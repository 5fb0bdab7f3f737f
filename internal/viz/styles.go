package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Width(18)

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Bold(true)

	Good = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Bad  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
)

// RateStyle colours an acceptance rate by how healthy it looks for HMC.
func RateStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= 0.6:
		return Good
	case rate >= 0.2:
		return Warn
	default:
		return Bad
	}
}

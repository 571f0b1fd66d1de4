// Package watch implements the terminal countdown view.
package watch

import "github.com/charmbracelet/lipgloss"

// Accent is the brand gold used for rings and bars.
const Accent = "#CE921B"

// Theme centralizes all styling for the watch TUI.
type Theme struct {
	// UI elements
	Border    lipgloss.Style
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style

	// Units
	Value lipgloss.Style
	Label lipgloss.Style
	Unit  lipgloss.Style

	// Status
	Started lipgloss.Style

	// Indicators
	TickerActive   lipgloss.Style
	TickerInactive lipgloss.Style
}

func NewDefaultTheme() Theme {
	gold := lipgloss.Color(Accent)

	return Theme{
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(gold),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Highlight: lipgloss.NewStyle().Foreground(gold),

		Value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E5E5")),
		Unit:  lipgloss.NewStyle().Padding(0, 1),

		Started: lipgloss.NewStyle().Bold(true).Foreground(gold),

		TickerActive:   lipgloss.NewStyle().Foreground(gold),
		TickerInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
	}
}

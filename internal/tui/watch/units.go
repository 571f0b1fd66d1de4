package watch

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattjoyce/launchpad/internal/display"
)

const (
	defaultBarWidth = 16
	minBarWidth     = 6
	maxBarWidth     = 30
)

// barWidth fits four unit columns, with padding, into a terminal width.
func barWidth(termWidth int) int {
	w := (termWidth-8)/4 - 2
	if w < minBarWidth {
		return minBarWidth
	}
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}

func renderUnits(frame display.Frame, bars [4]progress.Model, theme Theme) string {
	cols := make([]string, 0, len(frame.Units))
	for i, u := range frame.Units {
		col := lipgloss.JoinVertical(lipgloss.Center,
			theme.Value.Render(u.Text),
			theme.Label.Render(u.Label),
			bars[i].ViewAs(u.Fraction),
		)
		cols = append(cols, theme.Unit.Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattjoyce/launchpad/internal/display"
)

const targetLayout = "Mon 2 Jan 2006 15:04 MST"

func renderHeader(info Info, frame display.Frame, ticker Ticker, theme Theme, width int, now time.Time) string {
	innerWidth := width - 4

	// Title line with ticker and clock
	titleText := fmt.Sprintf(" %s %s", strings.ToUpper(info.Name), ticker.Render(theme, now))
	clock := theme.Dim.Render(now.Format("15:04:05"))

	titleWidth := lipgloss.Width(titleText)
	clockWidth := lipgloss.Width(clock)
	pad := innerWidth - titleWidth - clockWidth - 4
	if pad < 1 {
		pad = 1
	}
	titleLine := theme.Title.Render(titleText) + strings.Repeat(" ", pad) + clock + " "

	status := theme.Highlight.Render("in " + formatRemaining(frame.Target.Sub(now)))
	if frame.Expired {
		status = theme.Started.Render("started")
	}
	targetLine := fmt.Sprintf(" Target: %s  %s", frame.Target.Format(targetLayout), status)

	lines := []string{titleLine, targetLine}
	if info.Tagline != "" {
		lines = append(lines, theme.Dim.Render(" "+info.Tagline))
	}

	return theme.Border.Width(innerWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// formatRemaining is a coarse two-field duration for the header.
func formatRemaining(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	return fmt.Sprintf("%dd %dh", int(d.Hours())/24, int(d.Hours())%24)
}

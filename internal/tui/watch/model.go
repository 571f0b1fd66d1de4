package watch

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattjoyce/launchpad/internal/clock"
	"github.com/mattjoyce/launchpad/internal/countdown"
	"github.com/mattjoyce/launchpad/internal/display"
)

const (
	tickInterval = time.Second
	// Terminal bars only use fractions; the radius is nominal.
	frameRadius = 1
)

type tickMsg time.Time

// Info is the event copy shown in the header.
type Info struct {
	Name    string
	Tagline string
}

// Model is the BubbleTea model for the countdown view. The tea.Tick chain is
// its timer: quitting ends the chain.
type Model struct {
	engine *countdown.Engine
	clock  clock.Clock
	info   Info

	width  int
	height int

	frame  display.Frame
	bars   [4]progress.Model
	ticker Ticker
	theme  Theme

	quitting bool
}

// New creates a countdown view. A nil clk uses the wall clock.
func New(engine *countdown.Engine, info Info, clk clock.Clock) Model {
	if clk == nil {
		clk = clock.Real{}
	}
	m := Model{
		engine: engine,
		clock:  clk,
		info:   info,
		ticker: NewTicker(),
		theme:  NewDefaultTheme(),
	}
	for i := range m.bars {
		m.bars[i] = progress.New(
			progress.WithSolidFill(Accent),
			progress.WithoutPercentage(),
			progress.WithWidth(defaultBarWidth),
		)
	}
	m.frame = display.Compose(engine, clk.Now(), frameRadius)
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := barWidth(msg.Width)
		for i := range m.bars {
			m.bars[i].Width = w
		}

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		now := m.clock.Now()
		m.frame = display.Compose(m.engine, now, frameRadius)
		m.ticker.Tick(now)
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Starting countdown..."
	}

	now := m.clock.Now()
	parts := []string{
		renderHeader(m.info, m.frame, m.ticker, m.theme, m.width, now),
		renderUnits(m.frame, m.bars, m.theme),
	}
	if m.frame.Expired {
		parts = append(parts, m.theme.Started.Render(" The event has started"))
	}
	parts = append(parts, m.theme.Dim.Render(" [q] Quit"))

	return lipgloss.NewStyle().Margin(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
}

// Frame returns the most recently composed frame.
func (m Model) Frame() display.Frame { return m.frame }

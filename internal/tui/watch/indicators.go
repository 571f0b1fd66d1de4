package watch

import "time"

// Ticker rotates through frames to show the view is alive.
// Stops rotating if no ticks arrive (indicates freeze).
type Ticker struct {
	frames   []string
	index    int
	lastTick time.Time
}

func NewTicker() Ticker {
	return Ticker{
		frames: []string{"⟲", "⟳"},
	}
}

// Tick advances the frame and records when the tick fired.
func (t *Ticker) Tick(at time.Time) {
	t.index = (t.index + 1) % len(t.frames)
	t.lastTick = at
}

func (t Ticker) Current() string {
	return t.frames[t.index]
}

// Stale reports whether no tick has arrived within window of now.
func (t Ticker) Stale(now time.Time, window time.Duration) bool {
	if t.lastTick.IsZero() {
		return true
	}
	return now.Sub(t.lastTick) > window
}

func (t Ticker) Render(theme Theme, now time.Time) string {
	if t.Stale(now, 3*time.Second) {
		return theme.TickerInactive.Render(t.Current())
	}
	return theme.TickerActive.Render(t.Current())
}

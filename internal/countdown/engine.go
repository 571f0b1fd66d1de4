// Package countdown computes the time remaining until a fixed target moment.
package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = 1_000
	msPerMinute = 60_000
	msPerHour   = 3_600_000
	msPerDay    = 86_400_000
)

// TimeLeft is the remaining time split into display units.
// All fields are non-negative; an expired countdown is all zeros.
type TimeLeft struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports whether no time is left.
func (t TimeLeft) IsZero() bool {
	return t == TimeLeft{}
}

// Pad returns days, hours, minutes and seconds as zero-padded strings of at
// least two digits.
func (t TimeLeft) Pad() [4]string {
	return [4]string{Pad(t.Days), Pad(t.Hours), Pad(t.Minutes), Pad(t.Seconds)}
}

// Pad formats v with at least two digits. Wider values are kept whole.
func Pad(v int) string {
	return fmt.Sprintf("%02d", v)
}

// State is the engine lifecycle: counting down, then expired for good.
type State int

const (
	Counting State = iota
	Expired
)

func (s State) String() string {
	if s == Expired {
		return "expired"
	}
	return "counting"
}

// Engine holds the target moment. It is immutable and safe for concurrent use.
type Engine struct {
	target time.Time
}

// New returns an engine counting down to target.
func New(target time.Time) *Engine {
	return &Engine{target: target}
}

// Target returns the moment the engine counts down to.
func (e *Engine) Target() time.Time {
	return e.target
}

// Tick computes the time left at now. Each unit is derived from the full
// millisecond difference, so days truncate and the smaller units wrap.
func (e *Engine) Tick(now time.Time) TimeLeft {
	diff := e.target.Sub(now).Milliseconds()
	if diff <= 0 {
		return TimeLeft{}
	}
	return TimeLeft{
		Days:    int(diff / msPerDay),
		Hours:   int(diff / msPerHour % 24),
		Minutes: int(diff / msPerMinute % 60),
		Seconds: int(diff / msPerSecond % 60),
	}
}

// Expired reports whether the target has been reached at now.
func (e *Engine) Expired(now time.Time) bool {
	return e.target.Sub(now).Milliseconds() <= 0
}

// State returns Counting or Expired for now.
func (e *Engine) State(now time.Time) State {
	if e.Expired(now) {
		return Expired
	}
	return Counting
}

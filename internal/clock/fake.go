package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced clock. Tickers created from it fire only when
// Advance is called.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

// NewFake returns a Fake clock reading now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) NewTicker(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{c: make(chan time.Time, 1), period: d}
	f.tickers = append(f.tickers, t)
	return t
}

// Advance moves the clock forward by d and fires every live ticker once.
// A tick is dropped if the previous one has not been received yet.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	now := f.now
	live := f.tickers[:0]
	for _, t := range f.tickers {
		if !t.stopped() {
			live = append(live, t)
		}
	}
	f.tickers = live
	f.mu.Unlock()

	for _, t := range live {
		select {
		case t.c <- now:
		default:
		}
	}
}

// Tickers reports how many tickers are still running.
func (f *Fake) Tickers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tickers {
		if !t.stopped() {
			n++
		}
	}
	return n
}

type fakeTicker struct {
	c      chan time.Time
	period time.Duration

	mu   sync.Mutex
	done bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	t.done = true
	t.mu.Unlock()
}

func (t *fakeTicker) stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

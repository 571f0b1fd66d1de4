// Package surface runs the repeating countdown timer for one display surface.
//
// A Surface is activated when its display comes up and deactivated when it is
// torn down. While active it renders a frame immediately and then once per
// interval, always from a fresh clock reading, so missed ticks are never
// replayed and drift does not accumulate.
package surface

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mattjoyce/launchpad/internal/clock"
	"github.com/mattjoyce/launchpad/internal/countdown"
	"github.com/mattjoyce/launchpad/internal/display"
)

// ErrActive is returned when Activate is called on a running surface.
var ErrActive = errors.New("surface already active")

const (
	DefaultInterval = time.Second
	DefaultRadius   = 44
)

// Surface owns a single repeating timer feeding one Renderer.
type Surface struct {
	id       string
	engine   *countdown.Engine
	renderer Renderer
	clock    clock.Clock
	interval time.Duration
	radius   float64
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Surface.
type Option func(*Surface)

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(s *Surface) { s.clock = c }
}

// WithInterval sets the tick period. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(s *Surface) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithRadius sets the ring radius used when composing frames.
func WithRadius(r float64) Option {
	return func(s *Surface) {
		if r > 0 {
			s.radius = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Surface) { s.logger = l }
}

// WithID overrides the generated surface ID.
func WithID(id string) Option {
	return func(s *Surface) {
		if id != "" {
			s.id = id
		}
	}
}

// New creates an inactive surface.
func New(engine *countdown.Engine, renderer Renderer, opts ...Option) *Surface {
	s := &Surface{
		id:       uuid.NewString(),
		engine:   engine,
		renderer: renderer,
		clock:    clock.Real{},
		interval: DefaultInterval,
		radius:   DefaultRadius,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "surface", "surface_id", s.id)
	return s
}

// ID returns the surface identifier.
func (s *Surface) ID() string { return s.id }

// Frame composes the frame for the current clock reading without rendering.
func (s *Surface) Frame() display.Frame {
	return display.Compose(s.engine, s.clock.Now(), s.radius)
}

// Activate starts the timer. It stops when Deactivate is called or ctx is
// cancelled, whichever comes first.
func (s *Surface) Activate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runningLocked() {
		return ErrActive
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := s.clock.NewTicker(s.interval)
	s.cancel = cancel
	s.done = done

	s.logger.Info("surface activated", "interval", s.interval.String(), "target", s.engine.Target())
	go s.loop(runCtx, ticker, done)
	return nil
}

// Deactivate stops the timer and waits for the loop to exit. It is safe to
// call more than once and on a surface that was never activated.
func (s *Surface) Deactivate() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("surface deactivated")
}

// Active reports whether the timer is running.
func (s *Surface) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runningLocked()
}

func (s *Surface) runningLocked() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

func (s *Surface) loop(ctx context.Context, ticker clock.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	expired := s.tick(ctx, false)
	for {
		select {
		case <-ticker.C():
			expired = s.tick(ctx, expired)
		case <-ctx.Done():
			return
		}
	}
}

// tick renders one frame and reports whether the countdown has expired.
func (s *Surface) tick(ctx context.Context, wasExpired bool) bool {
	frame := s.Frame()
	if frame.Expired && !wasExpired {
		s.logger.Info("countdown reached target", "target", frame.Target)
	}
	if err := s.renderer.Render(ctx, frame); err != nil && ctx.Err() == nil {
		s.logger.Warn("render failed", "error", err)
	}
	return frame.Expired
}

// Package web serves the landing page, its frame stream and static assets.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mattjoyce/launchpad/internal/clock"
	"github.com/mattjoyce/launchpad/internal/countdown"
	"github.com/mattjoyce/launchpad/internal/display"
	"github.com/mattjoyce/launchpad/internal/events"
	"github.com/mattjoyce/launchpad/internal/page"
	"github.com/mattjoyce/launchpad/internal/surface"
)

const (
	streamPath    = "/events"
	eventCapacity = 16
	shutdownGrace = 5 * time.Second
)

// Config holds web server configuration
type Config struct {
	Listen       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// VideoDir is served under /videos/. Empty disables the route.
	VideoDir string
	// Variant is used when a request names none or an unknown one.
	Variant      string
	TickInterval time.Duration
	StreamBuffer int
}

// Server represents the landing page HTTP server. One broadcast surface
// publishes a frame per tick; every stream client shares it.
type Server struct {
	config    Config
	engine    *countdown.Engine
	content   page.Content
	clock     clock.Clock
	hub       *events.Hub
	surface   *surface.Surface
	variant   page.Variant
	etags     map[string]string
	logger    *slog.Logger
	server    *http.Server
	startedAt time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces the wall clock used for frames and the tick loop.
func WithClock(c clock.Clock) Option {
	return func(s *Server) { s.clock = c }
}

// New creates a new web server instance
func New(config Config, engine *countdown.Engine, content page.Content, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		config:  config,
		engine:  engine,
		content: content,
		clock:   clock.Real{},
		logger:  logger.With("component", "web"),
	}
	for _, opt := range opts {
		opt(s)
	}

	v, ok := page.Lookup(config.Variant)
	if !ok {
		s.logger.Warn("unknown page variant, using default", "variant", config.Variant, "default", v.Name)
	}
	s.variant = v
	s.content.StreamURL = streamPath
	s.startedAt = s.clock.Now()
	s.hub = events.NewHub(eventCapacity, config.StreamBuffer)
	s.etags = make(map[string]string)
	for _, name := range page.Names() {
		pv, _ := page.Lookup(name)
		tag, err := s.pageTag(pv)
		if err != nil {
			s.logger.Warn("page will be served without an ETag", "variant", name, "error", err)
			continue
		}
		s.etags[name] = tag
	}
	s.surface = surface.New(engine, surface.RenderFunc(s.publishFrame),
		surface.WithClock(s.clock),
		surface.WithInterval(config.TickInterval),
		surface.WithRadius(v.Radius),
		surface.WithLogger(logger),
	)
	return s
}

// Hub exposes the frame stream.
func (s *Server) Hub() *events.Hub { return s.hub }

// Surface exposes the broadcast surface.
func (s *Server) Surface() *surface.Surface { return s.surface }

// Start activates the broadcast surface and serves HTTP until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	if err := s.surface.Activate(ctx); err != nil {
		return fmt.Errorf("activate surface: %w", err)
	}
	defer s.surface.Deactivate()

	s.server = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	s.logger.Info("web server starting", "listen", s.config.Listen, "variant", s.variant.Name)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("web server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}

// publishFrame is the broadcast surface's renderer.
func (s *Server) publishFrame(_ context.Context, f display.Frame) error {
	_, err := s.hub.Publish(events.TypeTick, f)
	return err
}

// setupRoutes configures the HTTP router
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/home", s.handleHome)
	r.Get("/api/countdown", s.handleCountdown)
	r.Get(streamPath, s.handleEvents)
	r.Get("/healthz", s.handleHealthz)

	if s.config.VideoDir != "" {
		videos := http.StripPrefix("/videos/", http.FileServer(http.Dir(s.config.VideoDir)))
		r.Handle("/videos/*", videos)
	}

	return r
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

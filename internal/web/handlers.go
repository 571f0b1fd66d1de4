package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mattjoyce/launchpad/internal/config"
	"github.com/mattjoyce/launchpad/internal/display"
	"github.com/mattjoyce/launchpad/internal/page"
)

// handleRoot handles GET / by sending the visitor to the landing page.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	target := "/home"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// handleHome handles GET /home?variant=NAME.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	v := s.requestVariant(r)

	// A revalidated copy shows stale digits until the stream replays the
	// latest frame, which happens on connect.
	w.Header().Set("Cache-Control", "no-cache")
	if etag, ok := s.etags[v.Name]; ok {
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	frame := display.Compose(s.engine, s.clock.Now(), v.Radius)
	var buf bytes.Buffer
	if err := page.Render(&buf, v, s.content, frame); err != nil {
		s.logger.Error("failed to render page", "variant", v.Name, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// pageTag hashes the page rendered at the target instant. Live values are
// left out, so the tag only moves with the variant, the copy or the target.
func (s *Server) pageTag(v page.Variant) (string, error) {
	var buf bytes.Buffer
	shell := display.Compose(s.engine, s.engine.Target(), v.Radius)
	if err := page.Render(&buf, v, s.content, shell); err != nil {
		return "", err
	}
	return `"` + config.HashBytes(buf.Bytes()) + `"`, nil
}

// handleCountdown handles GET /api/countdown?variant=NAME and returns the
// current frame sized for the variant's rings.
func (s *Server) handleCountdown(w http.ResponseWriter, r *http.Request) {
	v := s.requestVariant(r)
	respondJSON(w, http.StatusOK, display.Compose(s.engine, s.clock.Now(), v.Radius))
}

// handleHealthz handles GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	now := s.clock.Now()
	resp := HealthzResponse{
		Status:        "ok",
		UptimeSeconds: int64(now.Sub(s.startedAt) / time.Second),
		Event:         s.content.EventName,
		Target:        s.engine.Target(),
		Expired:       s.engine.Expired(now),
		SurfaceActive: s.surface.Active(),
		Subscribers:   s.hub.Subscribers(),
	}
	respondJSON(w, http.StatusOK, resp)
}

// requestVariant resolves ?variant=, falling back to the configured variant.
func (s *Server) requestVariant(r *http.Request) page.Variant {
	name := r.URL.Query().Get("variant")
	if name == "" {
		return s.variant
	}
	v, ok := page.Lookup(name)
	if !ok {
		s.logger.Debug("unknown variant requested", "variant", name)
		return s.variant
	}
	return v
}

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response
func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

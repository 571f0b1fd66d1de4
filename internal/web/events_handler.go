package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mattjoyce/launchpad/internal/display"
	"github.com/mattjoyce/launchpad/internal/events"
	"github.com/mattjoyce/launchpad/internal/page"
)

const keepAliveInterval = 15 * time.Second

// handleEvents handles GET /events?variant=NAME. Frames are resized for the
// variant's rings before they are written, so clients never do ring math.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	v := s.requestVariant(r)

	// Subscribe before replaying so no tick falls between the two.
	ch, cancel := s.hub.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	lastID := parseLastEventID(r.Header.Get("Last-Event-ID"))
	if lastID > s.hub.LastID() {
		// An ID from before a restart; the client has none of our frames.
		s.logger.Debug("ignoring stale Last-Event-ID", "last_event_id", lastID, "hub_last_id", s.hub.LastID())
		lastID = 0
	}
	// Frames are snapshots; a late client only needs the newest one.
	if ev, ok := s.hub.Latest(events.TypeTick); ok && ev.ID > lastID {
		if err := s.writeFrame(w, ev, v); err != nil {
			return
		}
		lastID = ev.ID
	}
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if ev.ID <= lastID {
				continue
			}
			if err := s.writeFrame(w, ev, v); err != nil {
				return
			}
			lastID = ev.ID
			flusher.Flush()
		case <-keepAlive.C:
			// SSE comment line as keep-alive.
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (s *Server) writeFrame(w http.ResponseWriter, ev events.Event, v page.Variant) error {
	data, err := resize(ev.Data, v.Radius)
	if err != nil {
		s.logger.Warn("dropping undecodable frame", "event_id", ev.ID, "error", err)
		return nil
	}
	ev.Data = data
	return writeSSE(w, ev)
}

// resize re-samples an encoded frame's rings for radius.
func resize(data []byte, radius float64) ([]byte, error) {
	var f display.Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Radius == radius {
		return data, nil
	}
	return json.Marshal(f.WithRadius(radius))
}

func parseLastEventID(v string) int64 {
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func writeSSE(w http.ResponseWriter, ev events.Event) error {
	if _, err := fmt.Fprintf(w, "id: %d\n", ev.ID); err != nil {
		return err
	}
	if ev.Type != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", ev.Type); err != nil {
			return err
		}
	}
	// Payload is single-line JSON.
	if _, err := fmt.Fprintf(w, "data: %s\n\n", ev.Data); err != nil {
		return err
	}
	return nil
}

// Package events fans countdown frames out to stream subscribers.
package events

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Event types published by launchpad.
const (
	TypeTick = "countdown.tick"
)

type Event struct {
	ID   int64     `json:"id"`
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data []byte    `json:"data"` // JSON payload
}

// Hub is an in-memory pub/sub that keeps the most recent events so a late
// subscriber can paint immediately instead of waiting for the next tick.
type Hub struct {
	nextID atomic.Int64
	subBuf int

	mu    sync.Mutex
	ring  []Event
	start int
	size  int

	subs      map[int]chan Event
	nextSubID int
}

// NewHub returns a hub retaining up to capacity events. Each subscriber gets
// a buffer of subBuffer events; full buffers drop rather than block.
func NewHub(capacity, subBuffer int) *Hub {
	if capacity <= 0 {
		capacity = 1
	}
	if subBuffer <= 0 {
		subBuffer = 8
	}
	return &Hub{
		subBuf: subBuffer,
		ring:   make([]Event, capacity),
		subs:   make(map[int]chan Event),
	}
}

// Publish encodes data as JSON and delivers it to every subscriber.
func (h *Hub) Publish(eventType string, data any) (Event, error) {
	payload := []byte("{}")
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return Event{}, err
		}
		payload = b
	}

	ev := Event{
		ID:   h.nextID.Add(1),
		Type: eventType,
		At:   time.Now().UTC(),
		Data: payload,
	}

	h.mu.Lock()
	h.pushLocked(ev)
	for _, ch := range h.subs {
		// A slow stream client must not stall the ticker.
		select {
		case ch <- ev:
		default:
		}
	}
	h.mu.Unlock()
	return ev, nil
}

// Subscribe registers a subscriber. The returned cancel func unregisters it
// and closes the channel; it may be called more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSubID
	h.nextSubID++
	ch := make(chan Event, h.subBuf)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// LastID returns the ID of the newest published event, or 0 before the first.
// IDs restart at 1 in every process.
func (h *Hub) LastID() int64 {
	return h.nextID.Load()
}

// Latest returns the newest retained event of eventType.
func (h *Hub) Latest(eventType string) (Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := h.size - 1; i >= 0; i-- {
		ev := h.ring[(h.start+i)%len(h.ring)]
		if ev.Type == eventType {
			return ev, true
		}
	}
	return Event{}, false
}

func (h *Hub) pushLocked(ev Event) {
	capacity := len(h.ring)
	if h.size < capacity {
		h.ring[(h.start+h.size)%capacity] = ev
		h.size++
		return
	}
	// Overwrite oldest.
	h.ring[h.start] = ev
	h.start = (h.start + 1) % capacity
}

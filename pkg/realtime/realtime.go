// Package realtime provides the in-process publish/subscribe hub behind the
// live preview: every committed edit fans out to the WebSocket sessions
// watching that site so open previews repaint without polling.
//
// Design goals:
//   - Best-effort fan-out: slow listeners drop events, an open preview tab
//     must never backpressure the editor's save path.
//   - No persistence or replay semantics (the preview re-fetches on
//     reconnect).
//   - Per-site scoping: a listener only sees events for the site it watches.
//
// If cross-process delivery is ever needed, this package is the seam where
// a broker (Redis pub/sub, NATS) can be introduced behind the same
// interface.
package realtime

import (
	"sync"
	"time"
)

// Event kinds produced by the editing surfaces.
const (
	EventSectionUpdated = "section-updated"
	EventSectionToggled = "section-toggled"
	EventPaletteApplied = "palette-applied"
	EventNewsChanged    = "news-changed"
)

// Event is the envelope delivered to preview listeners.
type Event struct {
	Type      string         `json:"type"`
	SiteID    string         `json:"site_id"`
	SectionID string         `json:"section_id,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	At        time.Time      `json:"at"`
}

type listener struct {
	siteID string
	ch     chan Event
}

// PreviewHub is an in-memory fan-out dispatcher. Each registered listener
// receives events for one site via its own buffered channel; if the buffer
// is full when an event arrives, that event is dropped for that listener
// only.
//
// The hub is concurrency-safe.
type PreviewHub struct {
	mu        sync.RWMutex
	listeners map[uint64]listener
	nextID    uint64
	bufSize   int
}

// NewPreviewHub constructs a hub with the given per-listener buffer size.
// If bufSize <= 0, a default of 32 is used.
func NewPreviewHub(bufSize int) *PreviewHub {
	if bufSize <= 0 {
		bufSize = 32
	}
	return &PreviewHub{
		listeners: make(map[uint64]listener),
		bufSize:   bufSize,
	}
}

// Register adds a listener for one site and returns (listenerID,
// receiveOnlyChannel). Callers must later Unregister(id) to release
// resources.
func (h *PreviewHub) Register(siteID string) (uint64, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan Event, h.bufSize)
	h.listeners[id] = listener{siteID: siteID, ch: ch}
	return id, ch
}

// Unregister removes the listener with the given id and closes its channel.
// It is safe to call multiple times; unknown ids are ignored.
func (h *PreviewHub) Unregister(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if l, ok := h.listeners[id]; ok {
		delete(h.listeners, id)
		close(l.ch)
	}
}

// Broadcast delivers an event to every listener watching the event's site
// (best effort). Events with an empty At get stamped on the way through.
func (h *PreviewHub) Broadcast(event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, l := range h.listeners {
		if l.siteID != event.SiteID {
			continue
		}
		select {
		case l.ch <- event:
		default:
			// Drop for slow listener.
		}
	}
}

// Size returns the current number of active listeners (approximate).
func (h *PreviewHub) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// SectionUpdated builds the event emitted after a section data commit.
func SectionUpdated(siteID, sectionID string, data map[string]any) Event {
	return Event{
		Type:      EventSectionUpdated,
		SiteID:    siteID,
		SectionID: sectionID,
		Payload:   data,
	}
}

// PaletteApplied builds the event emitted after a palette change.
func PaletteApplied(siteID string, colors map[string]any) Event {
	return Event{
		Type:    EventPaletteApplied,
		SiteID:  siteID,
		Payload: colors,
	}
}

// Package palette manages global site palettes: the bounded most-recent-first
// history of applied color sets, built-in presets, Coolors imports, and the
// broadcast path that pushes a palette to every section of a page.
package palette

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quimera-ai/quimera/pkg/core"
)

// MaxHistory caps the palette history length.
const MaxHistory = 10

// Entry is one palette in the history: a named color set plus the five-slot
// preview strip shown in the side panel.
type Entry struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Colors  core.GlobalColors `json:"colors"`
	Preview [5]string         `json:"preview"`
	UsedAt  time.Time         `json:"used_at"`
}

// NewEntry builds an entry for a color set, deriving the preview strip from
// the slot order.
func NewEntry(name string, colors core.GlobalColors) Entry {
	return Entry{
		ID:      uuid.NewString(),
		Name:    name,
		Colors:  colors,
		Preview: colors.Slots(),
		UsedAt:  time.Now().UTC(),
	}
}

// History is the bounded, most-recent-first list of applied palettes.
// Inserting a palette that is already present - by id (preset reuse) or by
// value-equal color set (Coolors re-import) - removes the prior occurrence
// before prepending, so the list never holds duplicates and never exceeds
// MaxHistory entries.
type History struct {
	mu      sync.Mutex
	entries []Entry
}

func NewHistory() *History {
	return &History{}
}

// Record prepends the entry, deduplicating by id or by colors equality and
// truncating to MaxHistory.
func (h *History) Record(entry Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := make([]Entry, 0, len(h.entries)+1)
	kept = append(kept, entry)
	for _, e := range h.entries {
		if e.ID == entry.ID || e.Colors == entry.Colors {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > MaxHistory {
		kept = kept[:MaxHistory]
	}
	h.entries = kept
}

// Entries returns a copy of the history, most recent first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry{}, h.entries...)
}

// Restore replaces the history wholesale, e.g. when loading a site from
// storage. The cap is enforced here too.
func (h *History) Restore(entries []Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(entries) > MaxHistory {
		entries = entries[:MaxHistory]
	}
	h.entries = append([]Entry{}, entries...)
}

// Len returns the current history length.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

package palette

import (
	"fmt"
	"sync/atomic"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/log"
)

var applierLog = log.ForService("palette")

// Broadcast pushes a palette to every section of the page. The parent page
// editor owns the section collection and applies the colors through each
// section type's ApplyColors mapping; the palette layer never reaches into
// sibling sections directly.
type Broadcast func(colors core.GlobalColors) error

// Fallback applies a palette to only the currently open section and triggers
// a manual preview refresh. Used when no cross-section broadcast is wired.
type Fallback func(colors core.GlobalColors) error

// Applier runs palette application through the broadcast-or-fallback path
// and records applied palettes in the history. A busy flag rejects
// concurrent application so a double-click cannot apply twice.
type Applier struct {
	history   *History
	broadcast Broadcast
	fallback  Fallback
	applying  atomic.Bool
}

func NewApplier(history *History, broadcast Broadcast, fallback Fallback) *Applier {
	return &Applier{history: history, broadcast: broadcast, fallback: fallback}
}

// Applying reports whether an application is in flight.
func (a *Applier) Applying() bool {
	return a.applying.Load()
}

// Apply pushes the entry's colors to all sections (or the open one when no
// broadcast is wired) and records the entry in the history on success.
func (a *Applier) Apply(entry Entry) error {
	if !a.applying.CompareAndSwap(false, true) {
		return fmt.Errorf("palette application already in progress")
	}
	defer a.applying.Store(false)

	var err error
	switch {
	case a.broadcast != nil:
		err = a.broadcast(entry.Colors)
	case a.fallback != nil:
		err = a.fallback(entry.Colors)
	default:
		err = fmt.Errorf("no palette sink wired")
	}
	if err != nil {
		applierLog.Errorf("applying palette %s: %v", entry.ID, err)
		return fmt.Errorf("applying palette: %w", err)
	}

	a.history.Record(entry)
	return nil
}

// Reset restores the built-in default palette and reapplies it through the
// same broadcast-or-fallback path.
func (a *Applier) Reset() error {
	def, ok := PresetByID("preset-default")
	if !ok {
		def = NewEntry("Quimera", core.DefaultColors)
	}
	return a.Apply(def)
}

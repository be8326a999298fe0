package core

import (
	"fmt"

	"github.com/quimera-ai/quimera/pkg/log"
)

// UpdateFunc commits a full replacement of one section's data. The page
// editor owns the canonical section list; the accessor only ever hands the
// whole new object upward.
type UpdateFunc func(sectionID string, data SectionData) error

var accessorLog = log.ForService("editor")

// Accessor exposes the two mutation operations of the section data editing
// model: top-level key replacement and nested dot-path replacement. It is
// bound at construction to the authoritative section ID passed down by the
// page editor - never to a recomputed one - so edits keep landing on the
// right section after a reorder.
//
// Every write is a full read-modify-write of the section's data performed
// within one call; there is no draft buffer and no explicit save step.
type Accessor struct {
	sectionID string
	data      SectionData
	commit    UpdateFunc
}

// NewAccessor binds an accessor to a section's current data and the upward
// commit callback.
func NewAccessor(sectionID string, data SectionData, commit UpdateFunc) *Accessor {
	if data == nil {
		data = SectionData{}
	}
	return &Accessor{sectionID: sectionID, data: data, commit: commit}
}

// Data returns the accessor's current view of the section data.
func (a *Accessor) Data() SectionData {
	return a.data
}

// Update sets a top-level key and commits the whole object upward. A commit
// failure is returned and logged, never dropped: silent data loss at this
// seam is invisible to the user.
func (a *Accessor) Update(key string, value any) error {
	next := a.data.With(key, value)
	return a.push(next)
}

// UpdateNested sets the leaf of a dot-separated path, shallow-cloning each
// touched level so sibling keys keep their references, then commits the new
// root.
func (a *Accessor) UpdateNested(path string, value any) error {
	next := a.data.WithNested(path, value)
	return a.push(next)
}

// UpdateMirrored sets key and mirror to the same value in one commit. Used
// for legacy twin keys (e.g. "backgroundColor" alongside
// "colors.background") that must stay in sync for older stored data.
func (a *Accessor) UpdateMirrored(key, mirror string, value any) error {
	next := a.data.WithNested(key, value).WithNested(mirror, value)
	return a.push(next)
}

func (a *Accessor) push(next SectionData) error {
	if a.commit == nil {
		a.data = next
		return nil
	}
	if err := a.commit(a.sectionID, next); err != nil {
		accessorLog.Errorf("committing section %s: %v", a.sectionID, err)
		return fmt.Errorf("committing section %s: %w", a.sectionID, err)
	}
	a.data = next
	return nil
}

// Package editor implements the section editing surface: panel dispatch by
// section type, the content/style tab model, and the list-of-records
// operations shared by every section kind that edits ordered items.
package editor

import (
	"fmt"

	"github.com/quimera-ai/quimera/pkg/core"
)

// Editor drives the control panel for one open section. Tab state is local
// to the instance and never persisted; every field write goes through the
// accessor immediately, so switching tabs can never discard edits.
type Editor struct {
	registry *core.Registry
	section  core.Section
	handler  core.SectionType
	acc      *core.Accessor
	tab      core.Tab
}

// New opens an editor for the given section. The commit callback receives
// the full replacement data object on every edit; the caller owns committing
// it into the section list and refreshing the preview.
func New(registry *core.Registry, section core.Section, commit core.UpdateFunc) *Editor {
	return &Editor{
		registry: registry,
		section:  section,
		handler:  registry.Handler(section.Type),
		acc:      core.NewAccessor(section.ID, section.Data, commit),
		tab:      core.TabContent,
	}
}

// SectionID returns the authoritative id of the open section.
func (e *Editor) SectionID() string {
	return e.section.ID
}

// Data returns the editor's current view of the section data.
func (e *Editor) Data() core.SectionData {
	return e.acc.Data()
}

// Tabbed reports whether the open section splits controls into content and
// style tabs. Global configuration types render one merged panel.
func (e *Editor) Tabbed() bool {
	return e.handler.Tabbed()
}

// ActiveTab returns the currently selected tab.
func (e *Editor) ActiveTab() core.Tab {
	return e.tab
}

// SetTab switches the visible tab. No-op for non-tabbed section types or
// unknown tab values.
func (e *Editor) SetTab(tab core.Tab) {
	if !e.handler.Tabbed() {
		return
	}
	if tab == core.TabContent || tab == core.TabStyle {
		e.tab = tab
	}
}

// Panels returns the control groups for the active tab, dispatched through
// the type registry. Unknown section types get the generic title/content
// editor.
func (e *Editor) Panels() []core.Panel {
	return e.handler.Panels(e.acc.Data(), e.tab)
}

// Variants returns the closed variant set of the open section's type.
func (e *Editor) Variants() []string {
	return e.handler.Variants()
}

// Set writes a top-level key.
func (e *Editor) Set(key string, value any) error {
	return e.acc.Update(key, value)
}

// SetNested writes the leaf of a dot-separated path.
func (e *Editor) SetNested(path string, value any) error {
	return e.acc.UpdateNested(path, value)
}

// SetField writes a panel field, honoring its legacy mirror key when one is
// declared.
func (e *Editor) SetField(field core.Field, value any) error {
	if field.Mirror != "" {
		return e.acc.UpdateMirrored(field.Key, field.Mirror, value)
	}
	return e.acc.UpdateNested(field.Key, value)
}

// AddItem appends a record with the list's item defaults and commits the
// whole array.
func (e *Editor) AddItem(listKey string) error {
	spec := e.listSpec(listKey)
	item := map[string]any{}
	if spec != nil {
		item = core.SectionData(spec.ItemDefaults).Clone()
	}
	items := append(append([]any{}, e.acc.Data().List(listKey)...), map[string]any(item))
	return e.acc.Update(listKey, items)
}

// RemoveItem splices the record at index out of the list. Items after the
// index shift down by one; out-of-range indexes are an error.
func (e *Editor) RemoveItem(listKey string, index int) error {
	items := e.acc.Data().List(listKey)
	if index < 0 || index >= len(items) {
		return fmt.Errorf("list %s: index %d out of range (len %d)", listKey, index, len(items))
	}
	next := append(append([]any{}, items[:index]...), items[index+1:]...)
	return e.acc.Update(listKey, next)
}

// SetItemField edits one field of the record at index, leaving every other
// index untouched, and commits the whole array.
func (e *Editor) SetItemField(listKey string, index int, field string, value any) error {
	items := e.acc.Data().List(listKey)
	if index < 0 || index >= len(items) {
		return fmt.Errorf("list %s: index %d out of range (len %d)", listKey, index, len(items))
	}
	next := append([]any{}, items...)
	item, _ := items[index].(map[string]any)
	updated := make(map[string]any, len(item)+1)
	for k, v := range item {
		updated[k] = v
	}
	updated[field] = value
	next[index] = updated
	return e.acc.Update(listKey, next)
}

func (e *Editor) listSpec(listKey string) *core.ListSpec {
	for _, tab := range []core.Tab{core.TabContent, core.TabStyle} {
		for _, panel := range e.handler.Panels(e.acc.Data(), tab) {
			if panel.List != nil && panel.List.Key == listKey {
				return panel.List
			}
		}
		if !e.handler.Tabbed() {
			break
		}
	}
	return nil
}

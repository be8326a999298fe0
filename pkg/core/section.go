package core

import (
	"strings"
	"time"
)

// Section represents one configurable content block of a landing page
// (hero, pricing, footer, ...). Sections are created and destroyed by the
// page editor; the editing core only ever mutates the Data of the section
// it is currently showing.
//
// Key design principles:
//   - Stable identity: ID never changes, even across reorders.
//   - Positional ordering: Order is the display position within the page.
//   - Open data: Data is a free-form mapping whose shape depends on Type.
//     Absence of a key is normal, never an error - every read falls back to
//     a literal default.
type Section struct {
	ID        string      `json:"id"`
	SiteID    string      `json:"site_id"`
	PageID    string      `json:"page_id"`
	Type      string      `json:"type"`
	Enabled   bool        `json:"enabled"`
	Order     int         `json:"order"`
	Data      SectionData `json:"data"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SectionData is the free-form settings object owned by a section. Keys are
// conventionally namespaced per section type (e.g. "headline", "items",
// "colors.background"). There is no schema or validation layer: readers
// default on absence, writers replace whole values.
type SectionData map[string]any

// String returns the string stored under key, or def when the key is absent
// or holds a non-string value.
func (d SectionData) String(key, def string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the bool stored under key, or def.
func (d SectionData) Bool(key string, def bool) bool {
	if v, ok := d[key].(bool); ok {
		return v
	}
	return def
}

// Float returns the numeric value stored under key, or def. JSON decoding
// stores all numbers as float64, but values set in-process may be ints.
func (d SectionData) Float(key string, def float64) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// Int returns the numeric value stored under key truncated to int, or def.
func (d SectionData) Int(key string, def int) int {
	switch v := d[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

// List returns the slice stored under key, or nil when absent. The caller
// owns index-based identity: list mutations are whole-array replacements.
func (d SectionData) List(key string) []any {
	if v, ok := d[key].([]any); ok {
		return v
	}
	return nil
}

// Map returns the nested mapping stored under key, or nil.
func (d SectionData) Map(key string) map[string]any {
	if v, ok := d[key].(map[string]any); ok {
		return v
	}
	return nil
}

// StringAt resolves a dot-separated path ("colors.background") and returns
// the string at the leaf, or def when any level is absent.
func (d SectionData) StringAt(path, def string) string {
	if v, ok := d.at(path).(string); ok {
		return v
	}
	return def
}

// BoolAt resolves a dot-separated path and returns the bool at the leaf.
func (d SectionData) BoolAt(path string, def bool) bool {
	if v, ok := d.at(path).(bool); ok {
		return v
	}
	return def
}

func (d SectionData) at(path string) any {
	parts := strings.Split(path, ".")
	var cur any = map[string]any(d)
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[p]
		if !ok {
			return nil
		}
	}
	return cur
}

// With returns a copy of the data with key set to value. Only the top level
// is cloned; nested values are shared with the original.
func (d SectionData) With(key string, value any) SectionData {
	next := make(SectionData, len(d)+1)
	for k, v := range d {
		next[k] = v
	}
	next[key] = value
	return next
}

// WithNested returns a copy of the data with the leaf of the dot-separated
// path set to value. Each intermediate level along the path is shallow-cloned
// so sibling keys at every level keep their original references; missing
// intermediate maps are created.
func (d SectionData) WithNested(path string, value any) SectionData {
	parts := strings.Split(path, ".")
	if len(parts) == 1 {
		return d.With(path, value)
	}
	root := cloneLevel(map[string]any(d))
	cur := root
	for _, p := range parts[:len(parts)-1] {
		child, _ := cur[p].(map[string]any)
		next := cloneLevel(child)
		cur[p] = next
		cur = next
	}
	cur[parts[len(parts)-1]] = value
	return SectionData(root)
}

func cloneLevel(m map[string]any) map[string]any {
	next := make(map[string]any, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	return next
}

// Clone returns a deep copy of the data. Nested maps and slices are copied;
// scalar leaves are shared (they are immutable in practice).
func (d SectionData) Clone() SectionData {
	return SectionData(deepCopy(map[string]any(d)))
}

func deepCopy(m map[string]any) map[string]any {
	next := make(map[string]any, len(m))
	for k, v := range m {
		next[k] = deepCopyValue(v)
	}
	return next
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopy(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}

package core

// Tab selects which half of a section's control panel is shown. Tab state
// lives in the editor instance, is never persisted, and does not exist for
// global section types (typography, header, global styles).
type Tab string

const (
	TabContent Tab = "content"
	TabStyle   Tab = "style"
)

// FieldKind enumerates the control widgets a section panel can bind.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldToggle   FieldKind = "toggle"
	FieldSelect   FieldKind = "select"
	FieldRange    FieldKind = "range"
	FieldColor    FieldKind = "color"
	FieldImage    FieldKind = "image"
)

// Field binds one control widget to one key (or dot path) of a section's
// data. Fields carry no values: the current value is always read from the
// section data with Default as the fallback.
type Field struct {
	Key     string    `json:"key"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Default any       `json:"default,omitempty"`

	// Select fields only.
	Options []string `json:"options,omitempty"`

	// Range fields only. Clamping happens in the widget; the model does not
	// re-validate.
	Min  float64 `json:"min,omitempty"`
	Max  float64 `json:"max,omitempty"`
	Step float64 `json:"step,omitempty"`

	// Mirror is an additional key written alongside Key on every edit, kept
	// for older stored data that still reads the legacy location. Key is
	// authoritative when the two diverge.
	Mirror string `json:"mirror,omitempty"`
}

// ListSpec describes an ordered list-of-records editor bound to one data
// key. Items have positional identity only: add appends, remove shifts,
// reorder is not id-based.
type ListSpec struct {
	Key          string         `json:"key"`
	ItemLabel    string         `json:"item_label"`
	ItemDefaults map[string]any `json:"item_defaults"`
	ItemFields   []Field        `json:"item_fields"`
}

// Panel is one titled group of controls within a tab.
type Panel struct {
	Title  string    `json:"title"`
	Fields []Field   `json:"fields,omitempty"`
	List   *ListSpec `json:"list,omitempty"`
}

// SectionType is the per-type handler contract. One handler is registered
// for every section kind the builder knows about; the registry dispatches on
// the section's type tag and falls back to a generic handler for unknown
// tags.
//
// Handlers are stateless prototypes: all methods are pure functions of their
// arguments, so a single registered instance serves every section of its
// type concurrently.
type SectionType interface {
	// Type returns the type tag this handler serves (e.g. "hero", "pricing").
	Type() string

	// Title returns the human-readable name shown in the section picker.
	Title() string

	// Defaults returns the data a freshly added section of this type starts
	// with. The returned map is owned by the caller.
	Defaults() SectionData

	// Variants returns the closed set of visual sub-styles this type
	// supports, or nil when the type has no variants. The active variant is
	// stored under the "variant" data key and gates which extra controls
	// Panels returns.
	Variants() []string

	// Tabbed reports whether this type splits its controls into content and
	// style tabs. Global configuration types render a single merged panel.
	Tabbed() bool

	// Panels returns the control groups for the given tab. For non-tabbed
	// types the tab argument is ignored and the full merged panel set is
	// returned. Panels may depend on data (variant gating) but must never
	// mutate it.
	Panels(data SectionData, tab Tab) []Panel

	// ApplyColors maps the global palette slots onto this type's own color
	// keys and returns the updated data. Types with no color surface return
	// data unchanged.
	ApplyColors(data SectionData, colors GlobalColors) SectionData

	// Normalize migrates legacy data shapes to the current one. It runs once
	// when a section is loaded from storage, never on read paths. The
	// default for most types is the identity.
	Normalize(data SectionData) SectionData
}

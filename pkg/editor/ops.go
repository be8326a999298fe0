package editor

import (
	"fmt"

	"github.com/quimera-ai/quimera/pkg/core"
)

// Op names for Apply. These mirror the editing operations the control panel
// performs: key writes, nested path writes, and whole-array list edits.
const (
	OpSet          = "set"
	OpSetNested    = "set-nested"
	OpListAdd      = "list-add"
	OpListRemove   = "list-remove"
	OpListSetField = "list-set-field"
)

// Op is one edit applied to a section's data.
type Op struct {
	Op    string `json:"op"`
	Key   string `json:"key,omitempty"`
	Path  string `json:"path,omitempty"`
	Index int    `json:"index,omitempty"`
	Field string `json:"field,omitempty"`
	Value any    `json:"value,omitempty"`
}

// Apply runs a batch of edit operations against a section's data and returns
// the resulting object. Operations are applied in order; the first failure
// aborts the batch and nothing is committed.
func Apply(registry *core.Registry, section core.Section, ops []Op) (core.SectionData, error) {
	ed := New(registry, section, nil)
	for i, op := range ops {
		var err error
		switch op.Op {
		case OpSet:
			err = ed.Set(op.Key, op.Value)
		case OpSetNested:
			err = ed.SetNested(op.Path, op.Value)
		case OpListAdd:
			err = ed.AddItem(op.Key)
		case OpListRemove:
			err = ed.RemoveItem(op.Key, op.Index)
		case OpListSetField:
			err = ed.SetItemField(op.Key, op.Index, op.Field, op.Value)
		default:
			err = fmt.Errorf("unknown op %q", op.Op)
		}
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
	}
	return ed.Data(), nil
}

package editor

import (
	"testing"

	"github.com/quimera-ai/quimera/pkg/core"
)

type listHandler struct{}

func (listHandler) Type() string  { return "tiers" }
func (listHandler) Title() string { return "Tiers" }
func (listHandler) Defaults() core.SectionData {
	return core.SectionData{"tiers": []any{}}
}
func (listHandler) Variants() []string { return nil }
func (listHandler) Tabbed() bool       { return true }
func (listHandler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab != core.TabContent {
		return nil
	}
	return []core.Panel{{
		Title: "Tiers",
		List: &core.ListSpec{
			Key:          "tiers",
			ItemLabel:    "Tier",
			ItemDefaults: map[string]any{"name": "New tier", "price": "0"},
		},
	}}
}
func (listHandler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data
}
func (listHandler) Normalize(data core.SectionData) core.SectionData { return data }

func newTestRegistry(t *testing.T) *core.Registry {
	t.Helper()
	r := core.NewRegistry()
	if err := r.RegisterPrototype(listHandler{}); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestAddItemAppendsWithDefaults(t *testing.T) {
	section := core.Section{ID: "s1", Type: "tiers", Data: core.SectionData{
		"tiers": []any{map[string]any{"name": "A"}},
	}}

	var committed core.SectionData
	ed := New(newTestRegistry(t), section, func(id string, data core.SectionData) error {
		committed = data
		return nil
	})

	if err := ed.AddItem("tiers"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items := committed.List("tiers")
	if len(items) != 2 {
		t.Fatalf("len(tiers) = %d, want 2", len(items))
	}
	if items[0].(map[string]any)["name"] != "A" {
		t.Error("existing item disturbed by append")
	}
	added := items[1].(map[string]any)
	if added["name"] != "New tier" || added["price"] != "0" {
		t.Errorf("appended item = %v, want the list defaults", added)
	}
}

func TestRemoveItemShiftsLaterIndexes(t *testing.T) {
	section := core.Section{ID: "s1", Type: "tiers", Data: core.SectionData{
		"tiers": []any{
			map[string]any{"name": "A"},
			map[string]any{"name": "B"},
			map[string]any{"name": "C"},
		},
	}}

	calls := 0
	var committed core.SectionData
	ed := New(newTestRegistry(t), section, func(id string, data core.SectionData) error {
		calls++
		committed = data
		return nil
	})

	if err := ed.RemoveItem("tiers", 1); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if calls != 1 {
		t.Fatalf("commit called %d times, want 1", calls)
	}

	items := committed.List("tiers")
	if len(items) != 2 {
		t.Fatalf("len(tiers) = %d, want 2", len(items))
	}
	if items[0].(map[string]any)["name"] != "A" || items[1].(map[string]any)["name"] != "C" {
		t.Errorf("items after remove = %v", items)
	}
}

func TestRemoveLastItemYieldsEmptyList(t *testing.T) {
	section := core.Section{ID: "s1", Type: "tiers", Data: core.SectionData{
		"tiers": []any{map[string]any{"name": "A"}},
	}}

	calls := 0
	var committed core.SectionData
	ed := New(newTestRegistry(t), section, func(id string, data core.SectionData) error {
		calls++
		committed = data
		return nil
	})

	if err := ed.RemoveItem("tiers", 0); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if calls != 1 {
		t.Fatalf("commit called %d times, want exactly 1", calls)
	}
	if items := committed.List("tiers"); len(items) != 0 {
		t.Errorf("tiers = %v, want empty", items)
	}
}

func TestRemoveItemOutOfRange(t *testing.T) {
	section := core.Section{ID: "s1", Type: "tiers", Data: core.SectionData{"tiers": []any{}}}
	ed := New(newTestRegistry(t), section, nil)

	if err := ed.RemoveItem("tiers", 0); err == nil {
		t.Error("expected error removing from empty list")
	}
}

func TestSetItemFieldLeavesOtherIndexesUntouched(t *testing.T) {
	section := core.Section{ID: "s1", Type: "tiers", Data: core.SectionData{
		"tiers": []any{
			map[string]any{"name": "A", "price": "10"},
			map[string]any{"name": "B", "price": "20"},
		},
	}}

	var committed core.SectionData
	ed := New(newTestRegistry(t), section, func(id string, data core.SectionData) error {
		committed = data
		return nil
	})

	if err := ed.SetItemField("tiers", 1, "price", "25"); err != nil {
		t.Fatalf("SetItemField: %v", err)
	}

	items := committed.List("tiers")
	first := items[0].(map[string]any)
	second := items[1].(map[string]any)
	if first["price"] != "10" {
		t.Error("untouched index changed")
	}
	if second["price"] != "25" || second["name"] != "B" {
		t.Errorf("edited item = %v", second)
	}
	// Original section data must not have been mutated in place.
	orig := section.Data.List("tiers")[1].(map[string]any)
	if orig["price"] != "20" {
		t.Error("edit mutated the original array")
	}
}

func TestTabStateMachine(t *testing.T) {
	section := core.Section{ID: "s1", Type: "tiers", Data: core.SectionData{}}
	ed := New(newTestRegistry(t), section, nil)

	if ed.ActiveTab() != core.TabContent {
		t.Errorf("initial tab = %q, want content", ed.ActiveTab())
	}
	ed.SetTab(core.TabStyle)
	if ed.ActiveTab() != core.TabStyle {
		t.Error("SetTab(style) did not switch")
	}
	ed.SetTab("bogus")
	if ed.ActiveTab() != core.TabStyle {
		t.Error("unknown tab value must be ignored")
	}
}

func TestUnknownSectionTypeFallsBack(t *testing.T) {
	section := core.Section{ID: "s1", Type: "mystery-block", Data: core.SectionData{}}
	ed := New(newTestRegistry(t), section, nil)

	panels := ed.Panels()
	if len(panels) == 0 {
		t.Fatal("unknown type should render the generic editor, not nothing")
	}
}

func TestApplyOpsBatch(t *testing.T) {
	section := core.Section{ID: "s1", Type: "tiers", Data: core.SectionData{
		"tiers": []any{map[string]any{"name": "A"}},
	}}

	data, err := Apply(newTestRegistry(t), section, []Op{
		{Op: OpSet, Key: "headline", Value: "Plans"},
		{Op: OpSetNested, Path: "colors.background", Value: "#111"},
		{Op: OpListSetField, Key: "tiers", Index: 0, Field: "price", Value: "15"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if data.String("headline", "") != "Plans" {
		t.Error("set op not applied")
	}
	if data.StringAt("colors.background", "") != "#111" {
		t.Error("set-nested op not applied")
	}
	if data.List("tiers")[0].(map[string]any)["price"] != "15" {
		t.Error("list-set-field op not applied")
	}
}

func TestApplyAbortsOnBadOp(t *testing.T) {
	section := core.Section{ID: "s1", Type: "tiers", Data: core.SectionData{}}
	if _, err := Apply(newTestRegistry(t), section, []Op{
		{Op: "transmogrify"},
	}); err == nil {
		t.Error("expected error for unknown op")
	}
}

// Package howitworks implements the numbered process steps section.
package howitworks

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "howitworks" }
func (Handler) Title() string { return "How it works" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline": "How it works",
		"steps": []any{
			map[string]any{"title": "Pick a template", "description": ""},
			map[string]any{"title": "Customize your sections", "description": ""},
			map[string]any{"title": "Publish", "description": ""},
		},
		"numbered": true,
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
			"accent":     core.DefaultColors.Primary,
		},
	}
}

func (Handler) Variants() []string { return nil }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{
			Title: "Appearance",
			Fields: []core.Field{
				{Key: "numbered", Label: "Show step numbers", Kind: core.FieldToggle, Default: true},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
				{Key: "colors.accent", Label: "Number color", Kind: core.FieldColor, Default: core.DefaultColors.Primary},
			},
		}}
	}

	return []core.Panel{
		{
			Title: "Header",
			Fields: []core.Field{
				{Key: "headline", Label: "Headline", Kind: core.FieldText, Default: ""},
			},
		},
		{
			Title: "Steps",
			List: &core.ListSpec{
				Key:          "steps",
				ItemLabel:    "Step",
				ItemDefaults: map[string]any{"title": "New step", "description": ""},
				ItemFields: []core.Field{
					{Key: "title", Label: "Title", Kind: core.FieldText, Default: ""},
					{Key: "description", Label: "Description", Kind: core.FieldTextarea, Default: ""},
				},
			},
		},
	}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Background).
		WithNested("colors.text", colors.Text).
		WithNested("colors.accent", colors.Primary)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

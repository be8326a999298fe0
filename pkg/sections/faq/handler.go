// Package faq implements the frequently-asked-questions accordion section.
package faq

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "faq" }
func (Handler) Title() string { return "FAQ" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline": "Frequently asked questions",
		"items": []any{
			map[string]any{"question": "Can I cancel anytime?", "answer": "Yes, with one click from your dashboard."},
		},
		"expandFirst": true,
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
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
				{Key: "expandFirst", Label: "Expand first item", Kind: core.FieldToggle, Default: true},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
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
			Title: "Questions",
			List: &core.ListSpec{
				Key:          "items",
				ItemLabel:    "Question",
				ItemDefaults: map[string]any{"question": "", "answer": ""},
				ItemFields: []core.Field{
					{Key: "question", Label: "Question", Kind: core.FieldText, Default: ""},
					{Key: "answer", Label: "Answer", Kind: core.FieldTextarea, Default: ""},
				},
			},
		},
	}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Background).
		WithNested("colors.text", colors.Text)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

// Package leads implements the lead capture form section.
package leads

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "leads" }
func (Handler) Title() string { return "Lead form" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline":       "Get a free quote",
		"buttonLabel":    "Send",
		"successMessage": "Thanks! We'll be in touch shortly.",
		"collectPhone":   false,
		"collectCompany": false,
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
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
				{Key: "colors.accent", Label: "Button color", Kind: core.FieldColor, Default: core.DefaultColors.Primary},
			},
		}}
	}

	return []core.Panel{{
		Title: "Form",
		Fields: []core.Field{
			{Key: "headline", Label: "Headline", Kind: core.FieldText, Default: ""},
			{Key: "buttonLabel", Label: "Button label", Kind: core.FieldText, Default: "Send"},
			{Key: "successMessage", Label: "Success message", Kind: core.FieldTextarea, Default: ""},
			{Key: "collectPhone", Label: "Ask for phone number", Kind: core.FieldToggle, Default: false},
			{Key: "collectCompany", Label: "Ask for company", Kind: core.FieldToggle, Default: false},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Background).
		WithNested("colors.text", colors.Text).
		WithNested("colors.accent", colors.Primary)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

// Package newsletter implements the email signup section.
package newsletter

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "newsletter" }
func (Handler) Title() string { return "Newsletter" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline":    "Stay in the loop",
		"placeholder": "you@example.com",
		"buttonLabel": "Subscribe",
		"consentText": "No spam, unsubscribe anytime.",
		"colors": map[string]any{
			"background": core.DefaultColors.Secondary,
			"text":       "#ffffff",
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
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Secondary},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: "#ffffff"},
			},
		}}
	}

	return []core.Panel{{
		Title: "Content",
		Fields: []core.Field{
			{Key: "headline", Label: "Headline", Kind: core.FieldText, Default: ""},
			{Key: "placeholder", Label: "Input placeholder", Kind: core.FieldText, Default: ""},
			{Key: "buttonLabel", Label: "Button label", Kind: core.FieldText, Default: "Subscribe"},
			{Key: "consentText", Label: "Consent text", Kind: core.FieldText, Default: ""},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Secondary).
		WithNested("colors.text", colors.Background)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

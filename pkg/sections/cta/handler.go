// Package cta implements the call-to-action banner section.
//
// The background color is stored twice: under the nested authoritative key
// "colors.background" and under the flat legacy key "backgroundColor" that
// older stored pages still read. Edits write both; on divergence the nested
// key wins.
package cta

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "cta" }
func (Handler) Title() string { return "Call to action" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline":        "Ready to launch?",
		"subtitle":        "Join thousands of businesses already online.",
		"buttonLabel":     "Start free trial",
		"buttonLink":      "#",
		"backgroundColor": core.DefaultColors.Primary,
		"colors": map[string]any{
			"background": core.DefaultColors.Primary,
			"text":       "#ffffff",
		},
		"cornerGradient": map[string]any{
			"enabled": false,
			"color":   core.DefaultColors.Accent,
		},
	}
}

func (Handler) Variants() []string { return nil }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		fields := []core.Field{
			// Mirror keeps the legacy flat key in sync on every edit.
			{Key: "colors.background", Mirror: "backgroundColor", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Primary},
			{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: "#ffffff"},
			{Key: "cornerGradient.enabled", Label: "Corner gradient", Kind: core.FieldToggle, Default: false},
		}
		if data.BoolAt("cornerGradient.enabled", false) {
			fields = append(fields,
				core.Field{Key: "cornerGradient.color", Label: "Gradient color", Kind: core.FieldColor, Default: core.DefaultColors.Accent},
			)
		}
		return []core.Panel{{Title: "Appearance", Fields: fields}}
	}

	return []core.Panel{{
		Title: "Content",
		Fields: []core.Field{
			{Key: "headline", Label: "Headline", Kind: core.FieldText, Default: ""},
			{Key: "subtitle", Label: "Subtitle", Kind: core.FieldText, Default: ""},
			{Key: "buttonLabel", Label: "Button label", Kind: core.FieldText, Default: ""},
			{Key: "buttonLink", Label: "Button link", Kind: core.FieldText, Default: "#"},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Primary).
		With("backgroundColor", colors.Primary).
		WithNested("colors.text", colors.Background).
		WithNested("cornerGradient.color", colors.Accent)
}

// Normalize backfills the nested key from the legacy flat key for pages
// stored before the colors map existed.
func (Handler) Normalize(data core.SectionData) core.SectionData {
	legacy := data.String("backgroundColor", "")
	if legacy == "" {
		return data
	}
	if data.StringAt("colors.background", "") == "" {
		data = data.WithNested("colors.background", legacy)
	}
	return data
}

// Package typography implements the site-wide font configuration, a global
// type edited as a single merged panel.
package typography

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

// Fonts is the closed set of families the builder ships.
var Fonts = []string{
	"Inter", "Lora", "Playfair Display", "Poppins", "Roboto",
	"Source Serif Pro", "Space Grotesk", "Work Sans",
}

type Handler struct{}

func (Handler) Type() string  { return "typography" }
func (Handler) Title() string { return "Typography" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headingFont": "Space Grotesk",
		"bodyFont":    "Inter",
		"baseSize":    16,
		"scale":       "major-third",
	}
}

func (Handler) Variants() []string { return nil }
func (Handler) Tabbed() bool       { return false }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	return []core.Panel{{
		Title: "Fonts",
		Fields: []core.Field{
			{Key: "headingFont", Label: "Headings", Kind: core.FieldSelect, Options: Fonts, Default: "Space Grotesk"},
			{Key: "bodyFont", Label: "Body", Kind: core.FieldSelect, Options: Fonts, Default: "Inter"},
			{Key: "baseSize", Label: "Base size (px)", Kind: core.FieldRange, Min: 14, Max: 20, Step: 1, Default: 16},
			{Key: "scale", Label: "Type scale", Kind: core.FieldSelect, Options: []string{"minor-third", "major-third", "perfect-fourth"}, Default: "major-third"},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

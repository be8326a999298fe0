// Package globalstyles implements the site-wide style configuration. Like
// header and typography it is a global type: one merged panel, no tabs. Its
// ApplyColors writes the palette slots themselves, which makes it the
// canonical record of the last applied palette.
package globalstyles

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "globalstyles" }
func (Handler) Title() string { return "Global styles" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"primary":    core.DefaultColors.Primary,
			"secondary":  core.DefaultColors.Secondary,
			"accent":     core.DefaultColors.Accent,
			"text":       core.DefaultColors.Text,
		},
		"borderRadius": 8,
		"buttonStyle":  "rounded",
		"spacing":      "comfortable",
	}
}

func (Handler) Variants() []string { return nil }
func (Handler) Tabbed() bool       { return false }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	return []core.Panel{
		{
			Title: "Colors",
			Fields: []core.Field{
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.primary", Label: "Primary", Kind: core.FieldColor, Default: core.DefaultColors.Primary},
				{Key: "colors.secondary", Label: "Secondary", Kind: core.FieldColor, Default: core.DefaultColors.Secondary},
				{Key: "colors.accent", Label: "Accent", Kind: core.FieldColor, Default: core.DefaultColors.Accent},
				{Key: "colors.text", Label: "Text", Kind: core.FieldColor, Default: core.DefaultColors.Text},
			},
		},
		{
			Title: "Shape",
			Fields: []core.Field{
				{Key: "borderRadius", Label: "Corner radius", Kind: core.FieldRange, Min: 0, Max: 24, Step: 2, Default: 8},
				{Key: "buttonStyle", Label: "Buttons", Kind: core.FieldSelect, Options: []string{"rounded", "pill", "square"}, Default: "rounded"},
				{Key: "spacing", Label: "Spacing", Kind: core.FieldSelect, Options: []string{"compact", "comfortable", "airy"}, Default: "comfortable"},
			},
		},
	}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Background).
		WithNested("colors.primary", colors.Primary).
		WithNested("colors.secondary", colors.Secondary).
		WithNested("colors.accent", colors.Accent).
		WithNested("colors.text", colors.Text)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

// Colors reads the stored palette back out of a globalstyles section,
// defaulting each missing slot.
func Colors(data core.SectionData) core.GlobalColors {
	return core.GlobalColors{
		Background: data.StringAt("colors.background", core.DefaultColors.Background),
		Primary:    data.StringAt("colors.primary", core.DefaultColors.Primary),
		Secondary:  data.StringAt("colors.secondary", core.DefaultColors.Secondary),
		Accent:     data.StringAt("colors.accent", core.DefaultColors.Accent),
		Text:       data.StringAt("colors.text", core.DefaultColors.Text),
	}
}

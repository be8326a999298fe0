// Package banner implements the announcement bar section.
package banner

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "banner" }
func (Handler) Title() string { return "Banner" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"text":        "",
		"link":        "",
		"linkLabel":   "Learn more",
		"dismissible": true,
		"colors": map[string]any{
			"background": core.DefaultColors.Accent,
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
				{Key: "dismissible", Label: "Dismissible", Kind: core.FieldToggle, Default: true},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Accent},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
			},
		}}
	}

	return []core.Panel{{
		Title: "Content",
		Fields: []core.Field{
			{Key: "text", Label: "Text", Kind: core.FieldText, Default: ""},
			{Key: "link", Label: "Link", Kind: core.FieldText, Default: ""},
			{Key: "linkLabel", Label: "Link label", Kind: core.FieldText, Default: "Learn more"},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Accent).
		WithNested("colors.text", colors.Text)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

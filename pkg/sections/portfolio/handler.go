// Package portfolio implements the project gallery section.
package portfolio

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "portfolio" }
func (Handler) Title() string { return "Portfolio" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline": "Recent work",
		"projects": []any{},
		"columns":  3,
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
		},
	}
}

func (Handler) Variants() []string { return []string{"grid", "masonry"} }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{
			Title: "Appearance",
			Fields: []core.Field{
				{Key: "variant", Label: "Layout", Kind: core.FieldSelect, Options: Handler{}.Variants(), Default: "grid"},
				{Key: "columns", Label: "Columns", Kind: core.FieldRange, Min: 1, Max: 4, Step: 1, Default: 3},
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
			Title: "Projects",
			List: &core.ListSpec{
				Key:          "projects",
				ItemLabel:    "Project",
				ItemDefaults: map[string]any{"title": "New project", "image": "", "url": "", "tags": ""},
				ItemFields: []core.Field{
					{Key: "title", Label: "Title", Kind: core.FieldText, Default: ""},
					{Key: "image", Label: "Image", Kind: core.FieldImage, Default: ""},
					{Key: "url", Label: "Link", Kind: core.FieldText, Default: ""},
					{Key: "tags", Label: "Tags (comma separated)", Kind: core.FieldText, Default: ""},
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

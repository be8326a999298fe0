// Package testimonials implements the customer quotes section.
package testimonials

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "testimonials" }
func (Handler) Title() string { return "Testimonials" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"variant":  "cards",
		"headline": "What our customers say",
		"testimonials": []any{
			map[string]any{"quote": "Quimera let us launch in a weekend.", "author": "Ana R.", "role": "Founder", "avatar": ""},
		},
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
		},
	}
}

func (Handler) Variants() []string { return []string{"cards", "quotes", "slider"} }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{
			Title: "Appearance",
			Fields: []core.Field{
				{Key: "variant", Label: "Layout", Kind: core.FieldSelect, Options: Handler{}.Variants(), Default: "cards"},
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
			Title: "Testimonials",
			List: &core.ListSpec{
				Key:          "testimonials",
				ItemLabel:    "Testimonial",
				ItemDefaults: map[string]any{"quote": "", "author": "", "role": "", "avatar": ""},
				ItemFields: []core.Field{
					{Key: "quote", Label: "Quote", Kind: core.FieldTextarea, Default: ""},
					{Key: "author", Label: "Author", Kind: core.FieldText, Default: ""},
					{Key: "role", Label: "Role", Kind: core.FieldText, Default: ""},
					{Key: "avatar", Label: "Avatar", Kind: core.FieldImage, Default: ""},
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

// Package menu implements the restaurant menu section.
package menu

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "menu" }
func (Handler) Title() string { return "Menu" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline": "Our menu",
		"currency": "EUR",
		"items":    []any{},
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
			"accent":     core.DefaultColors.Accent,
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
				{Key: "currency", Label: "Currency", Kind: core.FieldSelect, Options: []string{"EUR", "USD", "GBP", "MXN", "BRL"}, Default: "EUR"},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
				{Key: "colors.accent", Label: "Price color", Kind: core.FieldColor, Default: core.DefaultColors.Accent},
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
			Title: "Dishes",
			List: &core.ListSpec{
				Key:          "items",
				ItemLabel:    "Dish",
				ItemDefaults: map[string]any{"name": "", "description": "", "price": "", "image": ""},
				ItemFields: []core.Field{
					{Key: "name", Label: "Name", Kind: core.FieldText, Default: ""},
					{Key: "description", Label: "Description", Kind: core.FieldTextarea, Default: ""},
					{Key: "price", Label: "Price", Kind: core.FieldText, Default: ""},
					{Key: "image", Label: "Photo", Kind: core.FieldImage, Default: ""},
				},
			},
		},
	}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Background).
		WithNested("colors.text", colors.Text).
		WithNested("colors.accent", colors.Accent)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

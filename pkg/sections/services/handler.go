// Package services implements the services list section.
package services

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "services" }
func (Handler) Title() string { return "Services" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline":   "Our services",
		"items":      []any{},
		"showPrices": true,
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
			"accent":     core.DefaultColors.Secondary,
		},
	}
}

func (Handler) Variants() []string { return []string{"grid", "list"} }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{
			Title: "Appearance",
			Fields: []core.Field{
				{Key: "variant", Label: "Layout", Kind: core.FieldSelect, Options: Handler{}.Variants(), Default: "grid"},
				{Key: "showPrices", Label: "Show prices", Kind: core.FieldToggle, Default: true},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
				{Key: "colors.accent", Label: "Accent", Kind: core.FieldColor, Default: core.DefaultColors.Secondary},
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
			Title: "Services",
			List: &core.ListSpec{
				Key:          "items",
				ItemLabel:    "Service",
				ItemDefaults: map[string]any{"name": "New service", "description": "", "icon": "briefcase", "price": ""},
				ItemFields: []core.Field{
					{Key: "name", Label: "Name", Kind: core.FieldText, Default: ""},
					{Key: "description", Label: "Description", Kind: core.FieldTextarea, Default: ""},
					{Key: "icon", Label: "Icon", Kind: core.FieldText, Default: "briefcase"},
					{Key: "price", Label: "Price", Kind: core.FieldText, Default: ""},
				},
			},
		},
	}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Background).
		WithNested("colors.text", colors.Text).
		WithNested("colors.accent", colors.Secondary)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

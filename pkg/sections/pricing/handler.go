// Package pricing implements the pricing table section.
package pricing

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "pricing" }
func (Handler) Title() string { return "Pricing" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"variant":  "classic",
		"headline": "Simple pricing",
		"subtitle": "No hidden fees, cancel anytime.",
		"tiers": []any{
			map[string]any{
				"name":        "Starter",
				"price":       "9",
				"period":      "month",
				"features":    "1 site\nBasic sections\nCommunity support",
				"ctaLabel":    "Choose Starter",
				"highlighted": false,
			},
			map[string]any{
				"name":        "Pro",
				"price":       "29",
				"period":      "month",
				"features":    "Unlimited sites\nAll sections\nPriority support",
				"ctaLabel":    "Choose Pro",
				"highlighted": true,
			},
		},
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
			"accent":     core.DefaultColors.Primary,
		},
	}
}

// Variants: classic renders flat cards, gradient tints the highlighted tier.
func (Handler) Variants() []string {
	return []string{"classic", "gradient"}
}

func (Handler) Tabbed() bool { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{
			Title: "Appearance",
			Fields: []core.Field{
				{Key: "variant", Label: "Style", Kind: core.FieldSelect, Options: Handler{}.Variants(), Default: "classic"},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
				{Key: "colors.accent", Label: "Highlight color", Kind: core.FieldColor, Default: core.DefaultColors.Primary},
				{Key: "columns", Label: "Columns", Kind: core.FieldRange, Min: 1, Max: 4, Step: 1, Default: 3},
			},
		}}
	}

	return []core.Panel{
		{
			Title: "Header",
			Fields: []core.Field{
				{Key: "headline", Label: "Headline", Kind: core.FieldText, Default: ""},
				{Key: "subtitle", Label: "Subtitle", Kind: core.FieldText, Default: ""},
			},
		},
		{
			Title: "Tiers",
			List: &core.ListSpec{
				Key:       "tiers",
				ItemLabel: "Tier",
				ItemDefaults: map[string]any{
					"name":        "New tier",
					"price":       "0",
					"period":      "month",
					"features":    "",
					"ctaLabel":    "Choose plan",
					"highlighted": false,
				},
				ItemFields: []core.Field{
					{Key: "name", Label: "Name", Kind: core.FieldText, Default: ""},
					{Key: "price", Label: "Price", Kind: core.FieldText, Default: "0"},
					{Key: "period", Label: "Billing period", Kind: core.FieldSelect, Options: []string{"month", "year", "once"}, Default: "month"},
					{Key: "features", Label: "Features (one per line)", Kind: core.FieldTextarea, Default: ""},
					{Key: "ctaLabel", Label: "Button label", Kind: core.FieldText, Default: "Choose plan"},
					{Key: "highlighted", Label: "Highlight", Kind: core.FieldToggle, Default: false},
				},
			},
		},
	}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Background).
		WithNested("colors.text", colors.Text).
		WithNested("colors.accent", colors.Primary)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

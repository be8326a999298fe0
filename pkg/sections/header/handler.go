// Package header implements the site navigation header. Header is a global
// configuration type: it renders one merged panel, no content/style tabs.
package header

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "header" }
func (Handler) Title() string { return "Header" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"logo":     "",
		"siteName": "My site",
		"nav": []any{
			map[string]any{"label": "Home", "link": "/"},
		},
		"sticky":      true,
		"transparent": false,
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
		},
	}
}

func (Handler) Variants() []string { return nil }

// Tabbed is false: the header is edited as a single merged panel.
func (Handler) Tabbed() bool { return false }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	return []core.Panel{
		{
			Title: "Branding",
			Fields: []core.Field{
				{Key: "logo", Label: "Logo", Kind: core.FieldImage, Default: ""},
				{Key: "siteName", Label: "Site name", Kind: core.FieldText, Default: ""},
			},
		},
		{
			Title: "Navigation",
			List: &core.ListSpec{
				Key:          "nav",
				ItemLabel:    "Link",
				ItemDefaults: map[string]any{"label": "New link", "link": "#"},
				ItemFields: []core.Field{
					{Key: "label", Label: "Label", Kind: core.FieldText, Default: ""},
					{Key: "link", Label: "Link", Kind: core.FieldText, Default: "#"},
				},
			},
		},
		{
			Title: "Behavior",
			Fields: []core.Field{
				{Key: "sticky", Label: "Stick to top", Kind: core.FieldToggle, Default: true},
				{Key: "transparent", Label: "Transparent over hero", Kind: core.FieldToggle, Default: false},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
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

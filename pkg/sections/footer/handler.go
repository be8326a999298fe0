// Package footer implements the site footer section.
package footer

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "footer" }
func (Handler) Title() string { return "Footer" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"about":     "",
		"copyright": "© Quimera.ai",
		"social": []any{
			map[string]any{"network": "instagram", "url": ""},
		},
		"showLogo": true,
		"colors": map[string]any{
			"background": core.DefaultColors.Text,
			"text":       core.DefaultColors.Background,
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
				{Key: "showLogo", Label: "Show logo", Kind: core.FieldToggle, Default: true},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Text},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Background},
			},
		}}
	}

	return []core.Panel{
		{
			Title: "Content",
			Fields: []core.Field{
				{Key: "about", Label: "About text", Kind: core.FieldTextarea, Default: ""},
				{Key: "copyright", Label: "Copyright line", Kind: core.FieldText, Default: ""},
			},
		},
		{
			Title: "Social links",
			List: &core.ListSpec{
				Key:          "social",
				ItemLabel:    "Link",
				ItemDefaults: map[string]any{"network": "instagram", "url": ""},
				ItemFields: []core.Field{
					{Key: "network", Label: "Network", Kind: core.FieldSelect, Options: []string{"instagram", "facebook", "x", "linkedin", "youtube", "tiktok"}, Default: "instagram"},
					{Key: "url", Label: "URL", Kind: core.FieldText, Default: ""},
				},
			},
		},
	}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	// The footer inverts the palette: text slot as background, background
	// slot as text.
	return data.
		WithNested("colors.background", colors.Text).
		WithNested("colors.text", colors.Background)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

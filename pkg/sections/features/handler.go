// Package features implements the feature grid section: an ordered list of
// title/description/icon records rendered in one of four layouts.
package features

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "features" }
func (Handler) Title() string { return "Features" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"variant":  "classic",
		"headline": "Why choose us",
		"items": []any{
			map[string]any{"title": "Fast", "description": "Launch in minutes.", "icon": "zap"},
			map[string]any{"title": "Flexible", "description": "Every block is configurable.", "icon": "sliders"},
			map[string]any{"title": "Yours", "description": "Your brand, your colors.", "icon": "palette"},
		},
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
			"accent":     core.DefaultColors.Primary,
		},
	}
}

func (Handler) Variants() []string {
	return []string{"classic", "modern", "bento-premium", "image-overlay"}
}

func (Handler) Tabbed() bool { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		fields := []core.Field{
			{Key: "variant", Label: "Layout", Kind: core.FieldSelect, Options: Handler{}.Variants(), Default: "classic"},
			{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
			{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
			{Key: "colors.accent", Label: "Accent", Kind: core.FieldColor, Default: core.DefaultColors.Primary},
		}
		// image-overlay is the only layout drawing copy on top of item
		// images, so alignment and header visibility only apply there.
		if data.String("variant", "classic") == "image-overlay" {
			fields = append(fields,
				core.Field{Key: "textAlign", Label: "Text alignment", Kind: core.FieldSelect, Options: []string{"left", "center", "right"}, Default: "left"},
				core.Field{Key: "showHeader", Label: "Show section header", Kind: core.FieldToggle, Default: true},
			)
		}
		return []core.Panel{{Title: "Appearance", Fields: fields}}
	}

	itemFields := []core.Field{
		{Key: "title", Label: "Title", Kind: core.FieldText, Default: ""},
		{Key: "description", Label: "Description", Kind: core.FieldTextarea, Default: ""},
		{Key: "icon", Label: "Icon", Kind: core.FieldText, Default: "star"},
	}
	if data.String("variant", "classic") == "image-overlay" {
		itemFields = append(itemFields, core.Field{Key: "image", Label: "Image", Kind: core.FieldImage, Default: ""})
	}

	return []core.Panel{
		{
			Title: "Header",
			Fields: []core.Field{
				{Key: "headline", Label: "Headline", Kind: core.FieldText, Default: ""},
			},
		},
		{
			Title: "Items",
			List: &core.ListSpec{
				Key:          "items",
				ItemLabel:    "Feature",
				ItemDefaults: map[string]any{"title": "New feature", "description": "", "icon": "star"},
				ItemFields:   itemFields,
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

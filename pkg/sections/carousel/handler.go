// Package carousel implements the image carousel section.
//
// Older pages stored images as bare URL strings; current pages store
// {url, title, subtitle} records. Normalize migrates string entries to the
// record shape once, when the section is loaded from storage, so readers
// never branch on entry shape.
package carousel

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "carousel" }
func (Handler) Title() string { return "Carousel" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline": "",
		"images":   []any{},
		"autoplay": true,
		"interval": 5,
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
		},
	}
}

func (Handler) Variants() []string { return nil }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{
			Title: "Behavior",
			Fields: []core.Field{
				{Key: "autoplay", Label: "Autoplay", Kind: core.FieldToggle, Default: true},
				{Key: "interval", Label: "Seconds per slide", Kind: core.FieldRange, Min: 2, Max: 15, Step: 1, Default: 5},
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Caption color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
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
			Title: "Images",
			List: &core.ListSpec{
				Key:          "images",
				ItemLabel:    "Image",
				ItemDefaults: map[string]any{"url": "", "title": "", "subtitle": ""},
				ItemFields: []core.Field{
					{Key: "url", Label: "Image", Kind: core.FieldImage, Default: ""},
					{Key: "title", Label: "Title", Kind: core.FieldText, Default: ""},
					{Key: "subtitle", Label: "Subtitle", Kind: core.FieldText, Default: ""},
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

// Normalize rewrites the image list to the record shape. Bare strings become
// {url, title: "", subtitle: ""}; records pass through with their url intact.
func (Handler) Normalize(data core.SectionData) core.SectionData {
	images := data.List("images")
	if images == nil {
		return data
	}
	changed := false
	normalized := make([]any, len(images))
	for i, img := range images {
		switch v := img.(type) {
		case string:
			normalized[i] = map[string]any{"url": v, "title": "", "subtitle": ""}
			changed = true
		case map[string]any:
			normalized[i] = v
		default:
			normalized[i] = map[string]any{"url": "", "title": "", "subtitle": ""}
			changed = true
		}
	}
	if !changed {
		return data
	}
	return data.With("images", normalized)
}

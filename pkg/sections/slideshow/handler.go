// Package slideshow implements the full-width slideshow section.
package slideshow

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "slideshow" }
func (Handler) Title() string { return "Slideshow" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"slides":     []any{},
		"transition": "fade",
		"duration":   6,
		"showDots":   true,
	}
}

func (Handler) Variants() []string { return nil }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{
			Title: "Behavior",
			Fields: []core.Field{
				{Key: "transition", Label: "Transition", Kind: core.FieldSelect, Options: []string{"fade", "slide", "zoom"}, Default: "fade"},
				{Key: "duration", Label: "Seconds per slide", Kind: core.FieldRange, Min: 3, Max: 20, Step: 1, Default: 6},
				{Key: "showDots", Label: "Show navigation dots", Kind: core.FieldToggle, Default: true},
			},
		}}
	}

	return []core.Panel{{
		Title: "Slides",
		List: &core.ListSpec{
			Key:          "slides",
			ItemLabel:    "Slide",
			ItemDefaults: map[string]any{"image": "", "caption": ""},
			ItemFields: []core.Field{
				{Key: "image", Label: "Image", Kind: core.FieldImage, Default: ""},
				{Key: "caption", Label: "Caption", Kind: core.FieldText, Default: ""},
			},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

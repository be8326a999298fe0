// Package hero implements the hero section: the full-width opener with a
// headline, supporting copy and a primary call-to-action.
//
// This handler doubles as the reference implementation for section type
// packages: it shows the registration pattern, variant gating and the
// palette mapping every other type follows.
package hero

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

// init registers this section type with the core registry.
// Called automatically when the package is imported.
func init() {
	core.RegisterSectionPrototype(Handler{})
}

// Handler implements core.SectionType for hero sections.
type Handler struct{}

func (Handler) Type() string  { return "hero" }
func (Handler) Title() string { return "Hero" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"variant":     "split",
		"headline":    "Build your site in minutes",
		"subheadline": "Everything you need to launch, no code required.",
		"ctaLabel":    "Get started",
		"ctaLink":     "#",
		"image":       "",
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
			"text":       core.DefaultColors.Text,
			"accent":     core.DefaultColors.Primary,
		},
	}
}

// Variants: split puts copy and image side by side, centered stacks them,
// full-bleed stretches the image behind the copy.
func (Handler) Variants() []string {
	return []string{"split", "centered", "full-bleed"}
}

func (Handler) Tabbed() bool { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		fields := []core.Field{
			{Key: "variant", Label: "Layout", Kind: core.FieldSelect, Options: Handler{}.Variants(), Default: "split"},
			{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
			{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
			{Key: "colors.accent", Label: "Button color", Kind: core.FieldColor, Default: core.DefaultColors.Primary},
		}
		// The overlay controls only make sense when the image sits behind
		// the copy.
		if data.String("variant", "split") == "full-bleed" {
			fields = append(fields,
				core.Field{Key: "overlayOpacity", Label: "Overlay opacity", Kind: core.FieldRange, Min: 0, Max: 1, Step: 0.05, Default: 0.4},
				core.Field{Key: "textAlign", Label: "Text alignment", Kind: core.FieldSelect, Options: []string{"left", "center", "right"}, Default: "center"},
			)
		}
		return []core.Panel{{Title: "Appearance", Fields: fields}}
	}

	return []core.Panel{{
		Title: "Content",
		Fields: []core.Field{
			{Key: "headline", Label: "Headline", Kind: core.FieldText, Default: ""},
			{Key: "subheadline", Label: "Subheadline", Kind: core.FieldTextarea, Default: ""},
			{Key: "ctaLabel", Label: "Button label", Kind: core.FieldText, Default: "Get started"},
			{Key: "ctaLink", Label: "Button link", Kind: core.FieldText, Default: "#"},
			{Key: "image", Label: "Image", Kind: core.FieldImage, Default: ""},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.
		WithNested("colors.background", colors.Background).
		WithNested("colors.text", colors.Text).
		WithNested("colors.accent", colors.Primary)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

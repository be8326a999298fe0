// Package mapblock implements the embedded map section. The package is
// named mapblock because "map" is not a usable Go package name.
package mapblock

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "map" }
func (Handler) Title() string { return "Map" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"address":    "",
		"embedUrl":   "",
		"zoom":       14,
		"showMarker": true,
		"height":     400,
	}
}

func (Handler) Variants() []string { return nil }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{
			Title: "Appearance",
			Fields: []core.Field{
				{Key: "zoom", Label: "Zoom level", Kind: core.FieldRange, Min: 1, Max: 20, Step: 1, Default: 14},
				{Key: "height", Label: "Height (px)", Kind: core.FieldRange, Min: 200, Max: 800, Step: 50, Default: 400},
				{Key: "showMarker", Label: "Show marker", Kind: core.FieldToggle, Default: true},
			},
		}}
	}

	return []core.Panel{{
		Title: "Location",
		Fields: []core.Field{
			{Key: "address", Label: "Address", Kind: core.FieldText, Default: ""},
			{Key: "embedUrl", Label: "Embed URL", Kind: core.FieldText, Default: ""},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

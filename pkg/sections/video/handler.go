// Package video implements the embedded video section.
package video

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "video" }
func (Handler) Title() string { return "Video" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"url":      "",
		"poster":   "",
		"autoplay": false,
		"loop":     false,
		"muted":    true,
		"colors": map[string]any{
			"background": core.DefaultColors.Background,
		},
	}
}

func (Handler) Variants() []string { return nil }
func (Handler) Tabbed() bool       { return true }

func (Handler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		fields := []core.Field{
			{Key: "autoplay", Label: "Autoplay", Kind: core.FieldToggle, Default: false},
			{Key: "loop", Label: "Loop", Kind: core.FieldToggle, Default: false},
			{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
		}
		// Browsers block unmuted autoplay, so the mute toggle only shows
		// when autoplay is off.
		if !data.Bool("autoplay", false) {
			fields = append(fields, core.Field{Key: "muted", Label: "Start muted", Kind: core.FieldToggle, Default: true})
		}
		return []core.Panel{{Title: "Playback", Fields: fields}}
	}

	return []core.Panel{{
		Title: "Video",
		Fields: []core.Field{
			{Key: "url", Label: "Video URL", Kind: core.FieldText, Default: ""},
			{Key: "poster", Label: "Poster image", Kind: core.FieldImage, Default: ""},
		},
	}}
}

func (Handler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.WithNested("colors.background", colors.Background)
}

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

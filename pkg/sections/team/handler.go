// Package team implements the team members section.
package team

import (
	"github.com/quimera-ai/quimera/pkg/core"
)

func init() {
	core.RegisterSectionPrototype(Handler{})
}

type Handler struct{}

func (Handler) Type() string  { return "team" }
func (Handler) Title() string { return "Team" }

func (Handler) Defaults() core.SectionData {
	return core.SectionData{
		"headline": "Meet the team",
		"members":  []any{},
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
			Title: "Appearance",
			Fields: []core.Field{
				{Key: "colors.background", Label: "Background", Kind: core.FieldColor, Default: core.DefaultColors.Background},
				{Key: "colors.text", Label: "Text color", Kind: core.FieldColor, Default: core.DefaultColors.Text},
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
			Title: "Members",
			List: &core.ListSpec{
				Key:          "members",
				ItemLabel:    "Member",
				ItemDefaults: map[string]any{"name": "", "role": "", "photo": "", "bio": ""},
				ItemFields: []core.Field{
					{Key: "name", Label: "Name", Kind: core.FieldText, Default: ""},
					{Key: "role", Label: "Role", Kind: core.FieldText, Default: ""},
					{Key: "photo", Label: "Photo", Kind: core.FieldImage, Default: ""},
					{Key: "bio", Label: "Bio", Kind: core.FieldTextarea, Default: ""},
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

func (Handler) Normalize(data core.SectionData) core.SectionData { return data }

package palette

import "github.com/quimera-ai/quimera/pkg/core"

// Presets are the built-in palettes offered in the side panel. Preset ids
// are stable so history dedup by id works across sessions.
var Presets = []Entry{
	preset("preset-default", "Quimera", core.DefaultColors),
	preset("preset-midnight", "Midnight", core.GlobalColors{
		Background: "#0f172a",
		Primary:    "#38bdf8",
		Secondary:  "#818cf8",
		Accent:     "#fbbf24",
		Text:       "#e2e8f0",
	}),
	preset("preset-forest", "Forest", core.GlobalColors{
		Background: "#f0fdf4",
		Primary:    "#15803d",
		Secondary:  "#65a30d",
		Accent:     "#ca8a04",
		Text:       "#14532d",
	}),
	preset("preset-coral", "Coral", core.GlobalColors{
		Background: "#fff7ed",
		Primary:    "#ea580c",
		Secondary:  "#db2777",
		Accent:     "#7c3aed",
		Text:       "#431407",
	}),
	preset("preset-mono", "Monochrome", core.GlobalColors{
		Background: "#fafafa",
		Primary:    "#171717",
		Secondary:  "#525252",
		Accent:     "#a3a3a3",
		Text:       "#0a0a0a",
	}),
}

func preset(id, name string, colors core.GlobalColors) Entry {
	return Entry{
		ID:      id,
		Name:    name,
		Colors:  colors,
		Preview: colors.Slots(),
	}
}

// PresetByID returns the preset with the given id, or false.
func PresetByID(id string) (Entry, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Entry{}, false
}

package palette

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quimera-ai/quimera/pkg/core"
)

var hexRe = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// ImportCoolors parses a coolors.co palette URL (or a bare dash-separated
// hex list) into a history entry. The first five colors map onto the slots
// in order background, primary, secondary, accent, text; shorter palettes
// repeat the last color to fill remaining slots.
func ImportCoolors(rawURL string) (Entry, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")
	if trimmed == "" {
		return Entry{}, fmt.Errorf("empty palette URL")
	}
	if idx := strings.LastIndex(trimmed, "/"); idx != -1 {
		trimmed = trimmed[idx+1:]
	}

	parts := strings.Split(trimmed, "-")
	hexes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimPrefix(p, "#")
		if !hexRe.MatchString(p) {
			return Entry{}, fmt.Errorf("invalid hex color %q in palette", p)
		}
		hexes = append(hexes, "#"+strings.ToLower(p))
	}
	if len(hexes) == 0 {
		return Entry{}, fmt.Errorf("no colors in palette URL %q", rawURL)
	}
	for len(hexes) < 5 {
		hexes = append(hexes, hexes[len(hexes)-1])
	}

	colors := core.GlobalColors{
		Background: hexes[0],
		Primary:    hexes[1],
		Secondary:  hexes[2],
		Accent:     hexes[3],
		Text:       hexes[4],
	}
	return NewEntry("Coolors import", colors), nil
}

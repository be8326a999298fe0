package cta

import (
	"testing"

	"github.com/quimera-ai/quimera/pkg/core"
)

func TestBackgroundFieldDeclaresLegacyMirror(t *testing.T) {
	panels := Handler{}.Panels(Handler{}.Defaults(), core.TabStyle)

	var found bool
	for _, p := range panels {
		for _, f := range p.Fields {
			if f.Key == "colors.background" {
				found = true
				if f.Mirror != "backgroundColor" {
					t.Errorf("mirror = %q, want backgroundColor", f.Mirror)
				}
			}
		}
	}
	if !found {
		t.Fatal("style panel missing colors.background field")
	}
}

func TestNormalizeBackfillsNestedFromLegacyKey(t *testing.T) {
	data := core.SectionData{"backgroundColor": "#abc123"}
	normalized := Handler{}.Normalize(data)

	if got := normalized.StringAt("colors.background", ""); got != "#abc123" {
		t.Errorf("colors.background = %q, want legacy value", got)
	}
}

func TestNormalizeNestedKeyWinsOnDivergence(t *testing.T) {
	data := core.SectionData{
		"backgroundColor": "#legacy",
		"colors":          map[string]any{"background": "#current"},
	}
	normalized := Handler{}.Normalize(data)

	if got := normalized.StringAt("colors.background", ""); got != "#current" {
		t.Errorf("colors.background = %q, nested key must stay authoritative", got)
	}
}

func TestGradientColorGatedByToggle(t *testing.T) {
	hidden := Handler{}.Panels(core.SectionData{}, core.TabStyle)
	if hasField(hidden, "cornerGradient.color") {
		t.Error("gradient color shown while gradient disabled")
	}

	enabled := core.SectionData{"cornerGradient": map[string]any{"enabled": true}}
	shown := Handler{}.Panels(enabled, core.TabStyle)
	if !hasField(shown, "cornerGradient.color") {
		t.Error("gradient color hidden while gradient enabled")
	}
}

func TestApplyColorsWritesBothKeys(t *testing.T) {
	colors := core.GlobalColors{Primary: "#7c3aed", Background: "#fff", Accent: "#f59e0b"}
	data := Handler{}.ApplyColors(core.SectionData{}, colors)

	if data.StringAt("colors.background", "") != "#7c3aed" {
		t.Error("nested background not written from primary slot")
	}
	if data.String("backgroundColor", "") != "#7c3aed" {
		t.Error("legacy mirror not written")
	}
}

func hasField(panels []core.Panel, key string) bool {
	for _, p := range panels {
		for _, f := range p.Fields {
			if f.Key == key {
				return true
			}
		}
	}
	return false
}

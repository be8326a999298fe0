package render

import (
	"html/template"
	"sync"

	"github.com/quimera-ai/quimera/pkg/core"
)

// SectionRenderer produces trusted HTML for one section kind. Implementations
// decide whether they can render a section (usually by type tag); the
// registry falls back to a generic renderer so an unknown section never
// breaks a published page.
type SectionRenderer interface {
	Render(section core.Section, colors core.GlobalColors) template.HTML
	CanRender(section core.Section) bool
	SectionType() string
}

var globalRenderers []SectionRenderer

// RegisterRenderer adds a renderer to the global set picked up by
// GetGlobalRegistry. Registration happens via init() in renderer files.
func RegisterRenderer(renderer SectionRenderer) {
	if renderer == nil {
		return
	}
	globalRenderers = append(globalRenderers, renderer)
}

// RendererRegistry manages SectionRenderer implementations plus a fallback
// used when no specific renderer claims a section.
type RendererRegistry struct {
	mu              sync.RWMutex
	renderers       []SectionRenderer
	defaultRenderer SectionRenderer
}

func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers:       make([]SectionRenderer, 0),
		defaultRenderer: NewDefaultRenderer(),
	}
}

// GetGlobalRegistry builds a registry snapshot from all auto-registered
// renderers.
func GetGlobalRegistry() *RendererRegistry {
	reg := NewRendererRegistry()
	for _, r := range globalRenderers {
		reg.Register(r)
	}
	return reg
}

func (r *RendererRegistry) Register(renderer SectionRenderer) {
	if renderer == nil {
		return
	}
	r.mu.Lock()
	r.renderers = append(r.renderers, renderer)
	r.mu.Unlock()
}

// Render selects the first renderer whose CanRender returns true, falling
// back to the default renderer if none match.
func (r *RendererRegistry) Render(section core.Section, colors core.GlobalColors) template.HTML {
	r.mu.RLock()
	renderers := r.renderers
	def := r.defaultRenderer
	r.mu.RUnlock()

	for _, renderer := range renderers {
		if renderer.CanRender(section) {
			return renderer.Render(section, colors)
		}
	}
	if def != nil {
		return def.Render(section, colors)
	}
	return template.HTML("<!-- no renderer available -->")
}

// SetDefaultRenderer overrides the fallback renderer.
func (r *RendererRegistry) SetDefaultRenderer(sr SectionRenderer) {
	r.mu.Lock()
	r.defaultRenderer = sr
	r.mu.Unlock()
}

// ListRendererTypes returns the section types handled by registered
// renderers, for debugging.
func (r *RendererRegistry) ListRendererTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.renderers))
	seen := make(map[string]struct{})
	for _, ren := range r.renderers {
		t := ren.SectionType()
		if t == "" {
			continue
		}
		if _, exists := seen[t]; !exists {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

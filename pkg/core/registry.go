package core

import (
	"fmt"
	"sort"
	"sync"
)

// Global registry for section type self-registration
var globalRegistry = &Registry{
	prototypes: make(map[string]SectionType),
}

// Registry holds the known section type handlers. Section type packages
// register themselves during init(); lookup is exact-match on the type tag
// with a generic fallback for unknown tags.
type Registry struct {
	prototypes map[string]SectionType
	mu         sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		prototypes: make(map[string]SectionType),
	}
}

// RegisterSectionPrototype allows section type packages to register
// themselves during init(). Later registrations for the same tag win, which
// lets tests swap in fakes.
func RegisterSectionPrototype(prototype SectionType) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.prototypes[prototype.Type()] = prototype
}

// GetGlobalRegistry returns a copy of the global registry with all
// registered section types.
func GetGlobalRegistry() *Registry {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	registry := NewRegistry()
	for name, prototype := range globalRegistry.prototypes {
		registry.prototypes[name] = prototype
	}
	return registry
}

func (r *Registry) RegisterPrototype(prototype SectionType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.prototypes[prototype.Type()]; exists {
		return fmt.Errorf("section type %s already registered", prototype.Type())
	}

	r.prototypes[prototype.Type()] = prototype
	return nil
}

// Handler returns the handler for the given type tag. Unrecognized tags get
// the generic title/content handler rather than an error: graceful
// degradation is the contract, a page must survive a section of a kind this
// build does not know.
func (r *Registry) Handler(sectionType string) SectionType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if prototype, exists := r.prototypes[sectionType]; exists {
		return prototype
	}
	return GenericHandler{}
}

// Known reports whether the type tag has a registered handler.
func (r *Registry) Known(sectionType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.prototypes[sectionType]
	return exists
}

// Types returns the registered type tags in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.prototypes))
	for name := range r.prototypes {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// NewSectionData returns the default data for the given type tag, ready to
// be attached to a freshly added section.
func (r *Registry) NewSectionData(sectionType string) SectionData {
	return r.Handler(sectionType).Defaults()
}

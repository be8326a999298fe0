package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/palette"
	"github.com/quimera-ai/quimera/pkg/realtime"
	"github.com/quimera-ai/quimera/pkg/storage"
)

// history returns the in-memory palette history for a site, loading the
// persisted entries on first access.
func (s *Server) history(siteID string, store *storage.SiteStore) (*palette.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.histories[siteID]; ok {
		return h, nil
	}
	h := palette.NewHistory()
	entries, err := store.LoadPaletteHistory()
	if err != nil {
		return nil, err
	}
	h.Restore(entries)
	s.histories[siteID] = h
	return h, nil
}

// applier assembles the per-site palette applier. The broadcast path pushes
// the palette to every section of the site: each type maps the five slots
// onto its own color keys through ApplyColors, so no section's stored
// colors go stale relative to the applied palette. The globalstyles section
// (when present) is updated in the same walk and stays the canonical record
// the renderer reads.
func (s *Server) applier(siteID string, store *storage.SiteStore, history *palette.History) *palette.Applier {
	broadcast := func(colors core.GlobalColors) error {
		pages, err := store.ListPages()
		if err != nil {
			return err
		}
		for _, page := range pages {
			sections, err := store.ListSections(page.ID)
			if err != nil {
				return err
			}
			for _, section := range sections {
				data := s.registry.Handler(section.Type).ApplyColors(section.Data, colors)
				if err := store.UpdateSectionData(section.ID, data); err != nil {
					return err
				}
			}
		}
		s.hub.Broadcast(realtime.PaletteApplied(siteID, colorsPayload(colors)))
		return nil
	}

	return palette.NewApplier(history, broadcast, nil)
}

func (s *Server) findSectionByType(store *storage.SiteStore, sectionType string) (core.Section, error) {
	pages, err := store.ListPages()
	if err != nil {
		return core.Section{}, err
	}
	for _, page := range pages {
		sections, err := store.ListSections(page.ID)
		if err != nil {
			return core.Section{}, err
		}
		for _, section := range sections {
			if section.Type == sectionType {
				return section, nil
			}
		}
	}
	return core.Section{}, fmt.Errorf("no %s section: %w", sectionType, storage.ErrNotFound)
}

func colorsPayload(colors core.GlobalColors) map[string]any {
	return map[string]any{
		"background": colors.Background,
		"primary":    colors.Primary,
		"secondary":  colors.Secondary,
		"accent":     colors.Accent,
		"text":       colors.Text,
	}
}

func (s *Server) applyEntry(w http.ResponseWriter, siteID string, entry palette.Entry) {
	store, err := s.manager.GetStore(siteID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	history, err := s.history(siteID, store)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to load palette history", err.Error())
		return
	}

	applier := s.applier(siteID, store, history)
	if err := applier.Apply(entry); err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to apply palette", err.Error())
		return
	}
	if err := store.SavePaletteHistory(history.Entries()); err != nil {
		s.logger.Errorf("persisting palette history for %s: %v", siteID, err)
	}

	s.writeJSON(w, http.StatusOK, PaletteResponse{Applied: entry, History: history.Entries()})
}

// HandleApplyPalette applies a preset (by id) or an explicit set of colors.
func (s *Server) HandleApplyPalette(w http.ResponseWriter, r *http.Request) {
	var req ApplyPaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	var entry palette.Entry
	switch {
	case req.PresetID != "":
		preset, ok := palette.PresetByID(req.PresetID)
		if !ok {
			s.writeError(w, http.StatusNotFound, "Preset not found", req.PresetID)
			return
		}
		entry = preset
	case req.Colors != nil:
		name := req.Name
		if name == "" {
			name = "Custom"
		}
		entry = palette.NewEntry(name, *req.Colors)
	default:
		s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", "either preset_id or colors is required")
		return
	}

	s.applyEntry(w, r.PathValue("site"), entry)
}

// HandleImportPalette imports a palette from a coolors.co URL and applies
// it.
func (s *Server) HandleImportPalette(w http.ResponseWriter, r *http.Request) {
	var req ImportPaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	entry, err := palette.ImportCoolors(req.URL)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, "Invalid palette URL", err.Error())
		return
	}
	s.applyEntry(w, r.PathValue("site"), entry)
}

// HandleResetPalette restores the default palette.
func (s *Server) HandleResetPalette(w http.ResponseWriter, r *http.Request) {
	preset, ok := palette.PresetByID("preset-default")
	if !ok {
		s.writeError(w, http.StatusInternalServerError, "Default preset missing", "preset-default")
		return
	}
	s.applyEntry(w, r.PathValue("site"), preset)
}

func (s *Server) HandlePaletteHistory(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")
	store, err := s.manager.GetStore(siteID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	history, err := s.history(siteID, store)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to load palette history", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, PaletteHistoryResponse{
		History: history.Entries(),
		Presets: palette.Presets,
	})
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/editor"
	"github.com/quimera-ai/quimera/pkg/news"
	"github.com/quimera-ai/quimera/pkg/realtime"
	"github.com/quimera-ai/quimera/pkg/storage"
	"github.com/quimera-ai/quimera/pkg/version"
)

func (s *Server) HandleListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := s.admin.ListSites()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to list sites", err.Error())
		return
	}

	responses := make([]SiteResponse, len(sites))
	for i, site := range sites {
		responses[i] = SiteResponse{ID: site.ID, Name: site.Name, CreatedAt: site.CreatedAt}
	}
	s.writeJSON(w, http.StatusOK, ListSitesResponse{Sites: responses, Count: len(responses)})
}

func (s *Server) HandleCreateSite(w http.ResponseWriter, r *http.Request) {
	var req CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", "site name is required")
		return
	}
	if req.ID == "" {
		req.ID = news.Slugify(req.Name)
	}

	if err := s.admin.RegisterSite(storage.SiteInfo{ID: req.ID, Name: req.Name}); err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to register site", err.Error())
		return
	}

	// Opening the store creates the database; seed a home page so the
	// editor has something to load.
	store, err := s.manager.GetStore(req.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to create site storage", err.Error())
		return
	}
	if _, err := store.GetPage("home"); errors.Is(err, storage.ErrNotFound) {
		page := core.Page{ID: uuid.NewString(), Name: "Home", Slug: "home"}
		if err := store.CreatePage(page); err != nil {
			s.writeError(w, http.StatusInternalServerError, "Failed to seed home page", err.Error())
			return
		}
	}

	s.logger.Infof("created site %s (%s)", req.ID, req.Name)
	s.writeJSON(w, http.StatusCreated, SiteResponse{ID: req.ID, Name: req.Name, CreatedAt: time.Now().UTC()})
}

func (s *Server) HandleListPages(w http.ResponseWriter, r *http.Request) {
	store, err := s.manager.GetStore(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	pages, err := store.ListPages()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to list pages", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, ListPagesResponse{Pages: pages, Count: len(pages)})
}

func (s *Server) HandleCreatePage(w http.ResponseWriter, r *http.Request) {
	var req CreatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", "page name is required")
		return
	}
	if req.Slug == "" {
		req.Slug = news.Slugify(req.Name)
	}

	store, err := s.manager.GetStore(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	page := core.Page{ID: uuid.NewString(), Name: req.Name, Slug: req.Slug}
	if err := store.CreatePage(page); err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to create page", err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, page)
}

func (s *Server) sectionResponse(section core.Section) SectionResponse {
	handler := s.registry.Handler(section.Type)
	return SectionResponse{
		ID:        section.ID,
		PageID:    section.PageID,
		Type:      section.Type,
		Title:     handler.Title(),
		Enabled:   section.Enabled,
		Order:     section.Order,
		Data:      section.Data,
		Variants:  handler.Variants(),
		Tabbed:    handler.Tabbed(),
		UpdatedAt: section.UpdatedAt,
	}
}

func (s *Server) HandleListSections(w http.ResponseWriter, r *http.Request) {
	store, err := s.manager.GetStore(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}

	page, err := store.GetPage(r.PathValue("page"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Page not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to load page", err.Error())
		return
	}

	sections, err := store.ListSections(page.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to list sections", err.Error())
		return
	}

	responses := make([]SectionResponse, len(sections))
	for i, section := range sections {
		responses[i] = s.sectionResponse(section)
	}
	s.writeJSON(w, http.StatusOK, ListSectionsResponse{
		PageID:   page.ID,
		Sections: responses,
		Count:    len(responses),
	})
}

func (s *Server) HandleAddSection(w http.ResponseWriter, r *http.Request) {
	var req AddSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Type == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", "section type is required")
		return
	}

	store, err := s.manager.GetStore(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	page, err := store.GetPage(r.PathValue("page"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Page not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to load page", err.Error())
		return
	}

	section := core.Section{
		ID:      uuid.NewString(),
		SiteID:  r.PathValue("site"),
		PageID:  page.ID,
		Type:    req.Type,
		Enabled: true,
		Order:   req.Order,
		Data:    s.registry.Handler(req.Type).Defaults(),
	}
	if err := store.AddSection(section); err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to add section", err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, s.sectionResponse(section))
}

func (s *Server) HandleGetSection(w http.ResponseWriter, r *http.Request) {
	store, err := s.manager.GetStore(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	section, err := store.GetSection(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Section not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to load section", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, s.sectionResponse(section))
}

// HandlePatchSection applies an ordered batch of edit operations to one
// section. The batch either commits as a whole or not at all; the committed
// data fans out to open previews.
func (s *Server) HandlePatchSection(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")

	var req PatchSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if len(req.Ops) == 0 {
		s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", "at least one operation is required")
		return
	}

	store, err := s.manager.GetStore(siteID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	section, err := store.GetSection(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Section not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to load section", err.Error())
		return
	}

	data, err := editor.Apply(s.registry, section, req.Ops)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, "Invalid operation", err.Error())
		return
	}
	if err := store.UpdateSectionData(section.ID, data); err != nil {
		s.logger.Errorf("committing section %s: %v", section.ID, err)
		s.writeError(w, http.StatusInternalServerError, "Failed to save section", err.Error())
		return
	}

	section.Data = data
	s.hub.Broadcast(realtime.SectionUpdated(siteID, section.ID, data))
	s.writeJSON(w, http.StatusOK, s.sectionResponse(section))
}

func (s *Server) HandleToggleSection(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")

	var req ToggleSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	store, err := s.manager.GetStore(siteID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	sectionID := r.PathValue("id")
	if err := store.SetSectionEnabled(sectionID, req.Enabled); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Section not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to toggle section", err.Error())
		return
	}

	s.hub.Broadcast(realtime.Event{
		Type:      realtime.EventSectionToggled,
		SiteID:    siteID,
		SectionID: sectionID,
		Payload:   map[string]any{"enabled": req.Enabled},
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandleDeleteSection(w http.ResponseWriter, r *http.Request) {
	store, err := s.manager.GetStore(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	if err := store.DeleteSection(r.PathValue("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Section not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to delete section", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandleReorderSections(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if len(req.IDs) == 0 {
		s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", "section id list is required")
		return
	}

	store, err := s.manager.GetStore(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	page, err := store.GetPage(r.PathValue("page"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Page not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to load page", err.Error())
		return
	}
	if err := store.ReorderSections(page.ID, req.IDs); err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to reorder sections", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSectionPanels returns the control groups for one tab of a section,
// with variant gating already applied from the current data.
func (s *Server) HandleSectionPanels(w http.ResponseWriter, r *http.Request) {
	store, err := s.manager.GetStore(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to open site", err.Error())
		return
	}
	section, err := store.GetSection(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Section not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to load section", err.Error())
		return
	}

	tab := core.Tab(r.URL.Query().Get("tab"))
	if tab != core.TabContent && tab != core.TabStyle {
		tab = core.TabContent
	}

	handler := s.registry.Handler(section.Type)
	s.writeJSON(w, http.StatusOK, PanelsResponse{
		SectionID: section.ID,
		Tab:       tab,
		Tabbed:    handler.Tabbed(),
		Panels:    handler.Panels(section.Data, tab),
	})
}

func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.manager.GetStats()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to get stats", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   version.APIVersion(),
	}
	s.writeJSON(w, http.StatusOK, health)
}

func validationMessage(err error) (string, bool) {
	var verr *news.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%s: %s", verr.Field, verr.Reason), true
	}
	return "", false
}

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/realtime"
	"github.com/quimera-ai/quimera/pkg/sections/cta"
	"github.com/quimera-ai/quimera/pkg/sections/globalstyles"
	"github.com/quimera-ai/quimera/pkg/storage"
)

type heroHandler struct{}

func (heroHandler) Type() string  { return "hero" }
func (heroHandler) Title() string { return "Hero" }
func (heroHandler) Defaults() core.SectionData {
	return core.SectionData{"title": "New headline", "variant": "split"}
}
func (heroHandler) Variants() []string { return []string{"split", "centered"} }
func (heroHandler) Tabbed() bool       { return true }
func (heroHandler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	if tab == core.TabStyle {
		return []core.Panel{{Title: "Layout", Fields: []core.Field{
			{Key: "variant", Label: "Variant", Kind: core.FieldSelect, Options: []string{"split", "centered"}},
		}}}
	}
	return []core.Panel{{Title: "Text", Fields: []core.Field{
		{Key: "title", Label: "Headline", Kind: core.FieldText},
	}}}
}
func (heroHandler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data.With("backgroundColor", colors.Background)
}
func (heroHandler) Normalize(data core.SectionData) core.SectionData { return data }

func newTestServer(t *testing.T, extra ...core.SectionType) (*Server, *httptest.Server) {
	t.Helper()

	registry := core.NewRegistry()
	if err := registry.RegisterPrototype(heroHandler{}); err != nil {
		t.Fatalf("Failed to register handler: %v", err)
	}
	for _, proto := range extra {
		if err := registry.RegisterPrototype(proto); err != nil {
			t.Fatalf("Failed to register handler: %v", err)
		}
	}

	manager := storage.NewManager(t.TempDir(), registry)
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: failed to close manager: %v", err)
		}
	})

	server := NewServer(registry, manager, Options{})
	mux := http.NewServeMux()
	server.RegisterRoutes(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return server, ts
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return out
}

func createSite(t *testing.T, ts *httptest.Server, id, name string) {
	t.Helper()
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sites", CreateSiteRequest{ID: id, Name: name})
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Failed to create site: status %d", resp.StatusCode)
	}
}

func addSection(t *testing.T, ts *httptest.Server, site, sectionType string) SectionResponse {
	t.Helper()
	resp := doJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/sites/%s/pages/home/sections", ts.URL, site),
		AddSectionRequest{Type: sectionType})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Failed to add section: status %d", resp.StatusCode)
	}
	return decode[SectionResponse](t, resp)
}

func TestHealthEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	health := decode[HealthResponse](t, resp)
	if health.Status != "ok" {
		t.Errorf("Expected status ok, got %s", health.Status)
	}
	if health.Version == "" {
		t.Error("Expected version in health response")
	}
}

func TestCreateSiteSeedsHomePage(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme Corp")

	resp, err := http.Get(ts.URL + "/api/sites/acme/pages")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	pages := decode[ListPagesResponse](t, resp)
	if pages.Count != 1 || pages.Pages[0].Slug != "home" {
		t.Errorf("Expected seeded home page, got %+v", pages)
	}

	resp, err = http.Get(ts.URL + "/api/sites")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	sites := decode[ListSitesResponse](t, resp)
	if sites.Count != 1 || sites.Sites[0].Name != "Acme Corp" {
		t.Errorf("Unexpected sites: %+v", sites)
	}
}

func TestAddSectionUsesTypeDefaults(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")

	section := addSection(t, ts, "acme", "hero")
	if section.Data.String("title", "") != "New headline" {
		t.Errorf("Expected type defaults, got %+v", section.Data)
	}
	if section.Title != "Hero" || !section.Tabbed {
		t.Errorf("Expected handler metadata in response, got %+v", section)
	}
}

func TestPatchSectionAppliesOpsAndBroadcasts(t *testing.T) {
	server, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")
	section := addSection(t, ts, "acme", "hero")

	listenerID, events := server.Hub().Register("acme")
	defer server.Hub().Unregister(listenerID)

	resp := doJSON(t, http.MethodPatch,
		fmt.Sprintf("%s/api/sites/acme/sections/%s", ts.URL, section.ID),
		map[string]any{"ops": []map[string]any{
			{"op": "set", "key": "title", "value": "Grand opening"},
			{"op": "set-nested", "path": "colors.background", "value": "#123456"},
		}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Patch failed: status %d", resp.StatusCode)
	}
	updated := decode[SectionResponse](t, resp)
	if updated.Data.String("title", "") != "Grand opening" {
		t.Errorf("Expected title updated, got %+v", updated.Data)
	}
	if updated.Data.StringAt("colors.background", "") != "#123456" {
		t.Errorf("Expected nested value set, got %+v", updated.Data)
	}

	select {
	case event := <-events:
		if event.Type != realtime.EventSectionUpdated || event.SectionID != section.ID {
			t.Errorf("Unexpected event: %+v", event)
		}
	default:
		t.Error("Expected preview event after commit")
	}

	// The change survives a reload.
	getResp, err := http.Get(fmt.Sprintf("%s/api/sites/acme/sections/%s", ts.URL, section.ID))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	loaded := decode[SectionResponse](t, getResp)
	if loaded.Data.String("title", "") != "Grand opening" {
		t.Errorf("Expected persisted title, got %+v", loaded.Data)
	}
}

func TestPatchSectionRejectsBadOps(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")
	section := addSection(t, ts, "acme", "hero")

	resp := doJSON(t, http.MethodPatch,
		fmt.Sprintf("%s/api/sites/acme/sections/%s", ts.URL, section.ID),
		map[string]any{"ops": []map[string]any{{"op": "explode"}}})
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for unknown op, got %d", resp.StatusCode)
	}
}

func TestToggleSection(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")
	section := addSection(t, ts, "acme", "hero")

	resp := doJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/sites/acme/sections/%s/toggle", ts.URL, section.ID),
		ToggleSectionRequest{Enabled: false})
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("Toggle failed: status %d", resp.StatusCode)
	}

	getResp, err := http.Get(fmt.Sprintf("%s/api/sites/acme/sections/%s", ts.URL, section.ID))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	loaded := decode[SectionResponse](t, getResp)
	if loaded.Enabled {
		t.Error("Expected section disabled")
	}
}

func TestSectionPanelsVaryByTab(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")
	section := addSection(t, ts, "acme", "hero")

	resp, err := http.Get(fmt.Sprintf("%s/api/sites/acme/sections/%s/panels?tab=style", ts.URL, section.ID))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	panels := decode[PanelsResponse](t, resp)
	if panels.Tab != core.TabStyle {
		t.Errorf("Expected style tab, got %s", panels.Tab)
	}
	if len(panels.Panels) != 1 || panels.Panels[0].Title != "Layout" {
		t.Errorf("Unexpected panels: %+v", panels.Panels)
	}
}

func TestMissingSectionIs404(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")

	resp, err := http.Get(ts.URL + "/api/sites/acme/sections/nope")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestApplyPresetPaletteRecordsHistory(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")
	addSection(t, ts, "acme", "hero")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sites/acme/palette/apply",
		ApplyPaletteRequest{PresetID: "preset-midnight"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Apply failed: status %d", resp.StatusCode)
	}
	applied := decode[PaletteResponse](t, resp)
	if applied.Applied.ID != "preset-midnight" {
		t.Errorf("Unexpected applied entry: %+v", applied.Applied)
	}
	if len(applied.History) != 1 {
		t.Errorf("Expected 1 history entry, got %d", len(applied.History))
	}

	histResp, err := http.Get(ts.URL + "/api/sites/acme/palette/history")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	hist := decode[PaletteHistoryResponse](t, histResp)
	if len(hist.History) != 1 || hist.History[0].ID != "preset-midnight" {
		t.Errorf("Unexpected history: %+v", hist.History)
	}
	if len(hist.Presets) == 0 {
		t.Error("Expected presets listed")
	}
}

func TestApplyPaletteUpdatesSections(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")
	section := addSection(t, ts, "acme", "hero")

	colors := core.GlobalColors{Background: "#0b0b0b", Primary: "#ff2266",
		Secondary: "#22ff66", Accent: "#6622ff", Text: "#fafafa"}
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sites/acme/palette/apply",
		ApplyPaletteRequest{Name: "Night", Colors: &colors})
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Apply failed: status %d", resp.StatusCode)
	}

	getResp, err := http.Get(fmt.Sprintf("%s/api/sites/acme/sections/%s", ts.URL, section.ID))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	loaded := decode[SectionResponse](t, getResp)
	if loaded.Data.String("backgroundColor", "") != "#0b0b0b" {
		t.Errorf("Expected colors mapped onto section, got %+v", loaded.Data)
	}
}

// Applying a palette must restyle every section, not just globalstyles: each
// type maps the slots onto its own keys through ApplyColors.
func TestApplyPaletteReachesEverySection(t *testing.T) {
	_, ts := newTestServer(t, globalstyles.Handler{}, cta.Handler{})
	createSite(t, ts, "acme", "Acme")
	styles := addSection(t, ts, "acme", "globalstyles")
	banner := addSection(t, ts, "acme", "cta")

	colors := core.GlobalColors{Background: "#0b0b0b", Primary: "#ff2266",
		Secondary: "#22ff66", Accent: "#6622ff", Text: "#fafafa"}
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sites/acme/palette/apply",
		ApplyPaletteRequest{Name: "Night", Colors: &colors})
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Apply failed: status %d", resp.StatusCode)
	}

	getResp, err := http.Get(fmt.Sprintf("%s/api/sites/acme/sections/%s", ts.URL, banner.ID))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	loaded := decode[SectionResponse](t, getResp)
	if got := loaded.Data.StringAt("colors.background", ""); got != "#ff2266" {
		t.Errorf("Expected cta background %q, got %q", "#ff2266", got)
	}

	getResp, err = http.Get(fmt.Sprintf("%s/api/sites/acme/sections/%s", ts.URL, styles.ID))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	loaded = decode[SectionResponse](t, getResp)
	if got := globalstyles.Colors(loaded.Data); got != colors {
		t.Errorf("Expected globalstyles to record %+v, got %+v", colors, got)
	}
}

func TestResetPalette(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")
	addSection(t, ts, "acme", "hero")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sites/acme/palette/reset", struct{}{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Reset failed: status %d", resp.StatusCode)
	}
	applied := decode[PaletteResponse](t, resp)
	if applied.Applied.Colors != core.DefaultColors {
		t.Errorf("Expected default colors, got %+v", applied.Applied.Colors)
	}
}

func TestNewsLifecycleOverHTTP(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")

	// Missing title is a validation error.
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sites/acme/news",
		core.NewsItem{Body: "no title"})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/sites/acme/news",
		core.NewsItem{Title: "First post", Body: "<p>hi</p>"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create failed: status %d", resp.StatusCode)
	}
	created := decode[core.NewsItem](t, resp)

	resp = doJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/sites/acme/news/%s/duplicate", ts.URL, created.ID), nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Duplicate failed: status %d", resp.StatusCode)
	}
	dup := decode[core.NewsItem](t, resp)
	if !strings.HasPrefix(dup.Title, "Copy of") {
		t.Errorf("Unexpected duplicate title: %s", dup.Title)
	}

	listResp, err := http.Get(ts.URL + "/api/sites/acme/news")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	list := decode[ListNewsResponse](t, listResp)
	if list.Count != 2 {
		t.Errorf("Expected 2 posts, got %d", list.Count)
	}

	resp = doJSON(t, http.MethodDelete,
		fmt.Sprintf("%s/api/sites/acme/news/%s", ts.URL, created.ID), nil)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Delete failed: status %d", resp.StatusCode)
	}
}

func TestPixelsRoundTrip(t *testing.T) {
	_, ts := newTestServer(t)

	resp := doJSON(t, http.MethodPut, ts.URL+"/api/admin/pixels",
		storage.AdPixels{MetaPixelID: "987", MetaEnabled: true})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Save failed: status %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	getResp, err := http.Get(ts.URL + "/api/admin/pixels")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	pixels := decode[storage.AdPixels](t, getResp)
	if pixels.MetaPixelID != "987" || !pixels.MetaEnabled {
		t.Errorf("Unexpected pixels: %+v", pixels)
	}
}

func TestPublicPageRendersSections(t *testing.T) {
	_, ts := newTestServer(t)
	createSite(t, ts, "acme", "Acme")
	section := addSection(t, ts, "acme", "hero")

	patchResp := doJSON(t, http.MethodPatch,
		fmt.Sprintf("%s/api/sites/acme/sections/%s", ts.URL, section.ID),
		map[string]any{"ops": []map[string]any{
			{"op": "set", "key": "title", "value": "Welcome to Acme"},
		}})
	_ = patchResp.Body.Close()

	resp, err := http.Get(ts.URL + "/s/acme/")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if !strings.Contains(buf.String(), "Welcome to Acme") {
		t.Error("Expected section content in published page")
	}
}

func TestCorsMiddleware(t *testing.T) {
	handler := CorsMiddleware([]string{"https://app.example.com"},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodOptions, "/api/sites", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" {
		t.Errorf("Expected origin allowed, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/sites", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("Expected unknown origin rejected")
	}
}

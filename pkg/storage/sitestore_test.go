package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/palette"
)

// galleryHandler migrates bare string image entries on load, the way the
// carousel type does, so tests can observe normalization happening in the
// load path.
type galleryHandler struct{}

func (galleryHandler) Type() string  { return "gallery" }
func (galleryHandler) Title() string { return "Gallery" }
func (galleryHandler) Defaults() core.SectionData {
	return core.SectionData{"images": []any{}}
}
func (galleryHandler) Variants() []string { return nil }
func (galleryHandler) Tabbed() bool       { return true }
func (galleryHandler) Panels(data core.SectionData, tab core.Tab) []core.Panel {
	return nil
}
func (galleryHandler) ApplyColors(data core.SectionData, colors core.GlobalColors) core.SectionData {
	return data
}
func (galleryHandler) Normalize(data core.SectionData) core.SectionData {
	images := data.List("images")
	migrated := false
	out := make([]any, len(images))
	for i, img := range images {
		if url, ok := img.(string); ok {
			out[i] = map[string]any{"url": url, "title": "", "subtitle": ""}
			migrated = true
			continue
		}
		out[i] = img
	}
	if !migrated {
		return data
	}
	return data.With("images", out)
}

func createTestStore(t *testing.T) *SiteStore {
	t.Helper()
	registry := core.NewRegistry()
	if err := registry.RegisterPrototype(galleryHandler{}); err != nil {
		t.Fatalf("Failed to register handler: %v", err)
	}
	store, err := NewSiteStore(filepath.Join(t.TempDir(), "site.db"), "test-site", registry)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("Warning: failed to close store: %v", err)
		}
	})
	return store
}

func TestPageRoundTrip(t *testing.T) {
	store := createTestStore(t)

	page := core.Page{ID: "page-1", Name: "Home", Slug: "home"}
	if err := store.CreatePage(page); err != nil {
		t.Fatalf("Failed to create page: %v", err)
	}

	byID, err := store.GetPage("page-1")
	if err != nil {
		t.Fatalf("Failed to get page by id: %v", err)
	}
	if byID.Name != "Home" || byID.SiteID != "test-site" {
		t.Errorf("Unexpected page: %+v", byID)
	}

	bySlug, err := store.GetPage("home")
	if err != nil {
		t.Fatalf("Failed to get page by slug: %v", err)
	}
	if bySlug.ID != "page-1" {
		t.Errorf("Expected page-1, got %s", bySlug.ID)
	}

	if _, err := store.GetPage("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSectionRoundTripNormalizesOnLoad(t *testing.T) {
	store := createTestStore(t)

	section := core.Section{
		ID:      "sec-1",
		PageID:  "page-1",
		Type:    "gallery",
		Enabled: true,
		Order:   0,
		Data: core.SectionData{
			"images": []any{
				"https://cdn.example.com/a.jpg",
				map[string]any{"url": "https://cdn.example.com/b.jpg", "title": "B", "subtitle": ""},
			},
		},
	}
	if err := store.AddSection(section); err != nil {
		t.Fatalf("Failed to add section: %v", err)
	}

	loaded, err := store.GetSection("sec-1")
	if err != nil {
		t.Fatalf("Failed to get section: %v", err)
	}
	images := loaded.Data.List("images")
	if len(images) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(images))
	}
	first, ok := images[0].(map[string]any)
	if !ok {
		t.Fatalf("Expected first image migrated to a map, got %T", images[0])
	}
	if first["url"] != "https://cdn.example.com/a.jpg" {
		t.Errorf("Unexpected migrated url: %v", first["url"])
	}
	second, ok := images[1].(map[string]any)
	if !ok || second["title"] != "B" {
		t.Errorf("Expected structured image preserved, got %v", images[1])
	}
}

func TestUpdateSectionData(t *testing.T) {
	store := createTestStore(t)

	section := core.Section{ID: "sec-1", PageID: "page-1", Type: "gallery", Enabled: true,
		Data: core.SectionData{"title": "Before"}}
	if err := store.AddSection(section); err != nil {
		t.Fatalf("Failed to add section: %v", err)
	}

	if err := store.UpdateSectionData("sec-1", core.SectionData{"title": "After"}); err != nil {
		t.Fatalf("Failed to update section: %v", err)
	}
	loaded, err := store.GetSection("sec-1")
	if err != nil {
		t.Fatalf("Failed to get section: %v", err)
	}
	if got := loaded.Data.String("title", ""); got != "After" {
		t.Errorf("Expected After, got %s", got)
	}

	if err := store.UpdateSectionData("missing", core.SectionData{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSetSectionEnabled(t *testing.T) {
	store := createTestStore(t)

	section := core.Section{ID: "sec-1", PageID: "page-1", Type: "gallery", Enabled: true,
		Data: core.SectionData{}}
	if err := store.AddSection(section); err != nil {
		t.Fatalf("Failed to add section: %v", err)
	}

	if err := store.SetSectionEnabled("sec-1", false); err != nil {
		t.Fatalf("Failed to disable section: %v", err)
	}
	loaded, err := store.GetSection("sec-1")
	if err != nil {
		t.Fatalf("Failed to get section: %v", err)
	}
	if loaded.Enabled {
		t.Error("Expected section disabled")
	}
}

func TestReorderSections(t *testing.T) {
	store := createTestStore(t)

	for i, id := range []string{"a", "b", "c"} {
		section := core.Section{ID: id, PageID: "page-1", Type: "gallery", Enabled: true,
			Order: i, Data: core.SectionData{}}
		if err := store.AddSection(section); err != nil {
			t.Fatalf("Failed to add section %s: %v", id, err)
		}
	}

	if err := store.ReorderSections("page-1", []string{"c", "a", "b"}); err != nil {
		t.Fatalf("Failed to reorder: %v", err)
	}

	sections, err := store.ListSections("page-1")
	if err != nil {
		t.Fatalf("Failed to list sections: %v", err)
	}
	var got []string
	for _, s := range sections {
		got = append(got, s.ID)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}

func TestDeleteSection(t *testing.T) {
	store := createTestStore(t)

	section := core.Section{ID: "sec-1", PageID: "page-1", Type: "gallery", Enabled: true,
		Data: core.SectionData{}}
	if err := store.AddSection(section); err != nil {
		t.Fatalf("Failed to add section: %v", err)
	}
	if err := store.DeleteSection("sec-1"); err != nil {
		t.Fatalf("Failed to delete section: %v", err)
	}
	if _, err := store.GetSection("sec-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteSection("sec-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestNewsSearch(t *testing.T) {
	store := createTestStore(t)

	now := time.Now().UTC()
	items := []core.NewsItem{
		{ID: "n1", Title: "Summer opening hours", Slug: "summer-hours", Body: "We open late in July", Status: core.NewsPublished, CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now},
		{ID: "n2", Title: "New menu", Slug: "new-menu", Body: "Fresh seasonal dishes", Status: core.NewsDraft, CreatedAt: now.Add(-1 * time.Hour), UpdatedAt: now},
		{ID: "n3", Title: "Holiday closure", Slug: "holiday", Body: "Closed over the holidays", Status: core.NewsPublished, CreatedAt: now, UpdatedAt: now},
	}
	for _, item := range items {
		if err := store.SaveNews(item); err != nil {
			t.Fatalf("Failed to save news %s: %v", item.ID, err)
		}
	}

	all, err := store.ListNews("", 0)
	if err != nil {
		t.Fatalf("Failed to list news: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(all))
	}
	if all[0].ID != "n3" {
		t.Errorf("Expected newest first, got %s", all[0].ID)
	}

	matched, err := store.ListNews("seasonal", 10)
	if err != nil {
		t.Fatalf("Failed to search news: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "n2" {
		t.Errorf("Expected only n2 to match, got %+v", matched)
	}
}

func TestNewsSaveReplacesIndex(t *testing.T) {
	store := createTestStore(t)

	now := time.Now().UTC()
	item := core.NewsItem{ID: "n1", Title: "Original title", Slug: "post", Body: "about croissants", CreatedAt: now, UpdatedAt: now}
	if err := store.SaveNews(item); err != nil {
		t.Fatalf("Failed to save news: %v", err)
	}
	item.Body = "about baguettes"
	if err := store.SaveNews(item); err != nil {
		t.Fatalf("Failed to resave news: %v", err)
	}

	stale, err := store.ListNews("croissants", 10)
	if err != nil {
		t.Fatalf("Failed to search news: %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("Expected old index entry replaced, got %d matches", len(stale))
	}
	fresh, err := store.ListNews("baguettes", 10)
	if err != nil {
		t.Fatalf("Failed to search news: %v", err)
	}
	if len(fresh) != 1 {
		t.Errorf("Expected 1 match for updated body, got %d", len(fresh))
	}
}

func TestDeleteNews(t *testing.T) {
	store := createTestStore(t)

	now := time.Now().UTC()
	item := core.NewsItem{ID: "n1", Title: "Gone soon", Slug: "gone", Body: "ephemeral", CreatedAt: now, UpdatedAt: now}
	if err := store.SaveNews(item); err != nil {
		t.Fatalf("Failed to save news: %v", err)
	}
	if err := store.DeleteNews("n1"); err != nil {
		t.Fatalf("Failed to delete news: %v", err)
	}
	if _, err := store.GetNews("n1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	matched, err := store.ListNews("ephemeral", 10)
	if err != nil {
		t.Fatalf("Failed to search news: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("Expected index cleared on delete, got %d matches", len(matched))
	}
}

func TestArticleRoundTrip(t *testing.T) {
	store := createTestStore(t)

	article := core.Article{ID: "about", Title: "About us", HTML: "<p>hello</p>", UpdatedAt: time.Now().UTC()}
	if err := store.SaveArticle(article); err != nil {
		t.Fatalf("Failed to save article: %v", err)
	}
	loaded, err := store.GetArticle("about")
	if err != nil {
		t.Fatalf("Failed to get article: %v", err)
	}
	if loaded.HTML != "<p>hello</p>" || loaded.SiteID != "test-site" {
		t.Errorf("Unexpected article: %+v", loaded)
	}
}

func TestPaletteHistoryRoundTrip(t *testing.T) {
	store := createTestStore(t)

	entries := []palette.Entry{
		palette.NewEntry("Custom", core.GlobalColors{Background: "#000000", Primary: "#ff0000", Secondary: "#00ff00", Accent: "#0000ff", Text: "#ffffff"}),
		palette.NewEntry("Quimera", core.DefaultColors),
	}
	if err := store.SavePaletteHistory(entries); err != nil {
		t.Fatalf("Failed to save history: %v", err)
	}

	loaded, err := store.LoadPaletteHistory()
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].Name != "Custom" || loaded[0].Colors.Primary != "#ff0000" {
		t.Errorf("Unexpected first entry: %+v", loaded[0])
	}
	if loaded[1].Colors != core.DefaultColors {
		t.Errorf("Unexpected second entry colors: %+v", loaded[1].Colors)
	}

	// A second save replaces rather than appends.
	if err := store.SavePaletteHistory(entries[:1]); err != nil {
		t.Fatalf("Failed to resave history: %v", err)
	}
	loaded, err = store.LoadPaletteHistory()
	if err != nil {
		t.Fatalf("Failed to reload history: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Expected history replaced, got %d entries", len(loaded))
	}
}

func TestGetStats(t *testing.T) {
	store := createTestStore(t)

	if err := store.CreatePage(core.Page{ID: "p1", Name: "Home", Slug: "home"}); err != nil {
		t.Fatalf("Failed to create page: %v", err)
	}
	section := core.Section{ID: "s1", PageID: "p1", Type: "gallery", Enabled: true, Data: core.SectionData{}}
	if err := store.AddSection(section); err != nil {
		t.Fatalf("Failed to add section: %v", err)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats["pages"] != 1 || stats["sections"] != 1 || stats["news"] != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

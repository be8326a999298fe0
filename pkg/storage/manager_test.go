package storage

import (
	"sync"
	"testing"

	"github.com/quimera-ai/quimera/pkg/core"
)

func createTestManager(t *testing.T) *Manager {
	t.Helper()
	registry := core.NewRegistry()
	if err := registry.RegisterPrototype(galleryHandler{}); err != nil {
		t.Fatalf("Failed to register handler: %v", err)
	}
	manager := NewManager(t.TempDir(), registry)
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: failed to close manager: %v", err)
		}
	})
	return manager
}

func TestManagerGetStore(t *testing.T) {
	manager := createTestManager(t)

	store1, err := manager.GetStore("acme")
	if err != nil {
		t.Fatalf("Failed to get store: %v", err)
	}
	store2, err := manager.GetStore("acme")
	if err != nil {
		t.Fatalf("Failed to get store again: %v", err)
	}
	if store1 != store2 {
		t.Error("Expected same store instance to be returned")
	}
}

func TestManagerConcurrentGetStore(t *testing.T) {
	manager := createTestManager(t)

	const goroutines = 10
	stores := make([]*SiteStore, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store, err := manager.GetStore("acme")
			if err != nil {
				t.Errorf("Failed to get store: %v", err)
				return
			}
			stores[i] = store
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if stores[i] != stores[0] {
			t.Fatal("Expected a single store instance across goroutines")
		}
	}
}

func TestManagerSites(t *testing.T) {
	manager := createTestManager(t)

	for _, site := range []string{"acme", "globex"} {
		if _, err := manager.GetStore(site); err != nil {
			t.Fatalf("Failed to get store for %s: %v", site, err)
		}
	}

	sites := manager.Sites()
	if len(sites) != 2 {
		t.Fatalf("Expected 2 sites, got %d", len(sites))
	}
}

func TestManagerGetStats(t *testing.T) {
	manager := createTestManager(t)

	store, err := manager.GetStore("acme")
	if err != nil {
		t.Fatalf("Failed to get store: %v", err)
	}
	section := core.Section{ID: "s1", PageID: "p1", Type: "gallery", Enabled: true, Data: core.SectionData{}}
	if err := store.AddSection(section); err != nil {
		t.Fatalf("Failed to add section: %v", err)
	}

	stats, err := manager.GetStats()
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats["total_sites"] != 1 {
		t.Errorf("Expected 1 site, got %v", stats["total_sites"])
	}
	if stats["total_sections"] != 1 {
		t.Errorf("Expected 1 section, got %v", stats["total_sections"])
	}
}

func TestAdminStorePixels(t *testing.T) {
	manager := createTestManager(t)

	admin, err := manager.AdminStore()
	if err != nil {
		t.Fatalf("Failed to get admin store: %v", err)
	}

	// Unset config reads back as zero values, not an error.
	pixels, err := admin.GetPixels()
	if err != nil {
		t.Fatalf("Failed to get pixels: %v", err)
	}
	if pixels.MetaPixelID != "" || pixels.MetaEnabled {
		t.Errorf("Expected empty config, got %+v", pixels)
	}

	pixels.MetaPixelID = "123456"
	pixels.MetaEnabled = true
	pixels.GoogleTagID = "G-ABCDEF"
	if err := admin.SavePixels(pixels); err != nil {
		t.Fatalf("Failed to save pixels: %v", err)
	}

	loaded, err := admin.GetPixels()
	if err != nil {
		t.Fatalf("Failed to reload pixels: %v", err)
	}
	if loaded.MetaPixelID != "123456" || !loaded.MetaEnabled {
		t.Errorf("Unexpected pixels: %+v", loaded)
	}
	if loaded.GoogleEnabled {
		t.Error("Expected Google pixel disabled")
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set on save")
	}
}

func TestAdminStoreSites(t *testing.T) {
	manager := createTestManager(t)

	admin, err := manager.AdminStore()
	if err != nil {
		t.Fatalf("Failed to get admin store: %v", err)
	}

	if err := admin.RegisterSite(SiteInfo{ID: "acme", Name: "Acme Corp"}); err != nil {
		t.Fatalf("Failed to register site: %v", err)
	}
	if err := admin.RegisterSite(SiteInfo{ID: "globex", Name: "Globex"}); err != nil {
		t.Fatalf("Failed to register site: %v", err)
	}

	sites, err := admin.ListSites()
	if err != nil {
		t.Fatalf("Failed to list sites: %v", err)
	}
	if len(sites) != 2 {
		t.Fatalf("Expected 2 sites, got %d", len(sites))
	}
	if sites[0].ID != "acme" || sites[0].Name != "Acme Corp" {
		t.Errorf("Unexpected first site: %+v", sites[0])
	}
}

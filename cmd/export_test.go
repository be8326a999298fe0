package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quimera-ai/quimera/pkg/core"
	_ "github.com/quimera-ai/quimera/pkg/sections/hero"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("storage_dir = %q\n", filepath.Join(dir, "storage"))
	if err := os.MkdirAll(filepath.Join(dir, "storage"), 0755); err != nil {
		t.Fatalf("Failed to create storage dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath
}

func seedSite(t *testing.T, configPath, siteID string) {
	t.Helper()
	if err := createSite(configPath, siteID, "Acme Corp"); err != nil {
		t.Fatalf("Failed to create site: %v", err)
	}

	_, manager, err := openEnvironment(configPath)
	if err != nil {
		t.Fatalf("Failed to open environment: %v", err)
	}
	defer closeManager(manager)

	store, err := manager.GetStore(siteID)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	section := core.Section{
		ID: "sec-1", SiteID: siteID, PageID: "home", Type: "hero",
		Enabled: true, Order: 0,
		Data:      core.SectionData{"title": "Grand opening"},
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.AddSection(section); err != nil {
		t.Fatalf("Failed to add section: %v", err)
	}
	post := core.NewsItem{
		ID: "n1", SiteID: siteID, Title: "Launch week", Slug: "launch-week",
		Body: "We are live.", Status: core.NewsPublished,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	if err := store.SaveNews(post); err != nil {
		t.Fatalf("Failed to save news: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	sourceConfig := writeTestConfig(t)
	seedSite(t, sourceConfig, "acme")

	archivePath := filepath.Join(t.TempDir(), "acme.quimera.zst")
	if err := exportSite(sourceConfig, "acme", archivePath); err != nil {
		t.Fatalf("Failed to export site: %v", err)
	}

	archive, err := readArchive(archivePath)
	if err != nil {
		t.Fatalf("Failed to read archive: %v", err)
	}
	if archive.Site != "acme" || len(archive.Pages) != 1 || len(archive.Sections) != 1 {
		t.Errorf("Unexpected archive contents: site=%s pages=%d sections=%d",
			archive.Site, len(archive.Pages), len(archive.Sections))
	}

	targetConfig := writeTestConfig(t)
	if err := importSite(targetConfig, archivePath, "acme-copy"); err != nil {
		t.Fatalf("Failed to import site: %v", err)
	}

	_, manager, err := openEnvironment(targetConfig)
	if err != nil {
		t.Fatalf("Failed to open target environment: %v", err)
	}
	defer closeManager(manager)

	store, err := manager.GetStore("acme-copy")
	if err != nil {
		t.Fatalf("Failed to open imported store: %v", err)
	}

	sections, err := store.ListSections("home")
	if err != nil {
		t.Fatalf("Failed to list sections: %v", err)
	}
	if len(sections) != 1 || sections[0].Data.String("title", "") != "Grand opening" {
		t.Errorf("Unexpected imported sections: %+v", sections)
	}

	items, err := store.ListNews("", 10)
	if err != nil {
		t.Fatalf("Failed to list news: %v", err)
	}
	if len(items) != 1 || items[0].Slug != "launch-week" {
		t.Errorf("Unexpected imported news: %+v", items)
	}

	sites, err := registeredSites(manager)
	if err != nil {
		t.Fatalf("Failed to list sites: %v", err)
	}
	if len(sites) != 1 || sites[0].ID != "acme-copy" {
		t.Errorf("Unexpected site directory: %+v", sites)
	}
}

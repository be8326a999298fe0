package news

import (
	"errors"
	"strings"
	"testing"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/storage"
)

func createTestService(t *testing.T) *Service {
	t.Helper()
	manager := storage.NewManager(t.TempDir(), core.NewRegistry())
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: failed to close manager: %v", err)
		}
	})
	return NewService(manager)
}

func TestCreateFillsDefaults(t *testing.T) {
	svc := createTestService(t)

	item, err := svc.Create("acme", core.NewsItem{Title: "Grand Opening!"})
	if err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}
	if item.ID == "" {
		t.Error("Expected generated id")
	}
	if item.Slug != "grand-opening" {
		t.Errorf("Expected slug grand-opening, got %s", item.Slug)
	}
	if item.Status != core.NewsDraft {
		t.Errorf("Expected draft status, got %s", item.Status)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	svc := createTestService(t)

	_, err := svc.Create("acme", core.NewsItem{Title: "   "})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if verr.Field != "title" {
		t.Errorf("Expected title field rejected, got %s", verr.Field)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := createTestService(t)

	_, err := svc.Create("acme", core.NewsItem{Title: "Post", Status: "pending"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

// Post bodies are markdown, so they round-trip byte for byte. Escaping
// happens at render time, not at rest.
func TestCreateStoresBodyVerbatim(t *testing.T) {
	svc := createTestService(t)

	body := "The rule is `1 < 2` and *never* 1 &lt; 2.\n\n<script>alert(\"x\")</script>"
	item, err := svc.Create("acme", core.NewsItem{Title: "Post", Body: body})
	if err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}
	if item.Body != body {
		t.Errorf("Expected body stored verbatim, got %q", item.Body)
	}

	fetched, err := svc.Get("acme", item.ID)
	if err != nil {
		t.Fatalf("Failed to fetch post: %v", err)
	}
	if fetched.Body != body {
		t.Errorf("Expected body unchanged after round trip, got %q", fetched.Body)
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	svc := createTestService(t)

	created, err := svc.Create("acme", core.NewsItem{Title: "First draft"})
	if err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	created.Title = "Final title"
	created.Status = core.NewsPublished
	updated, err := svc.Update("acme", created)
	if err != nil {
		t.Fatalf("Failed to update post: %v", err)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Expected CreatedAt preserved across update")
	}
	if updated.Status != core.NewsPublished {
		t.Errorf("Expected published status, got %s", updated.Status)
	}
}

func TestUpdateMissingPost(t *testing.T) {
	svc := createTestService(t)

	_, err := svc.Update("acme", core.NewsItem{ID: "nope", Title: "T", Status: core.NewsDraft})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDuplicate(t *testing.T) {
	svc := createTestService(t)

	original, err := svc.Create("acme", core.NewsItem{Title: "Launch week", Body: "<p>body</p>", Status: core.NewsPublished})
	if err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	dup, err := svc.Duplicate("acme", original.ID)
	if err != nil {
		t.Fatalf("Failed to duplicate post: %v", err)
	}
	if dup.ID == original.ID {
		t.Error("Expected duplicate to get its own id")
	}
	if dup.Title != "Copy of Launch week" {
		t.Errorf("Unexpected duplicate title: %s", dup.Title)
	}
	if dup.Status != core.NewsDraft {
		t.Errorf("Expected duplicate to be a draft, got %s", dup.Status)
	}
	if dup.Body != original.Body {
		t.Error("Expected body carried over")
	}

	items, err := svc.List("acme", "", 0)
	if err != nil {
		t.Fatalf("Failed to list posts: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 posts after duplicate, got %d", len(items))
	}
}

func TestPublishedFiltersDrafts(t *testing.T) {
	svc := createTestService(t)

	if _, err := svc.Create("acme", core.NewsItem{Title: "Draft post"}); err != nil {
		t.Fatalf("Failed to create draft: %v", err)
	}
	if _, err := svc.Create("acme", core.NewsItem{Title: "Live post", Status: core.NewsPublished}); err != nil {
		t.Fatalf("Failed to create published post: %v", err)
	}

	published, err := svc.Published("acme", 0)
	if err != nil {
		t.Fatalf("Failed to list published: %v", err)
	}
	if len(published) != 1 || published[0].Title != "Live post" {
		t.Errorf("Expected only the live post, got %+v", published)
	}
}

func TestSaveArticleSanitizes(t *testing.T) {
	svc := createTestService(t)

	article, err := svc.SaveArticle("acme", core.Article{
		Title: "About us",
		HTML:  `<h2>Team</h2><img src=x onerror="alert(1)">`,
	})
	if err != nil {
		t.Fatalf("Failed to save article: %v", err)
	}
	if strings.Contains(article.HTML, "onerror") {
		t.Errorf("Expected event handler stripped, got %q", article.HTML)
	}

	loaded, err := svc.GetArticle("acme", article.ID)
	if err != nil {
		t.Fatalf("Failed to load article: %v", err)
	}
	if loaded.Title != "About us" {
		t.Errorf("Unexpected article: %+v", loaded)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Grand Opening!", "grand-opening"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"Ünïcödé & symbols", "n-c-d-symbols"},
		{"already-slugged", "already-slugged"},
		{"2024 Review", "2024-review"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

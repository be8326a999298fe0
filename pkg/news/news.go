// Package news implements the editorial workflow behind the blog module:
// post CRUD with draft/published/archived states, duplication, and the
// static one-off articles (about, legal) that share the same storage.
package news

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/log"
	"github.com/quimera-ai/quimera/pkg/storage"
)

// ValidationError reports a rejected field. API handlers map it to 422.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Service runs the editorial operations for all sites. Post bodies are
// markdown and stored verbatim; the renderer sanitizes the converted HTML
// on the way out. Article bodies are raw HTML and get sanitized before
// they are stored.
type Service struct {
	manager   *storage.Manager
	sanitizer *bluemonday.Policy
	logger    *log.Logger
}

func NewService(manager *storage.Manager) *Service {
	return &Service{
		manager:   manager,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    log.ForService("news"),
	}
}

// Create stores a new post. Missing ids and slugs are generated, the status
// defaults to draft, and an empty title is rejected.
func (s *Service) Create(siteID string, item core.NewsItem) (core.NewsItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return core.NewsItem{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Slug == "" {
		item.Slug = Slugify(item.Title)
	}
	if item.Status == "" {
		item.Status = core.NewsDraft
	}
	if !validStatus(item.Status) {
		return core.NewsItem{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", item.Status)}
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	store, err := s.manager.GetStore(siteID)
	if err != nil {
		return core.NewsItem{}, err
	}
	if err := store.SaveNews(item); err != nil {
		return core.NewsItem{}, err
	}
	s.logger.Debugf("created post %s (%s) for site %s", item.ID, item.Slug, siteID)
	return item, nil
}

// Update overwrites an existing post, keeping its creation time.
func (s *Service) Update(siteID string, item core.NewsItem) (core.NewsItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return core.NewsItem{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !validStatus(item.Status) {
		return core.NewsItem{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", item.Status)}
	}

	store, err := s.manager.GetStore(siteID)
	if err != nil {
		return core.NewsItem{}, err
	}
	existing, err := store.GetNews(item.ID)
	if err != nil {
		return core.NewsItem{}, err
	}

	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	if item.Slug == "" {
		item.Slug = existing.Slug
	}

	if err := store.SaveNews(item); err != nil {
		return core.NewsItem{}, err
	}
	return item, nil
}

func (s *Service) Get(siteID, id string) (core.NewsItem, error) {
	store, err := s.manager.GetStore(siteID)
	if err != nil {
		return core.NewsItem{}, err
	}
	return store.GetNews(id)
}

// List returns posts newest first, optionally narrowed by a full-text
// query.
func (s *Service) List(siteID, query string, limit int) ([]core.NewsItem, error) {
	store, err := s.manager.GetStore(siteID)
	if err != nil {
		return nil, err
	}
	return store.ListNews(query, limit)
}

// Published returns only live posts, for the public blog pages.
func (s *Service) Published(siteID string, limit int) ([]core.NewsItem, error) {
	items, err := s.List(siteID, "", limit)
	if err != nil {
		return nil, err
	}
	published := items[:0]
	for _, item := range items {
		if item.Status == core.NewsPublished {
			published = append(published, item)
		}
	}
	return published, nil
}

func (s *Service) Delete(siteID, id string) error {
	store, err := s.manager.GetStore(siteID)
	if err != nil {
		return err
	}
	return store.DeleteNews(id)
}

// Duplicate copies an existing post into a fresh draft. The copy gets its
// own id and slug and a "Copy of" title so it is findable in the list.
func (s *Service) Duplicate(siteID, id string) (core.NewsItem, error) {
	store, err := s.manager.GetStore(siteID)
	if err != nil {
		return core.NewsItem{}, err
	}
	original, err := store.GetNews(id)
	if err != nil {
		return core.NewsItem{}, err
	}

	dup := original
	dup.ID = uuid.NewString()
	dup.Title = "Copy of " + original.Title
	dup.Slug = Slugify(dup.Title)
	dup.Status = core.NewsDraft
	now := time.Now().UTC()
	dup.CreatedAt = now
	dup.UpdatedAt = now

	if err := store.SaveNews(dup); err != nil {
		return core.NewsItem{}, err
	}
	s.logger.Debugf("duplicated post %s into %s for site %s", id, dup.ID, siteID)
	return dup, nil
}

// SaveArticle stores a standalone page article. The HTML is sanitized, not
// rejected: unknown markup is dropped silently.
func (s *Service) SaveArticle(siteID string, article core.Article) (core.Article, error) {
	if strings.TrimSpace(article.Title) == "" {
		return core.Article{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	article.HTML = s.sanitizer.Sanitize(article.HTML)
	article.UpdatedAt = time.Now().UTC()

	store, err := s.manager.GetStore(siteID)
	if err != nil {
		return core.Article{}, err
	}
	if err := store.SaveArticle(article); err != nil {
		return core.Article{}, err
	}
	return article, nil
}

func (s *Service) GetArticle(siteID, id string) (core.Article, error) {
	store, err := s.manager.GetStore(siteID)
	if err != nil {
		return core.Article{}, err
	}
	return store.GetArticle(id)
}

func validStatus(status string) bool {
	switch status {
	case core.NewsDraft, core.NewsPublished, core.NewsArchived:
		return true
	}
	return false
}

// Slugify turns a title into a URL-safe slug: lowercase, alphanumerics
// kept, everything else collapsed to single dashes.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

package core

import "time"

// News statuses. The workflow is linear: drafts get published, published
// items get archived. Any status can be deleted.
const (
	NewsDraft     = "draft"
	NewsPublished = "published"
	NewsArchived  = "archived"
)

// NewsItem is one news/blog record. The full schema is owned by the news
// service; the editor is a form front-end over it.
type NewsItem struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"` // markdown
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Targeting string    `json:"targeting"`
	SEOTitle  string    `json:"seo_title"`
	SEODesc   string    `json:"seo_description"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Article is an in-app rich-text article. The body arrives from the editor
// as HTML and is sanitized before storage.
type Article struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Title     string    `json:"title"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page is an ordered collection of sections.
type Page struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/palette"
)

// ErrNotFound is returned when a record does not exist. API handlers map it
// to 404.
var ErrNotFound = errors.New("not found")

// SiteStore persists one site's content in its own SQLite database file:
// pages, sections, news, articles and the palette history. Section data is
// stored as JSON and normalized through the type registry on load.
type SiteStore struct {
	db       *sql.DB
	siteID   string
	registry *core.Registry
}

func NewSiteStore(dbPath, siteID string, registry *core.Registry) (*SiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Apply performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
		"PRAGMA cache_size = -64000", // 64MB cache
		"PRAGMA temp_store = memory",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	s := &SiteStore{db: db, siteID: siteID, registry: registry}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initializing schema for %s: %w", siteID, err)
	}
	return s, nil
}

func (s *SiteStore) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id TEXT PRIMARY KEY,
			page_id TEXT NOT NULL,
			type TEXT NOT NULL,
			enabled INTEGER NOT NULL DEFAULT 1,
			position INTEGER NOT NULL,
			data TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_page ON sections(page_id, position)`,
		`CREATE TABLE IF NOT EXISTS news (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT NOT NULL,
			body TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'draft',
			targeting TEXT NOT NULL DEFAULT '',
			seo_title TEXT NOT NULL DEFAULT '',
			seo_description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS news_fts USING fts5(
			id UNINDEXED, title, body, category
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			html TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS palette_history (
			position INTEGER PRIMARY KEY,
			entry TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SiteStore) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection for maintenance tasks.
func (s *SiteStore) GetDB() *sql.DB {
	return s.db
}

// Optimize runs SQLite maintenance on the site database.
func (s *SiteStore) Optimize() error {
	if _, err := s.db.Exec("PRAGMA optimize"); err != nil {
		return fmt.Errorf("optimizing %s: %w", s.siteID, err)
	}
	return nil
}

// Pages

func (s *SiteStore) CreatePage(page core.Page) error {
	if page.CreatedAt.IsZero() {
		page.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO pages (id, name, slug, created_at) VALUES (?, ?, ?, ?)`,
		page.ID, page.Name, page.Slug, page.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating page %s: %w", page.ID, err)
	}
	return nil
}

func (s *SiteStore) GetPage(id string) (core.Page, error) {
	row := s.db.QueryRow(`SELECT id, name, slug, created_at FROM pages WHERE id = ? OR slug = ?`, id, id)
	var p core.Page
	if err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Page{}, fmt.Errorf("page %s: %w", id, ErrNotFound)
		}
		return core.Page{}, fmt.Errorf("loading page %s: %w", id, err)
	}
	p.SiteID = s.siteID
	return p, nil
}

func (s *SiteStore) ListPages() ([]core.Page, error) {
	rows, err := s.db.Query(`SELECT id, name, slug, created_at FROM pages ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pages []core.Page
	for rows.Next() {
		var p core.Page
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		p.SiteID = s.siteID
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// Sections

func (s *SiteStore) AddSection(section core.Section) error {
	dataJSON, err := json.Marshal(section.Data)
	if err != nil {
		return fmt.Errorf("marshaling data for section %s: %w", section.ID, err)
	}
	if section.UpdatedAt.IsZero() {
		section.UpdatedAt = time.Now().UTC()
	}
	_, err = s.db.Exec(
		`INSERT INTO sections (id, page_id, type, enabled, position, data, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		section.ID, section.PageID, section.Type, section.Enabled, section.Order, string(dataJSON), section.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting section %s: %w", section.ID, err)
	}
	return nil
}

// GetSection loads one section. Legacy data shapes are migrated through the
// type handler's Normalize exactly here, so callers never see the old shape.
func (s *SiteStore) GetSection(id string) (core.Section, error) {
	row := s.db.QueryRow(
		`SELECT id, page_id, type, enabled, position, data, updated_at FROM sections WHERE id = ?`, id)
	return s.scanSection(row)
}

// ListSections returns a page's sections in display order, normalized.
func (s *SiteStore) ListSections(pageID string) ([]core.Section, error) {
	rows, err := s.db.Query(
		`SELECT id, page_id, type, enabled, position, data, updated_at
		 FROM sections WHERE page_id = ? ORDER BY position`, pageID)
	if err != nil {
		return nil, fmt.Errorf("listing sections for page %s: %w", pageID, err)
	}
	defer func() { _ = rows.Close() }()

	var sections []core.Section
	for rows.Next() {
		section, err := s.scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SiteStore) scanSection(row rowScanner) (core.Section, error) {
	var section core.Section
	var dataJSON string
	err := row.Scan(&section.ID, &section.PageID, &section.Type, &section.Enabled,
		&section.Order, &dataJSON, &section.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Section{}, fmt.Errorf("section: %w", ErrNotFound)
		}
		return core.Section{}, fmt.Errorf("scanning section: %w", err)
	}
	section.SiteID = s.siteID

	var data core.SectionData
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return core.Section{}, fmt.Errorf("decoding data for section %s: %w", section.ID, err)
	}
	if s.registry != nil {
		data = s.registry.Handler(section.Type).Normalize(data)
	}
	section.Data = data
	return section, nil
}

// UpdateSectionData commits a full replacement of a section's data object.
func (s *SiteStore) UpdateSectionData(id string, data core.SectionData) error {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling data for section %s: %w", id, err)
	}
	res, err := s.db.Exec(
		`UPDATE sections SET data = ?, updated_at = ? WHERE id = ?`,
		string(dataJSON), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating section %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("section %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetSectionEnabled toggles a section's visibility without touching data.
func (s *SiteStore) SetSectionEnabled(id string, enabled bool) error {
	res, err := s.db.Exec(
		`UPDATE sections SET enabled = ?, updated_at = ? WHERE id = ?`,
		enabled, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("toggling section %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("section %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SiteStore) DeleteSection(id string) error {
	res, err := s.db.Exec(`DELETE FROM sections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting section %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("section %s: %w", id, ErrNotFound)
	}
	return nil
}

// ReorderSections rewrites the positions of a page's sections to match the
// given id order. Ids not listed keep their relative order after the listed
// ones.
func (s *SiteStore) ReorderSections(pageID string, ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i, id := range ids {
		if _, err := tx.Exec(
			`UPDATE sections SET position = ? WHERE id = ? AND page_id = ?`, i, id, pageID); err != nil {
			return fmt.Errorf("reordering section %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}
	committed = true
	return nil
}

// News

func (s *SiteStore) SaveNews(item core.NewsItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(
		`INSERT OR REPLACE INTO news
		 (id, title, slug, body, category, status, targeting, seo_title, seo_description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Slug, item.Body, item.Category, item.Status,
		item.Targeting, item.SEOTitle, item.SEODesc, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving news %s: %w", item.ID, err)
	}

	if _, err := tx.Exec(`DELETE FROM news_fts WHERE id = ?`, item.ID); err != nil {
		return fmt.Errorf("clearing news index for %s: %w", item.ID, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO news_fts (id, title, body, category) VALUES (?, ?, ?, ?)`,
		item.ID, item.Title, item.Body, item.Category,
	); err != nil {
		return fmt.Errorf("indexing news %s: %w", item.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing news %s: %w", item.ID, err)
	}
	committed = true
	return nil
}

func (s *SiteStore) GetNews(id string) (core.NewsItem, error) {
	row := s.db.QueryRow(
		`SELECT id, title, slug, body, category, status, targeting, seo_title, seo_description, created_at, updated_at
		 FROM news WHERE id = ? OR slug = ?`, id, id)
	return s.scanNews(row)
}

// ListNews returns the site's news, newest first. A non-empty query narrows
// the result through the full-text index.
func (s *SiteStore) ListNews(query string, limit int) ([]core.NewsItem, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows *sql.Rows
	var err error
	if query == "" {
		rows, err = s.db.Query(
			`SELECT id, title, slug, body, category, status, targeting, seo_title, seo_description, created_at, updated_at
			 FROM news ORDER BY created_at DESC LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(
			`SELECT n.id, n.title, n.slug, n.body, n.category, n.status, n.targeting, n.seo_title, n.seo_description, n.created_at, n.updated_at
			 FROM news n JOIN news_fts f ON n.id = f.id
			 WHERE news_fts MATCH ? ORDER BY n.created_at DESC LIMIT ?`, escapeFTS5Query(query), limit)
	}
	if err != nil {
		return nil, fmt.Errorf("listing news: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []core.NewsItem
	for rows.Next() {
		item, err := s.scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SiteStore) scanNews(row rowScanner) (core.NewsItem, error) {
	var item core.NewsItem
	err := row.Scan(&item.ID, &item.Title, &item.Slug, &item.Body, &item.Category,
		&item.Status, &item.Targeting, &item.SEOTitle, &item.SEODesc,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.NewsItem{}, fmt.Errorf("news item: %w", ErrNotFound)
		}
		return core.NewsItem{}, fmt.Errorf("scanning news: %w", err)
	}
	item.SiteID = s.siteID
	return item, nil
}

func (s *SiteStore) DeleteNews(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.Exec(`DELETE FROM news WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting news %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("news %s: %w", id, ErrNotFound)
	}
	if _, err := tx.Exec(`DELETE FROM news_fts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("removing news index for %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete of %s: %w", id, err)
	}
	committed = true
	return nil
}

// Articles

func (s *SiteStore) SaveArticle(article core.Article) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO articles (id, title, html, updated_at) VALUES (?, ?, ?, ?)`,
		article.ID, article.Title, article.HTML, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving article %s: %w", article.ID, err)
	}
	return nil
}

func (s *SiteStore) GetArticle(id string) (core.Article, error) {
	row := s.db.QueryRow(`SELECT id, title, html, updated_at FROM articles WHERE id = ?`, id)
	var a core.Article
	if err := row.Scan(&a.ID, &a.Title, &a.HTML, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Article{}, fmt.Errorf("article %s: %w", id, ErrNotFound)
		}
		return core.Article{}, fmt.Errorf("loading article %s: %w", id, err)
	}
	a.SiteID = s.siteID
	return a, nil
}

func (s *SiteStore) ListArticles() ([]core.Article, error) {
	rows, err := s.db.Query(`SELECT id, title, html, updated_at FROM articles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var articles []core.Article
	for rows.Next() {
		var a core.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.HTML, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		a.SiteID = s.siteID
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Palette history

// SavePaletteHistory replaces the stored history wholesale. The history is
// small (capped at 10) so a full rewrite keeps ordering trivially correct.
func (s *SiteStore) SavePaletteHistory(entries []palette.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(`DELETE FROM palette_history`); err != nil {
		return fmt.Errorf("clearing palette history: %w", err)
	}
	for i, entry := range entries {
		entryJSON, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshaling palette entry %s: %w", entry.ID, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO palette_history (position, entry) VALUES (?, ?)`, i, string(entryJSON)); err != nil {
			return fmt.Errorf("saving palette entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing palette history: %w", err)
	}
	committed = true
	return nil
}

func (s *SiteStore) LoadPaletteHistory() ([]palette.Entry, error) {
	rows, err := s.db.Query(`SELECT entry FROM palette_history ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("loading palette history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []palette.Entry
	for rows.Next() {
		var entryJSON string
		if err := rows.Scan(&entryJSON); err != nil {
			return nil, fmt.Errorf("scanning palette entry: %w", err)
		}
		var entry palette.Entry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("decoding palette entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func escapeFTS5Query(query string) string {
	// The query is bound with MATCH ?, so injection is already prevented by
	// SQLite's parameter binding; passing it through keeps full FTS5 syntax
	// available to callers.
	return query
}

// GetStats returns per-site content counts.
func (s *SiteStore) GetStats() (map[string]any, error) {
	stats := make(map[string]any)
	counts := map[string]string{
		"pages":    `SELECT COUNT(*) FROM pages`,
		"sections": `SELECT COUNT(*) FROM sections`,
		"news":     `SELECT COUNT(*) FROM news`,
		"articles": `SELECT COUNT(*) FROM articles`,
	}
	for name, q := range counts {
		var n int
		if err := s.db.QueryRow(q).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", name, err)
		}
		stats[name] = n
	}
	return stats, nil
}

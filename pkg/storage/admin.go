package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// AdPixels is the super-admin tracking pixel configuration applied to every
// published site. A single row; providers are enabled individually.
type AdPixels struct {
	MetaPixelID     string    `json:"meta_pixel_id"`
	MetaEnabled     bool      `json:"meta_enabled"`
	GoogleTagID     string    `json:"google_tag_id"`
	GoogleEnabled   bool      `json:"google_enabled"`
	TikTokPixelID   string    `json:"tiktok_pixel_id"`
	TikTokEnabled   bool      `json:"tiktok_enabled"`
	LinkedInTagID   string    `json:"linkedin_tag_id"`
	LinkedInEnabled bool      `json:"linkedin_enabled"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SiteInfo is one entry of the platform's site directory.
type SiteInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminStore persists platform-wide super-admin data in its own database,
// separate from any site's content.
type AdminStore struct {
	db *sql.DB
}

func NewAdminStore(dbPath string) (*AdminStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening admin database: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 30000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pixels (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			meta_pixel_id TEXT NOT NULL DEFAULT '',
			meta_enabled INTEGER NOT NULL DEFAULT 0,
			google_tag_id TEXT NOT NULL DEFAULT '',
			google_enabled INTEGER NOT NULL DEFAULT 0,
			tiktok_pixel_id TEXT NOT NULL DEFAULT '',
			tiktok_enabled INTEGER NOT NULL DEFAULT 0,
			linkedin_tag_id TEXT NOT NULL DEFAULT '',
			linkedin_enabled INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sites (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("initializing admin schema: %w", err)
		}
	}

	return &AdminStore{db: db}, nil
}

func (a *AdminStore) Close() error {
	return a.db.Close()
}

// SavePixels upserts the singleton pixel configuration.
func (a *AdminStore) SavePixels(p AdPixels) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	_, err := a.db.Exec(
		`INSERT OR REPLACE INTO pixels
		 (id, meta_pixel_id, meta_enabled, google_tag_id, google_enabled,
		  tiktok_pixel_id, tiktok_enabled, linkedin_tag_id, linkedin_enabled, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.MetaPixelID, p.MetaEnabled, p.GoogleTagID, p.GoogleEnabled,
		p.TikTokPixelID, p.TikTokEnabled, p.LinkedInTagID, p.LinkedInEnabled, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving pixels: %w", err)
	}
	return nil
}

// GetPixels returns the pixel configuration, or zero values when none has
// been saved yet.
func (a *AdminStore) GetPixels() (AdPixels, error) {
	row := a.db.QueryRow(
		`SELECT meta_pixel_id, meta_enabled, google_tag_id, google_enabled,
		        tiktok_pixel_id, tiktok_enabled, linkedin_tag_id, linkedin_enabled, updated_at
		 FROM pixels WHERE id = 1`)
	var p AdPixels
	err := row.Scan(&p.MetaPixelID, &p.MetaEnabled, &p.GoogleTagID, &p.GoogleEnabled,
		&p.TikTokPixelID, &p.TikTokEnabled, &p.LinkedInTagID, &p.LinkedInEnabled, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return AdPixels{}, nil
	}
	if err != nil {
		return AdPixels{}, fmt.Errorf("loading pixels: %w", err)
	}
	return p, nil
}

// RegisterSite records a site in the platform directory.
func (a *AdminStore) RegisterSite(info SiteInfo) error {
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}
	_, err := a.db.Exec(
		`INSERT OR REPLACE INTO sites (id, name, created_at) VALUES (?, ?, ?)`,
		info.ID, info.Name, info.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("registering site %s: %w", info.ID, err)
	}
	return nil
}

// ListSites returns the platform's site directory.
func (a *AdminStore) ListSites() ([]SiteInfo, error) {
	rows, err := a.db.Query(`SELECT id, name, created_at FROM sites ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sites []SiteInfo
	for rows.Next() {
		var info SiteInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning site: %w", err)
		}
		sites = append(sites, info)
	}
	return sites, rows.Err()
}

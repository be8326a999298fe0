package api

import (
	"time"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/editor"
	"github.com/quimera-ai/quimera/pkg/palette"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type SiteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ListSitesResponse struct {
	Sites []SiteResponse `json:"sites"`
	Count int            `json:"count"`
}

type CreateSiteRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreatePageRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ListPagesResponse struct {
	Pages []core.Page `json:"pages"`
	Count int         `json:"count"`
}

type SectionResponse struct {
	ID        string           `json:"id"`
	PageID    string           `json:"page_id"`
	Type      string           `json:"type"`
	Title     string           `json:"title"`
	Enabled   bool             `json:"enabled"`
	Order     int              `json:"order"`
	Data      core.SectionData `json:"data"`
	Variants  []string         `json:"variants,omitempty"`
	Tabbed    bool             `json:"tabbed"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type ListSectionsResponse struct {
	PageID   string            `json:"page_id"`
	Sections []SectionResponse `json:"sections"`
	Count    int               `json:"count"`
}

type AddSectionRequest struct {
	Type  string `json:"type"`
	Order int    `json:"order"`
}

type PatchSectionRequest struct {
	Ops []editor.Op `json:"ops"`
}

type PanelsResponse struct {
	SectionID string       `json:"section_id"`
	Tab       core.Tab     `json:"tab"`
	Tabbed    bool         `json:"tabbed"`
	Panels    []core.Panel `json:"panels"`
}

type ToggleSectionRequest struct {
	Enabled bool `json:"enabled"`
}

type ReorderRequest struct {
	IDs []string `json:"ids"`
}

type ApplyPaletteRequest struct {
	PresetID string             `json:"preset_id,omitempty"`
	Name     string             `json:"name,omitempty"`
	Colors   *core.GlobalColors `json:"colors,omitempty"`
}

type ImportPaletteRequest struct {
	URL string `json:"url"`
}

type PaletteResponse struct {
	Applied palette.Entry   `json:"applied"`
	History []palette.Entry `json:"history"`
}

type PaletteHistoryResponse struct {
	History []palette.Entry `json:"history"`
	Presets []palette.Entry `json:"presets"`
}

type ListNewsResponse struct {
	Items []core.NewsItem `json:"items"`
	Count int             `json:"count"`
	Query string          `json:"query,omitempty"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateImageResponse struct {
	URL string `json:"url"`
}

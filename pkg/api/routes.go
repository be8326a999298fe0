package api

import (
	"net/http"
)

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Site and page management
	mux.HandleFunc("GET /api/sites", s.HandleListSites)
	mux.HandleFunc("POST /api/sites", s.HandleCreateSite)
	mux.HandleFunc("GET /api/sites/{site}/pages", s.HandleListPages)
	mux.HandleFunc("POST /api/sites/{site}/pages", s.HandleCreatePage)

	// Section editing
	mux.HandleFunc("GET /api/sites/{site}/pages/{page}/sections", s.HandleListSections)
	mux.HandleFunc("POST /api/sites/{site}/pages/{page}/sections", s.HandleAddSection)
	mux.HandleFunc("PUT /api/sites/{site}/pages/{page}/order", s.HandleReorderSections)
	mux.HandleFunc("GET /api/sites/{site}/sections/{id}", s.HandleGetSection)
	mux.HandleFunc("PATCH /api/sites/{site}/sections/{id}", s.HandlePatchSection)
	mux.HandleFunc("POST /api/sites/{site}/sections/{id}/toggle", s.HandleToggleSection)
	mux.HandleFunc("DELETE /api/sites/{site}/sections/{id}", s.HandleDeleteSection)
	mux.HandleFunc("GET /api/sites/{site}/sections/{id}/panels", s.HandleSectionPanels)

	// Palette
	mux.HandleFunc("POST /api/sites/{site}/palette/apply", s.HandleApplyPalette)
	mux.HandleFunc("POST /api/sites/{site}/palette/import", s.HandleImportPalette)
	mux.HandleFunc("POST /api/sites/{site}/palette/reset", s.HandleResetPalette)
	mux.HandleFunc("GET /api/sites/{site}/palette/history", s.HandlePaletteHistory)

	// News and articles
	mux.HandleFunc("GET /api/sites/{site}/news", s.HandleListNews)
	mux.HandleFunc("POST /api/sites/{site}/news", s.HandleCreateNews)
	mux.HandleFunc("GET /api/sites/{site}/news/{id}", s.HandleGetNews)
	mux.HandleFunc("PUT /api/sites/{site}/news/{id}", s.HandleUpdateNews)
	mux.HandleFunc("DELETE /api/sites/{site}/news/{id}", s.HandleDeleteNews)
	mux.HandleFunc("POST /api/sites/{site}/news/{id}/duplicate", s.HandleDuplicateNews)
	mux.HandleFunc("GET /api/sites/{site}/articles/{id}", s.HandleGetArticle)
	mux.HandleFunc("PUT /api/sites/{site}/articles/{id}", s.HandleSaveArticle)

	// Super-admin
	mux.HandleFunc("GET /api/admin/pixels", s.HandleGetPixels)
	mux.HandleFunc("PUT /api/admin/pixels", s.HandleSavePixels)

	// Media library
	mux.HandleFunc("GET /api/sites/{site}/media", s.HandleListMedia)
	mux.HandleFunc("POST /api/sites/{site}/media", s.HandleUploadMedia)
	mux.HandleFunc("POST /api/sites/{site}/media/generate", s.HandleGenerateImage)
	mux.HandleFunc("GET /media/{site}/{file}", s.HandleServeMedia)

	// Client portal
	mux.HandleFunc("GET /portal/login", s.HandlePortalLogin)
	mux.HandleFunc("GET /portal/callback", s.HandlePortalCallback)
	mux.HandleFunc("POST /portal/logout", s.HandlePortalLogout)
	mux.HandleFunc("GET /api/portal/me", s.HandlePortalMe)

	// Live preview
	mux.HandleFunc("GET /ws/preview/{site}", s.HandlePreviewSocket)

	// Published pages
	mux.HandleFunc("GET /s/{site}/blog", s.HandlePublicBlogIndex)
	mux.HandleFunc("GET /s/{site}/blog/{slug}", s.HandlePublicBlogPost)
	mux.HandleFunc("GET /s/{site}/", s.HandlePublicPage)
	mux.HandleFunc("GET /s/{site}/{page}", s.HandlePublicPage)

	mux.HandleFunc("GET /api/stats", s.HandleStats)
	mux.HandleFunc("GET /health", s.HandleHealth)
}

package api

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/storage"
)

// pixelSnippets renders the enabled global tracking pixels as head snippets
// for published pages.
func (s *Server) pixelSnippets() []string {
	pixels, err := s.admin.GetPixels()
	if err != nil {
		s.logger.Warnf("loading pixels: %v", err)
		return nil
	}

	var snippets []string
	if pixels.MetaEnabled {
		snippets = append(snippets, fmt.Sprintf(
			`<script>!function(f,b,e,v,n,t,s){if(f.fbq)return;n=f.fbq=function(){n.callMethod?n.callMethod.apply(n,arguments):n.queue.push(arguments)};if(!f._fbq)f._fbq=n;n.push=n;n.loaded=!0;n.version='2.0';n.queue=[];t=b.createElement(e);t.async=!0;t.src=v;s=b.getElementsByTagName(e)[0];s.parentNode.insertBefore(t,s)}(window,document,'script','https://connect.facebook.net/en_US/fbevents.js');fbq('init','%s');fbq('track','PageView');</script>`,
			template.JSEscapeString(pixels.MetaPixelID)))
	}
	if pixels.GoogleEnabled {
		snippets = append(snippets, fmt.Sprintf(
			`<script async src="https://www.googletagmanager.com/gtag/js?id=%[1]s"></script><script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','%[1]s');</script>`,
			template.JSEscapeString(pixels.GoogleTagID)))
	}
	if pixels.TikTokEnabled {
		snippets = append(snippets, fmt.Sprintf(
			`<script>!function(w,d,t){w.TiktokAnalyticsObject=t;var ttq=w[t]=w[t]||[];ttq.load('%s');ttq.page();}(window,document,'ttq');</script>`,
			template.JSEscapeString(pixels.TikTokPixelID)))
	}
	if pixels.LinkedInEnabled {
		snippets = append(snippets, fmt.Sprintf(
			`<script>_linkedin_partner_id="%s";window._linkedin_data_partner_ids=window._linkedin_data_partner_ids||[];window._linkedin_data_partner_ids.push(_linkedin_partner_id);</script>`,
			template.JSEscapeString(pixels.LinkedInTagID)))
	}
	return snippets
}

// HandlePublicPage serves a published page assembled from its stored
// sections. The page path value defaults to the home page.
func (s *Server) HandlePublicPage(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")
	pageRef := r.PathValue("page")
	if pageRef == "" {
		pageRef = "home"
	}

	store, err := s.manager.GetStore(siteID)
	if err != nil {
		http.Error(w, "site unavailable", http.StatusInternalServerError)
		return
	}
	page, err := store.GetPage(pageRef)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}
	sections, err := store.ListSections(page.ID)
	if err != nil {
		http.Error(w, "failed to load sections", http.StatusInternalServerError)
		return
	}

	html, err := s.renderer.RenderPage(page.Name, sections, s.pixelSnippets())
	if err != nil {
		s.logger.Errorf("rendering page %s/%s: %v", siteID, page.Slug, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) HandlePublicBlogIndex(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")

	items, err := s.news.Published(siteID, 50)
	if err != nil {
		http.Error(w, "failed to load posts", http.StatusInternalServerError)
		return
	}

	// The index is a synthetic page: one list section fed from the posts.
	listData := make([]any, 0, len(items))
	for _, item := range items {
		listData = append(listData, map[string]any{
			"title": item.Title,
			"url":   fmt.Sprintf("/s/%s/blog/%s", siteID, item.Slug),
		})
	}
	section := core.Section{
		ID:      "blog-index",
		SiteID:  siteID,
		Type:    "bloglist",
		Enabled: true,
		Data: core.SectionData{
			"title": "Blog",
			"items": listData,
		},
	}

	html, err := s.renderer.RenderPage("Blog", []core.Section{section}, s.pixelSnippets())
	if err != nil {
		http.Error(w, "failed to render blog", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) HandlePublicBlogPost(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")

	item, err := s.news.Get(siteID, r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to load post", http.StatusInternalServerError)
		return
	}
	if item.Status != core.NewsPublished {
		http.NotFound(w, r)
		return
	}

	colors := core.DefaultColors
	store, err := s.manager.GetStore(siteID)
	if err == nil {
		if section, err := s.findSectionByType(store, "globalstyles"); err == nil {
			colors = core.GlobalColors{
				Background: section.Data.StringAt("colors.background", colors.Background),
				Primary:    section.Data.StringAt("colors.primary", colors.Primary),
				Secondary:  section.Data.StringAt("colors.secondary", colors.Secondary),
				Accent:     section.Data.StringAt("colors.accent", colors.Accent),
				Text:       section.Data.StringAt("colors.text", colors.Text),
			}
		}
	}

	html, err := s.renderer.RenderPost(item, colors, s.pixelSnippets())
	if err != nil {
		s.logger.Errorf("rendering post %s/%s: %v", siteID, item.Slug, err)
		http.Error(w, "failed to render post", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

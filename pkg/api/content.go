package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/realtime"
	"github.com/quimera-ai/quimera/pkg/storage"
)

func (s *Server) HandleListNews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := s.news.List(r.PathValue("site"), query, limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to list posts", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, ListNewsResponse{Items: items, Count: len(items), Query: query})
}

func (s *Server) HandleCreateNews(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")

	var item core.NewsItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := s.news.Create(siteID, item)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", msg)
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to create post", err.Error())
		return
	}

	s.hub.Broadcast(realtime.Event{Type: realtime.EventNewsChanged, SiteID: siteID})
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) HandleGetNews(w http.ResponseWriter, r *http.Request) {
	item, err := s.news.Get(r.PathValue("site"), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Post not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to load post", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) HandleUpdateNews(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")

	var item core.NewsItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	item.ID = r.PathValue("id")

	updated, err := s.news.Update(siteID, item)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", msg)
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Post not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to update post", err.Error())
		return
	}

	s.hub.Broadcast(realtime.Event{Type: realtime.EventNewsChanged, SiteID: siteID})
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) HandleDeleteNews(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")

	if err := s.news.Delete(siteID, r.PathValue("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Post not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to delete post", err.Error())
		return
	}
	s.hub.Broadcast(realtime.Event{Type: realtime.EventNewsChanged, SiteID: siteID})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandleDuplicateNews(w http.ResponseWriter, r *http.Request) {
	dup, err := s.news.Duplicate(r.PathValue("site"), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Post not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to duplicate post", err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, dup)
}

func (s *Server) HandleGetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := s.news.GetArticle(r.PathValue("site"), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Article not found", err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to load article", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, article)
}

func (s *Server) HandleSaveArticle(w http.ResponseWriter, r *http.Request) {
	var article core.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	article.ID = r.PathValue("id")

	saved, err := s.news.SaveArticle(r.PathValue("site"), article)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			s.writeError(w, http.StatusUnprocessableEntity, "Validation failed", msg)
			return
		}
		s.writeError(w, http.StatusInternalServerError, "Failed to save article", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) HandleGetPixels(w http.ResponseWriter, r *http.Request) {
	pixels, err := s.admin.GetPixels()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to load pixels", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, pixels)
}

func (s *Server) HandleSavePixels(w http.ResponseWriter, r *http.Request) {
	var pixels storage.AdPixels
	if err := json.NewDecoder(r.Body).Decode(&pixels); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	saved, err := s.admin.SavePixels(pixels)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to save pixels", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

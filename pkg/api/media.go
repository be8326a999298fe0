package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path/filepath"
)

const maxUploadBytes = 20 << 20 // 20MB

func (s *Server) HandleListMedia(w http.ResponseWriter, r *http.Request) {
	if s.media == nil {
		s.writeError(w, http.StatusServiceUnavailable, "Media library disabled", "no media directory configured")
		return
	}
	assets, err := s.media.List(r.PathValue("site"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to list media", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"assets": assets, "count": len(assets)})
}

func (s *Server) HandleUploadMedia(w http.ResponseWriter, r *http.Request) {
	if s.media == nil {
		s.writeError(w, http.StatusServiceUnavailable, "Media library disabled", "no media directory configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid upload", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	asset, err := s.media.Upload(r.PathValue("site"), header.Filename, file)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to store upload", err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, asset)
}

func (s *Server) HandleGenerateImage(w http.ResponseWriter, r *http.Request) {
	if s.media == nil {
		s.writeError(w, http.StatusServiceUnavailable, "Media library disabled", "no media directory configured")
		return
	}

	var req GenerateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	url, err := s.media.Generate(r.Context(), r.PathValue("site"), req.Prompt)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, "Image generation failed", err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, GenerateImageResponse{URL: url})
}

func (s *Server) HandleServeMedia(w http.ResponseWriter, r *http.Request) {
	if s.media == nil {
		http.NotFound(w, r)
		return
	}

	fileName := r.PathValue("file")
	f, err := s.media.Open(r.PathValue("site"), fileName)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer func() { _ = f.Close() }()

	if ctype := mime.TypeByExtension(filepath.Ext(fileName)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, f); err != nil {
		s.logger.Debugf("serving media %s: %v", fileName, err)
	}
}

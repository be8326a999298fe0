package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/quimera-ai/quimera/pkg/admin"
	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/log"
	"github.com/quimera-ai/quimera/pkg/media"
	"github.com/quimera-ai/quimera/pkg/news"
	"github.com/quimera-ai/quimera/pkg/palette"
	"github.com/quimera-ai/quimera/pkg/portal"
	"github.com/quimera-ai/quimera/pkg/realtime"
	"github.com/quimera-ai/quimera/pkg/render"
	"github.com/quimera-ai/quimera/pkg/storage"
)

// Server wires the editing API, the public site pages and the preview
// WebSocket over one mux. All state lives in the storage manager; the
// server itself only holds service handles.
type Server struct {
	registry *core.Registry
	manager  *storage.Manager
	news     *news.Service
	admin    *admin.Service
	media    *media.Library
	portal   *portal.Portal
	hub      *realtime.PreviewHub
	renderer *render.Service
	logger   *log.Logger

	mu        sync.Mutex
	histories map[string]*palette.History
}

// Options carries the optional collaborators. Portal and Media may be nil;
// the corresponding routes then answer 404 or 503.
type Options struct {
	News     *news.Service
	Admin    *admin.Service
	Media    *media.Library
	Portal   *portal.Portal
	Hub      *realtime.PreviewHub
	Renderer *render.Service
}

func NewServer(registry *core.Registry, manager *storage.Manager, opts Options) *Server {
	if opts.News == nil {
		opts.News = news.NewService(manager)
	}
	if opts.Admin == nil {
		opts.Admin = admin.NewService(manager)
	}
	if opts.Hub == nil {
		opts.Hub = realtime.NewPreviewHub(0)
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewService(render.GetGlobalRegistry())
	}
	return &Server{
		registry:  registry,
		manager:   manager,
		news:      opts.News,
		admin:     opts.Admin,
		media:     opts.Media,
		portal:    opts.Portal,
		hub:       opts.Hub,
		renderer:  opts.Renderer,
		logger:    log.ForService("api"),
		histories: make(map[string]*palette.History),
	}
}

// Hub exposes the preview hub so edit surfaces outside the HTTP layer can
// broadcast.
func (s *Server) Hub() *realtime.PreviewHub {
	return s.hub
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Errorf("encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, error, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}
	s.writeJSON(w, status, response)
}

// CorsMiddleware answers preflight requests and sets the CORS headers. An
// empty origins list allows any origin, for development.
func CorsMiddleware(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(allowed) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		default:
			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

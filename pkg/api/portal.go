package api

import (
	"net/http"
	"strings"
	"time"
)

const portalCookie = "quimera_portal"

func (s *Server) HandlePortalLogin(w http.ResponseWriter, r *http.Request) {
	if s.portal == nil {
		s.writeError(w, http.StatusNotFound, "Portal disabled", "no identity provider configured")
		return
	}
	http.Redirect(w, r, s.portal.LoginURL(), http.StatusFound)
}

func (s *Server) HandlePortalCallback(w http.ResponseWriter, r *http.Request) {
	if s.portal == nil {
		s.writeError(w, http.StatusNotFound, "Portal disabled", "no identity provider configured")
		return
	}

	q := r.URL.Query()
	session, err := s.portal.Callback(r.Context(), q.Get("state"), q.Get("code"))
	if err != nil {
		s.logger.Warnf("portal callback failed: %v", err)
		s.writeError(w, http.StatusUnauthorized, "Login failed", err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     portalCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) HandlePortalLogout(w http.ResponseWriter, r *http.Request) {
	if s.portal == nil {
		s.writeError(w, http.StatusNotFound, "Portal disabled", "no identity provider configured")
		return
	}
	if token := s.portalToken(r); token != "" {
		s.portal.Logout(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     portalCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandlePortalMe(w http.ResponseWriter, r *http.Request) {
	if s.portal == nil {
		s.writeError(w, http.StatusNotFound, "Portal disabled", "no identity provider configured")
		return
	}

	token := s.portalToken(r)
	session, ok := s.portal.Validate(token)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not signed in", "missing or expired session")
		return
	}
	s.writeJSON(w, http.StatusOK, session.Identity)
}

// portalToken reads the session token from the cookie or, for API clients,
// a bearer header.
func (s *Server) portalToken(r *http.Request) string {
	if cookie, err := r.Cookie(portalCookie); err == nil {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

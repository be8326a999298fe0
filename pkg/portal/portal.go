// Package portal handles client sign-in through an external identity
// provider using the standard authorization-code flow. Sessions are held in
// memory; the portal is a convenience surface, not the system of record.
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/quimera-ai/quimera/pkg/log"
)

// Identity is what the provider tells us about a signed-in client.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is an authenticated portal session.
type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}

const (
	stateTTL   = 10 * time.Minute
	sessionTTL = 24 * time.Hour
)

// Portal drives the login flow: issue an authorization URL with a one-time
// state, exchange the callback code for a token, fetch the identity, and
// hand out a session token.
type Portal struct {
	oauth       *oauth2.Config
	userInfoURL string
	logger      *log.Logger

	mu       sync.Mutex
	states   map[string]time.Time
	sessions map[string]Session
}

// Config carries the provider endpoints and credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	RedirectURL  string
	Scopes       []string
}

func New(cfg Config) *Portal {
	return &Portal{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		userInfoURL: cfg.UserInfoURL,
		logger:      log.ForService("portal"),
		states:      make(map[string]time.Time),
		sessions:    make(map[string]Session),
	}
}

// LoginURL returns the provider URL to redirect the browser to. The
// embedded state is single-use and expires after a few minutes.
func (p *Portal) LoginURL() string {
	state := uuid.NewString()

	p.mu.Lock()
	p.states[state] = time.Now().Add(stateTTL)
	for s, exp := range p.states {
		if time.Now().After(exp) {
			delete(p.states, s)
		}
	}
	p.mu.Unlock()

	return p.oauth.AuthCodeURL(state)
}

// Callback completes the flow: validates the state, exchanges the code,
// fetches the identity and creates a session.
func (p *Portal) Callback(ctx context.Context, state, code string) (Session, error) {
	p.mu.Lock()
	exp, ok := p.states[state]
	delete(p.states, state)
	p.mu.Unlock()
	if !ok || time.Now().After(exp) {
		return Session{}, fmt.Errorf("invalid or expired login state")
	}

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return Session{}, fmt.Errorf("exchanging authorization code: %w", err)
	}

	identity, err := p.fetchIdentity(ctx, token)
	if err != nil {
		return Session{}, err
	}

	session := Session{
		Token:     uuid.NewString(),
		Identity:  identity,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	p.mu.Lock()
	p.sessions[session.Token] = session
	p.mu.Unlock()

	p.logger.Debugf("portal login for %s", identity.Email)
	return session, nil
}

func (p *Portal) fetchIdentity(ctx context.Context, token *oauth2.Token) (Identity, error) {
	client := p.oauth.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("building userinfo request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("fetching identity: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("identity endpoint returned %d", resp.StatusCode)
	}
	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return Identity{}, fmt.Errorf("decoding identity: %w", err)
	}
	return identity, nil
}

// Validate returns the session for a token, or false when the token is
// unknown or expired.
func (p *Portal) Validate(token string) (Session, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, ok := p.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(session.ExpiresAt) {
		delete(p.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Logout discards a session.
func (p *Portal) Logout(token string) {
	p.mu.Lock()
	delete(p.sessions, token)
	p.mu.Unlock()
}

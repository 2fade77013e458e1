// ABOUTME: Auth protocol engine: login, registration, profile, token refresh
// ABOUTME: Refresh is single-flight; concurrent callers share one network call

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/milhasdev/milhas-cli/internal/api"
	"github.com/milhasdev/milhas-cli/internal/logger"
	"github.com/milhasdev/milhas-cli/internal/session"
	"github.com/milhasdev/milhas-cli/internal/token"
)

// ErrRefreshTokenMissing is returned by RefreshToken when no refresh token
// is in storage. The engine has already logged out by the time callers see it.
var ErrRefreshTokenMissing = errors.New("auth: refresh token missing")

// Credentials are submitted to the token-issuance endpoint. Never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Engine drives the token/session protocol against the auth endpoints.
// It talks to the API with an undecorated client: token issuance and refresh
// must never pass through the 401-retry transport.
type Engine struct {
	baseURL string
	http    *http.Client
	store   *token.Store
	session *session.State

	refresh singleflight.Group

	// OnLogout, when set, runs after every logout. The CLI uses it to point
	// the user back at the login command; a TUI can switch screens.
	OnLogout func()
}

// NewEngine creates an engine for the given API base URL.
func NewEngine(baseURL string, store *token.Store, st *session.State) *Engine {
	return &Engine{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		session: st,
	}
}

// Login exchanges credentials for a token pair, persists it, then fetches and
// stores the user profile. On a failed exchange nothing is persisted and the
// session is left untouched.
func (e *Engine) Login(ctx context.Context, creds Credentials) (*api.UserProfile, error) {
	var pair token.Pair
	if err := e.postJSON(ctx, "/auth/token/", creds, &pair); err != nil {
		log := logger.Get()
		log.Debug().Str("username", creds.Username).Msg("login rejected")
		return nil, err
	}

	if err := e.store.Save(pair); err != nil {
		return nil, fmt.Errorf("saving tokens: %w", err)
	}

	profile, err := e.FetchProfile(ctx, pair.Access)
	if err != nil {
		return nil, err
	}
	log := logger.Get()
	log.Info().Str("username", profile.Username).Msg("logged in")
	return profile, nil
}

// Register creates a new user account. It does not authenticate and touches
// neither the token store nor the session. Server-side field errors (duplicate
// username, email in use) come back inside *api.APIError.
func (e *Engine) Register(ctx context.Context, payload api.RegisterPayload) (*api.UserProfile, error) {
	var created api.UserProfile
	if err := e.postJSON(ctx, "/users/register/", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// FetchProfile requests /users/me/ with tokenOverride, or the stored access
// token when override is empty. With no token at all it short-circuits to an
// empty placeholder without touching the network or the session. A failed
// fetch clears the session and propagates the error.
func (e *Engine) FetchProfile(ctx context.Context, tokenOverride string) (*api.UserProfile, error) {
	tok := tokenOverride
	if tok == "" {
		tok = e.store.Access()
	}
	if tok == "" {
		return &api.UserProfile{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/users/me/", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := e.http.Do(req)
	if err != nil {
		e.session.Set(nil)
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.session.Set(nil)
		return nil, api.ParseErrorResponse(resp)
	}

	var profile api.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		e.session.Set(nil)
		return nil, fmt.Errorf("decoding profile: %w", err)
	}

	e.session.Set(&profile)
	return &profile, nil
}

// RefreshToken exchanges the stored refresh token for a new access token.
// Concurrent callers coalesce onto a single request and all receive the same
// token, or the same error when the refresh fails. Any failure path logs out
// first, which clears both tokens and the session.
func (e *Engine) RefreshToken(ctx context.Context) (string, error) {
	access, err, _ := e.refresh.Do("refresh", func() (interface{}, error) {
		rt := e.store.Refresh()
		if rt == "" {
			e.Logout()
			return "", ErrRefreshTokenMissing
		}

		var out struct {
			Access string `json:"access"`
		}
		body := map[string]string{"refresh": rt}
		if err := e.postJSON(ctx, "/auth/token/refresh/", body, &out); err != nil {
			log := logger.Get()
			log.Warn().Err(err).Msg("token refresh failed")
			e.Logout()
			return "", err
		}

		if err := e.store.SetAccess(out.Access); err != nil {
			return "", fmt.Errorf("saving access token: %w", err)
		}
		log := logger.Get()
		log.Debug().Msg("access token refreshed")
		return out.Access, nil
	})
	if err != nil {
		return "", err
	}
	return access.(string), nil
}

// Logout clears both tokens and the session, then fires OnLogout.
// Safe to call when already logged out.
func (e *Engine) Logout() {
	if err := e.store.Clear(); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("clearing token store")
	}
	e.session.Set(nil)
	if e.OnLogout != nil {
		e.OnLogout()
	}
}

// IsLoggedIn reports whether an access token is present in storage.
// Presence only: the token may well be expired.
func (e *Engine) IsLoggedIn() bool {
	return e.store.Access() != ""
}

func (e *Engine) postJSON(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", e.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return api.ParseErrorResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// ABOUTME: http.RoundTripper that attaches the bearer token to API calls
// ABOUTME: On a 401 it refreshes the access token and replays the request once

package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/milhasdev/milhas-cli/internal/logger"
	"github.com/milhasdev/milhas-cli/internal/token"
)

// Transport decorates an http.RoundTripper with bearer authorization and the
// refresh-and-replay recovery for expired access tokens. Requests to the
// token-issuance and token-refresh endpoints pass through untouched so a 401
// there can never recurse into another refresh.
type Transport struct {
	// Base performs the actual round trips. Defaults to http.DefaultTransport.
	Base http.RoundTripper
	// Engine runs the refresh protocol.
	Engine *Engine
	// Store supplies the current access token.
	Store *token.Store
}

// NewTransport wires a Transport over the default base round tripper.
func NewTransport(engine *Engine, store *token.Store) *Transport {
	return &Transport{Engine: engine, Store: store}
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}
	if tok := t.Store.Access(); tok != "" {
		out.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || isAuthEndpoint(req.URL.Path) {
		return resp, nil
	}

	// Expired access token. Run the single-flight refresh and replay once.
	resp.Body.Close()
	log := logger.Get()
	log.Debug().Str("path", req.URL.Path).Msg("401 received, refreshing token")

	access, rerr := t.Engine.RefreshToken(req.Context())
	if rerr != nil {
		// The refresh failure supersedes the original 401.
		return nil, fmt.Errorf("session expired: %w", rerr)
	}

	retry := req.Clone(req.Context())
	retry.Header.Set("X-Request-ID", out.Header.Get("X-Request-ID"))
	retry.Header.Set("Authorization", "Bearer "+access)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("replaying request body: %w", err)
		}
		retry.Body = body
	}
	return t.base().RoundTrip(retry)
}

// isAuthEndpoint reports whether path is the token-issuance or token-refresh
// endpoint, which must never trigger the refresh-and-replay path.
func isAuthEndpoint(path string) bool {
	return strings.HasSuffix(path, "/auth/token/") || strings.HasSuffix(path, "/auth/token/refresh/")
}

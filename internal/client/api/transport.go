package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenSource supplies the cached bearer token for outgoing requests.
// The session store implements it.
type TokenSource interface {
	CachedToken(ctx context.Context) (string, error)
}

// publicPaths are the endpoints served without authentication. Requests to
// them are dispatched untouched; everything else gets the bearer header.
var publicPaths = []string{
	"/signup",
	"/login",
	"/verify-email",
	"/forgot-password",
	"/reset-password",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// Transport authorizes outgoing requests. For non-public endpoints it
// attaches the cached token as a bearer credential; it never refreshes or
// retries, a 401 is the caller's problem. Every request is stamped with an
// X-Request-Id and, when a limiter is configured, throttled client-side.
type Transport struct {
	tokens  TokenSource
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewTransport wraps base (nil means http.DefaultTransport). limiter may be
// nil to disable throttling.
func NewTransport(tokens TokenSource, base http.RoundTripper, limiter *rate.Limiter) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{tokens: tokens, base: base, limiter: limiter}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	// Per RoundTripper contract the request must not be mutated in place.
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-Id", uuid.NewString())

	if !isPublicPath(req.URL.Path) {
		token, err := t.tokens.CachedToken(req.Context())
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return t.base.RoundTrip(req)
}

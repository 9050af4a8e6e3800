package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) CachedToken(ctx context.Context) (string, error) {
	return string(s), nil
}

func headerEcho(t *testing.T) (*httptest.Server, *http.Header) {
	t.Helper()
	var seen http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func doGet(t *testing.T, tokens TokenSource, url string) http.Header {
	t.Helper()
	client := &http.Client{Transport: NewTransport(tokens, nil, nil)}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.Header
}

func TestTransport_PublicEndpointNeverGetsBearer(t *testing.T) {
	srv, seen := headerEcho(t)

	// Even with a valid session the login request goes out bare.
	doGet(t, staticTokens("valid-token"), srv.URL+"/login")
	assert.Empty(t, seen.Get("Authorization"))
}

func TestTransport_PublicAllowlist(t *testing.T) {
	srv, seen := headerEcho(t)

	paths := []string{
		"/signup",
		"/login",
		"/verify-email/abc123",
		"/forgot-password",
		"/reset-password/xyz",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			doGet(t, staticTokens("tok"), srv.URL+p)
			assert.Empty(t, seen.Get("Authorization"), "public path %s must not carry a credential", p)
		})
	}
}

func TestTransport_ProtectedEndpointGetsBearer(t *testing.T) {
	srv, seen := headerEcho(t)

	doGet(t, staticTokens("valid-token"), srv.URL+"/posts/42/like")
	assert.Equal(t, "Bearer valid-token", seen.Get("Authorization"))
}

func TestTransport_NoSessionSendsNoHeader(t *testing.T) {
	srv, seen := headerEcho(t)

	// The request still goes out; the 401 is the backend's answer to give.
	doGet(t, staticTokens(""), srv.URL+"/posts/42/like")
	assert.Empty(t, seen.Get("Authorization"))
}

func TestTransport_StampsRequestID(t *testing.T) {
	srv, seen := headerEcho(t)

	doGet(t, staticTokens("tok"), srv.URL+"/notifications")
	assert.NotEmpty(t, seen.Get("X-Request-Id"))
}

func TestTransport_DoesNotMutateCallerRequest(t *testing.T) {
	srv, _ := headerEcho(t)

	client := &http.Client{Transport: NewTransport(staticTokens("tok"), nil, nil)}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/notifications", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"), "original request untouched")
	assert.Empty(t, req.Header.Get("X-Request-Id"))
}

func TestIsPublicPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/login", true},
		{"/signup", true},
		{"/verify-email/token123", true},
		{"/forgot-password", true},
		{"/reset-password/token123", true},
		{"/", false},
		{"/posts/1/like", false},
		{"/notifications", false},
		{"/users/search", false},
		{"/account/follow/3", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, isPublicPath(tc.path), "path %s", tc.path)
	}
}

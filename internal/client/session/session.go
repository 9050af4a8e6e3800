// Package session owns the client's authentication state: the bearer token
// and the acting user's snapshot, both cached durably so they survive
// process restarts.
//
// Token decoding here is advisory, for UX only. The payload is read WITHOUT
// verifying the signature; the backend remains the sole authority on token
// validity, and every request still carries the token for the server to
// judge.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kpjunaid/socialgo/internal/client/models"
	"github.com/kpjunaid/socialgo/internal/client/state"
)

// Durable keys. The names match what the browser client kept in local
// storage, which keeps the state file recognizable when debugging.
const (
	tokenKey = "authToken"
	userKey  = "authUser"
)

// Store is the process-wide session holder. Construct one at startup and
// inject it by reference everywhere a component needs the acting identity;
// it must never be duplicated, since a validity check can clear it.
type Store struct {
	repo state.Repository

	token   string
	subject string
	expiry  time.Time
}

func NewStore(repo state.Repository) *Store {
	return &Store{repo: repo}
}

// Store persists a non-empty token. Empty input is a no-op; the backend
// not returning a token is handled by the caller, never written through.
func (s *Store) Store(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	s.token = token
	return nil
}

// Load refreshes the in-memory token from the durable cache. The cache is
// the source of truth across restarts, so every validity check starts here.
func (s *Store) Load(ctx context.Context) error {
	v, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	s.token = string(v)
	return nil
}

// CachedToken returns the durably cached token, empty when no session
// exists. The request authorizer reads through this.
func (s *Store) CachedToken(ctx context.Context) (string, error) {
	if err := s.Load(ctx); err != nil {
		return "", err
	}
	return s.token, nil
}

// IsValid reports whether a usable session exists. The token payload is
// decoded without signature verification; an absent token, an empty subject
// claim, or a past expiry all count as invalid. An invalid token clears the
// store (self-healing), so a false result leaves no stale state behind.
func (s *Store) IsValid(ctx context.Context) bool {
	if err := s.Load(ctx); err != nil {
		return false
	}
	if s.token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		_ = s.Clear(ctx)
		return false
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		_ = s.Clear(ctx)
		return false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || (expiry != nil && expiry.Before(time.Now())) {
		_ = s.Clear(ctx)
		return false
	}

	s.subject = subject
	if expiry != nil {
		s.expiry = expiry.Time
	}
	return true
}

// Clear erases the token, decoded subject, and cached user from both
// memory and durable storage.
func (s *Store) Clear(ctx context.Context) error {
	s.token = ""
	s.subject = ""
	s.expiry = time.Time{}
	if err := s.repo.DeleteMany(ctx, tokenKey, userKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Subject returns the subject claim decoded by the last successful IsValid.
func (s *Store) Subject() string {
	return s.subject
}

// CacheUser stores a snapshot of the acting user for display purposes.
// The snapshot is distinct from the token; refreshing it never touches
// authorization state. nil input is a no-op.
func (s *Store) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user snapshot: %w", err)
	}
	if err := s.repo.Set(ctx, userKey, data); err != nil {
		return fmt.Errorf("cache user: %w", err)
	}
	return nil
}

// CachedUser returns the stored user snapshot, or nil when none exists.
func (s *Store) CachedUser(ctx context.Context) (*models.User, error) {
	data, err := s.repo.Get(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("load user snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user snapshot: %w", err)
	}
	return &user, nil
}

// CachedUserID is a convenience for views that only need the acting user's
// id. Returns 0 when no snapshot is cached.
func (s *Store) CachedUserID(ctx context.Context) (int64, error) {
	user, err := s.CachedUser(ctx)
	if err != nil || user == nil {
		return 0, err
	}
	return user.ID, nil
}

// Package auth implements the authentication gateway: login, signup, and
// logout against the backend, session persistence, and broadcast of
// session-change events to subscribed views.
package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/kpjunaid/socialgo/internal/client/api"
	"github.com/kpjunaid/socialgo/internal/client/models"
	"github.com/kpjunaid/socialgo/internal/client/session"
	"github.com/kpjunaid/socialgo/internal/logging"
)

// Backend is the slice of the API client the gateway needs. Tests provide
// a stub.
type Backend interface {
	Login(ctx context.Context, req api.LoginRequest) (*models.User, string, error)
	Signup(ctx context.Context, req api.SignupRequest) error
}

// EventKind distinguishes session-change events.
type EventKind int

const (
	EventLogin EventKind = iota + 1
	EventLogout
)

// Event is delivered to subscribers on session changes. User is set on
// login events; SignedOut is true on logout events.
type Event struct {
	Kind      EventKind
	User      *models.User
	SignedOut bool
}

// Subscription is a scoped handle on the gateway's event stream. The owner
// must call Unsubscribe on teardown; a severed subscription is never
// delivered to again, so a disposed view cannot be notified.
type Subscription struct {
	events  chan Event
	gateway *Gateway
	once    sync.Once
}

// Events returns the receive side of the subscription.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Unsubscribe removes the subscription from the gateway. Safe to call more
// than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.gateway.drop(s)
	})
}

// Gateway performs auth operations and multicasts session events. Events
// are delivered at most once per call, to whoever is subscribed at emission
// time; there is no buffering or replay for late subscribers.
type Gateway struct {
	backend Backend
	session *session.Store
	log     logging.Logger

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewGateway(backend Backend, sess *session.Store, log logging.Logger) *Gateway {
	return &Gateway{
		backend: backend,
		session: sess,
		log:     log,
		subs:    make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a new event consumer.
func (g *Gateway) Subscribe() *Subscription {
	sub := &Subscription{
		events:  make(chan Event, 8),
		gateway: g,
	}
	g.mu.Lock()
	g.subs[sub] = struct{}{}
	g.mu.Unlock()
	return sub
}

func (g *Gateway) drop(sub *Subscription) {
	g.mu.Lock()
	delete(g.subs, sub)
	g.mu.Unlock()
}

// emit multicasts to current subscribers. Delivery is at-most-once: a
// subscriber whose buffer is full misses the event rather than blocking
// the emitting flow.
func (g *Gateway) emit(ctx context.Context, ev Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for sub := range g.subs {
		select {
		case sub.events <- ev:
		default:
			g.log.Warn(ctx, "session event dropped, subscriber not draining", "kind", ev.Kind)
		}
	}
}

// Login authenticates, persists the issued token and user snapshot, and
// emits a login event carrying the user. On failure nothing is persisted
// and no event fires; a *api.ValidationError passes through untouched so
// the caller can render per-field messages.
func (g *Gateway) Login(ctx context.Context, creds api.LoginRequest) (*models.User, error) {
	user, token, err := g.backend.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := g.session.Store(ctx, token); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	if err := g.session.CacheUser(ctx, user); err != nil {
		return nil, fmt.Errorf("cache user: %w", err)
	}

	g.log.Info(ctx, "logged in", "user_id", user.ID)
	g.emit(ctx, Event{Kind: EventLogin, User: user})
	return user, nil
}

// Logout clears the session and emits a logout event. Idempotent: calling
// it without a session still succeeds (and still emits, matching the
// browser client's behavior of announcing the cleared state).
func (g *Gateway) Logout(ctx context.Context) error {
	if err := g.session.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	g.log.Info(ctx, "logged out")
	g.emit(ctx, Event{Kind: EventLogout, SignedOut: true})
	return nil
}

// Signup registers a new account. It deliberately does not establish a
// session: the account must verify its email before the first login.
func (g *Gateway) Signup(ctx context.Context, info api.SignupRequest) error {
	return g.backend.Signup(ctx, info)
}

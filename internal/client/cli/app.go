package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/kpjunaid/socialgo/internal/client/api"
	"github.com/kpjunaid/socialgo/internal/client/auth"
	"github.com/kpjunaid/socialgo/internal/client/config"
	"github.com/kpjunaid/socialgo/internal/client/mailbox"
	"github.com/kpjunaid/socialgo/internal/client/models"
	"github.com/kpjunaid/socialgo/internal/client/optimistic"
	"github.com/kpjunaid/socialgo/internal/client/session"
	"github.com/kpjunaid/socialgo/internal/client/state"
	"github.com/kpjunaid/socialgo/internal/common"
	"github.com/kpjunaid/socialgo/internal/logging"
)

// pager is the slice of a paginated collection the "more" command needs.
// Each list command installs its own pager as the active one.
type pager interface {
	More(ctx context.Context) error
	HasMore() bool
}

// App wires configuration, local state, the API client, the auth gateway
// and the interactive REPL together.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	api     *api.Client
	session *session.Store
	gateway *auth.Gateway
	box     *mailbox.Mailbox

	likes    *optimistic.Coordinator
	posts    *optimistic.Registry[*models.PostResponse]
	comments *optimistic.Registry[*models.CommentResponse]
	users    *optimistic.Registry[*models.UserResponse]

	reader *bufio.Reader
	user   *models.User
	sub    *auth.Subscription

	// current is the list view "more" continues; feed survives across
	// views so returning to the timeline keeps its position.
	current pager
	feed    pager
}

// NewApp opens the local state database, builds the API client on top of
// the session token source, and wires the auth gateway and mailbox.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := state.Open(ctx, c.StateDSN)
	if err != nil {
		log.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	sess := session.NewStore(state.NewSQLiteRepository(db))

	apiClient := api.New(c.BaseURL, sess,
		api.WithTimeout(c.RequestTimeout),
		api.WithRateLimit(float64(c.RequestsPerSecond), c.RequestsPerSecond),
	)

	a := &App{
		config:   c,
		log:      log,
		db:       db,
		api:      apiClient,
		session:  sess,
		gateway:  auth.NewGateway(apiClient, sess, log),
		box:      mailbox.New(db),
		likes:    optimistic.NewCoordinator(log),
		posts:    optimistic.NewRegistry[*models.PostResponse](),
		comments: optimistic.NewRegistry[*models.CommentResponse](),
		users:    optimistic.NewRegistry[*models.UserResponse](),
		reader:   bufio.NewReader(os.Stdin),
	}
	return a, nil
}

// Run restores a persisted session if one is still valid, drains any
// pending flash message, then enters the REPL. It blocks until the user
// exits.
func (a *App) Run(ctx context.Context) {
	a.sub = a.gateway.Subscribe()

	if a.session.IsValid(ctx) {
		if u, err := a.session.CachedUser(ctx); err == nil && u != nil {
			a.user = u
			a.log.Info(ctx, "session restored", "user", u.Email)
		}
	}

	_ = a.Message(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// pumpEvents drains pending gateway events and applies them. The whole app
// runs on the REPL goroutine, so events are not consumed concurrently;
// instead every command drains the queue before acting, which keeps the
// in-memory user and the per-session registries in step with a logout
// triggered anywhere, including token self-healing.
func (a *App) pumpEvents() {
	if a.sub == nil {
		return
	}
	for {
		select {
		case ev, ok := <-a.sub.Events():
			if !ok {
				return
			}
			if ev.SignedOut {
				a.user = nil
				a.posts.Clear()
				a.comments.Clear()
				a.users.Clear()
				a.current, a.feed = nil, nil
			} else {
				a.user = ev.User
			}
		default:
			return
		}
	}
}

// Close releases the event subscription and the state database.
func (a *App) Close() error {
	if a.sub != nil {
		a.sub.Unsubscribe()
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	a.pumpEvents()
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.user.FullName())
}

// requireAuth is the client-side route guard: protected commands check the
// persisted token before touching the network, and an expired session posts
// the canonical token message and redirects to login.
func (a *App) requireAuth(ctx context.Context) bool {
	a.pumpEvents()
	if a.session.IsValid(ctx) {
		return true
	}
	if a.user != nil {
		_ = a.box.Post(ctx, mailbox.TokenError())
		_ = a.gateway.Logout(ctx)
		a.user = nil
		_ = a.Message(ctx)
	} else {
		printlnFn("Please login first")
	}
	return false
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// reportErr renders a command error to the user. Validation failures are
// listed per field; a 404 or rejected token routes to the message view the
// way the browser client redirected; everything else is printed as-is.
func (a *App) reportErr(ctx context.Context, err error) error {
	var vErr *api.ValidationError
	switch {
	case errors.As(err, &vErr):
		for field, issues := range vErr.Fields {
			for _, issue := range issues {
				printlnFn(fmt.Sprintf("  %s: %s", field, issue.Message))
			}
		}
	case errors.Is(err, common.ErrNotFound):
		_ = a.box.Post(ctx, mailbox.NotFoundError())
		_ = a.Message(ctx)
	case errors.Is(err, common.ErrUnauthorized):
		_ = a.box.Post(ctx, mailbox.TokenError())
		_ = a.gateway.Logout(ctx)
		a.user = nil
		_ = a.Message(ctx)
	default:
		a.log.Error(ctx, "command failed", "error", err)
		printlnFn("Error:", err.Error())
	}
	return err
}

// Package mailbox passes a one-shot status message between views across a
// full navigation: the producer writes it durably right before navigating
// away, the message view reads it once, and teardown erases every field
// however the view exits.
package mailbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kpjunaid/socialgo/internal/client/state"
	"github.com/kpjunaid/socialgo/internal/dbx"
)

// Durable keys, named as the browser client named its local-storage slots.
const (
	typeKey   = "messageType"
	headerKey = "messageHeader"
	detailKey = "messageDetail"
	signupKey = "toSignup"
	loginKey  = "toLogin"
)

// ErrEmpty is returned by Take when no message is waiting (the header/type
// pair is absent). The consumer redirects home instead of rendering.
var ErrEmpty = errors.New("mailbox empty")

// Type classifies a message.
type Type string

const (
	TypeError   Type = "error"
	TypeSuccess Type = "success"
)

// Message is the one-shot payload. The nav hints tell the consumer view
// which follow-up action to offer.
type Message struct {
	Type     Type
	Header   string
	Detail   string
	ToSignup bool
	ToLogin  bool
}

// Mailbox stores the message in the client state database. All five fields
// are written in one transaction so a consumer never observes a torn
// message.
type Mailbox struct {
	db *sql.DB
}

func New(db *sql.DB) *Mailbox {
	return &Mailbox{db: db}
}

// Post writes the message atomically, replacing any unread one.
func (m *Mailbox) Post(ctx context.Context, msg Message) error {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		fields := map[string]string{
			typeKey:   string(msg.Type),
			headerKey: msg.Header,
			detailKey: msg.Detail,
			signupKey: formatBool(msg.ToSignup),
			loginKey:  formatBool(msg.ToLogin),
		}
		for k, v := range fields {
			if err := repo.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	return nil
}

// Take reads the waiting message. It does not clear: the consumer view owns
// teardown and calls Clear however it exits. ErrEmpty when the header/type
// pair is absent.
func (m *Mailbox) Take(ctx context.Context) (*Message, error) {
	repo := state.NewSQLiteRepository(m.db)

	typ, err := repo.Get(ctx, typeKey)
	if err != nil {
		return nil, fmt.Errorf("read message type: %w", err)
	}
	header, err := repo.Get(ctx, headerKey)
	if err != nil {
		return nil, fmt.Errorf("read message header: %w", err)
	}
	if typ == nil || header == nil {
		return nil, ErrEmpty
	}

	detail, err := repo.Get(ctx, detailKey)
	if err != nil {
		return nil, fmt.Errorf("read message detail: %w", err)
	}
	toSignup, err := repo.Get(ctx, signupKey)
	if err != nil {
		return nil, fmt.Errorf("read signup hint: %w", err)
	}
	toLogin, err := repo.Get(ctx, loginKey)
	if err != nil {
		return nil, fmt.Errorf("read login hint: %w", err)
	}

	return &Message{
		Type:     Type(typ),
		Header:   string(header),
		Detail:   string(detail),
		ToSignup: string(toSignup) == "true",
		ToLogin:  string(toLogin) == "true",
	}, nil
}

// Clear erases all five keys. Safe when nothing is waiting.
func (m *Mailbox) Clear(ctx context.Context) error {
	repo := state.NewSQLiteRepository(m.db)
	if err := repo.DeleteMany(ctx, typeKey, headerKey, detailKey, signupKey, loginKey); err != nil {
		return fmt.Errorf("clear mailbox: %w", err)
	}
	return nil
}

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

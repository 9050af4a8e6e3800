package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kpjunaid/socialgo/internal/client/mailbox"
)

// Message shows the pending cross-navigation flash message, if any, then
// clears it so it is displayed exactly once. An empty mailbox is not an
// error; the command just returns to the prompt.
func (a *App) Message(ctx context.Context) error {
	msg, err := a.box.Take(ctx)
	if err != nil {
		if errors.Is(err, mailbox.ErrEmpty) {
			return nil
		}
		return a.reportErr(ctx, err)
	}

	printlnFn(fmt.Sprintf("[%s] %s", msg.Type, msg.Header))
	if msg.Detail != "" {
		printlnFn("  " + msg.Detail)
	}
	switch {
	case msg.ToLogin:
		printlnFn("  (run 'login' to continue)")
	case msg.ToSignup:
		printlnFn("  (run 'signup' to continue)")
	}

	return a.box.Clear(ctx)
}

package cli

import (
	"context"
	"fmt"

	"github.com/kpjunaid/socialgo/internal/client/collection"
	"github.com/kpjunaid/socialgo/internal/client/models"
)

// Notifications opens the paged notification list. Opening it marks the
// whole batch as seen, mirroring the badge reset on the web client.
func (a *App) Notifications(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	col := collection.New(func(ctx context.Context, page, size int) ([]*models.Notification, error) {
		return a.api.Notifications(ctx, page, size)
	}, a.config.PageSize)
	a.current = newListView(col, renderNotification)

	if err := a.More(ctx); err != nil {
		return err
	}
	if err := a.api.MarkAllSeen(ctx); err != nil {
		a.log.Warn(ctx, "mark seen failed", "error", err)
	}
	return nil
}

// MarkRead marks one notification as read, or every notification when no
// id is given.
func (a *App) MarkRead(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	if arg == "" {
		if err := a.api.MarkAllRead(ctx); err != nil {
			return a.reportErr(ctx, err)
		}
		printlnFn("All notifications marked read")
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	if err := a.api.MarkRead(ctx, id); err != nil {
		return a.reportErr(ctx, err)
	}
	printlnFn(fmt.Sprintf("Notification #%d marked read", id))
	return nil
}

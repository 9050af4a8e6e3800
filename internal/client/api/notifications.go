package api

import (
	"context"
	"strconv"

	"github.com/kpjunaid/socialgo/internal/client/models"
)

// Notifications returns one page of the authenticated user's notifications.
func (c *Client) Notifications(ctx context.Context, page, size int) ([]*models.Notification, error) {
	var out []*models.Notification
	if err := c.get(ctx, "/notifications", pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkAllSeen flags every notification as seen; the badge counter resets.
func (c *Client) MarkAllSeen(ctx context.Context) error {
	return c.postEmpty(ctx, "/notifications/mark-seen", nil, nil)
}

// MarkAllRead flags every notification as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.postEmpty(ctx, "/notifications/mark-read", nil, nil)
}

// MarkRead flags a single notification as read.
func (c *Client) MarkRead(ctx context.Context, notificationID int64) error {
	return c.postEmpty(ctx, "/notifications/"+strconv.FormatInt(notificationID, 10)+"/mark-read", nil, nil)
}

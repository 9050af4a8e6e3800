package api

import (
	"context"

	"github.com/kpjunaid/socialgo/internal/client/models"
)

// TimelinePosts returns one page of the authenticated user's timeline.
func (c *Client) TimelinePosts(ctx context.Context, page, size int) ([]*models.PostResponse, error) {
	var out []*models.PostResponse
	if err := c.get(ctx, "/", pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TimelineTags returns the tag list shown alongside the timeline.
func (c *Client) TimelineTags(ctx context.Context) ([]models.Tag, error) {
	var out []models.Tag
	if err := c.get(ctx, "/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

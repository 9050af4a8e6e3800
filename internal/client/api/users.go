package api

import (
	"context"
	"strconv"

	"github.com/kpjunaid/socialgo/internal/client/models"
)

func userPath(userID int64, parts ...string) string {
	p := "/users/" + strconv.FormatInt(userID, 10)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

// GetUser fetches a profile by id. Missing ids surface as
// common.ErrNotFound.
func (c *Client) GetUser(ctx context.Context, userID int64) (*models.UserResponse, error) {
	var out models.UserResponse
	if err := c.get(ctx, userPath(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Following returns one page of accounts the user follows.
func (c *Client) Following(ctx context.Context, userID int64, page, size int) ([]*models.UserResponse, error) {
	var out []*models.UserResponse
	if err := c.get(ctx, userPath(userID, "following"), pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Followers returns one page of the user's followers.
func (c *Client) Followers(ctx context.Context, userID int64, page, size int) ([]*models.UserResponse, error) {
	var out []*models.UserResponse
	if err := c.get(ctx, userPath(userID, "follower"), pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserPosts returns one page of the user's own posts.
func (c *Client) UserPosts(ctx context.Context, userID int64, page, size int) ([]*models.PostResponse, error) {
	var out []*models.PostResponse
	if err := c.get(ctx, userPath(userID, "posts"), pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchUsers performs a paged name search.
func (c *Client) SearchUsers(ctx context.Context, key string, page, size int) ([]*models.UserResponse, error) {
	q := pageParams(page, size)
	q.Set("key", key)
	var out []*models.UserResponse
	if err := c.get(ctx, "/users/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Follow makes the authenticated user follow the target.
func (c *Client) Follow(ctx context.Context, userID int64) error {
	return c.postEmpty(ctx, "/account/follow/"+strconv.FormatInt(userID, 10), nil, nil)
}

// Unfollow removes the authenticated user's follow.
func (c *Client) Unfollow(ctx context.Context, userID int64) error {
	return c.postEmpty(ctx, "/account/unfollow/"+strconv.FormatInt(userID, 10), nil, nil)
}

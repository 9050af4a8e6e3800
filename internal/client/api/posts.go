package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kpjunaid/socialgo/internal/client/models"
)

func postPath(postID int64, parts ...string) string {
	p := "/posts/" + strconv.FormatInt(postID, 10)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

func commentPath(commentID int64, parts ...string) string {
	p := "/posts/comments/" + strconv.FormatInt(commentID, 10)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

// GetPost fetches a single post by id. A missing id surfaces as
// common.ErrNotFound; callers route that to the message view.
func (c *Client) GetPost(ctx context.Context, postID int64) (*models.PostResponse, error) {
	var out models.PostResponse
	if err := c.get(ctx, postPath(postID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost publishes a new post. photo may be nil; tags travel as a JSON
// array field alongside the content, mirroring the backend's multipart
// contract.
func (c *Client) CreatePost(ctx context.Context, content string, photo []byte, photoName string, tags []string) (*models.Post, error) {
	return c.writePost(ctx, "/posts/create", content, photo, photoName, tags)
}

// UpdatePost edits an existing post.
func (c *Client) UpdatePost(ctx context.Context, postID int64, content string, photo []byte, photoName string, tags []string) (*models.Post, error) {
	return c.writePost(ctx, postPath(postID, "update"), content, photo, photoName, tags)
}

func (c *Client) writePost(ctx context.Context, path, content string, photo []byte, photoName string, tags []string) (*models.Post, error) {
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	fields := map[string]string{
		"content":  content,
		"postTags": string(tagsJSON),
	}
	var files []filePart
	if photo != nil {
		files = append(files, filePart{field: "postPhoto", name: photoName, content: photo})
	}
	var out models.Post
	if err := c.postMultipart(ctx, path, fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes a post; shares use their own endpoint.
func (c *Client) DeletePost(ctx context.Context, postID int64, isTypeShare bool) error {
	if isTypeShare {
		return c.postEmpty(ctx, postPath(postID, "share", "delete"), nil, nil)
	}
	return c.postEmpty(ctx, postPath(postID, "delete"), nil, nil)
}

// DeletePostPhoto removes only the photo attached to a post.
func (c *Client) DeletePostPhoto(ctx context.Context, postID int64) error {
	return c.postEmpty(ctx, postPath(postID, "photo", "delete"), nil, nil)
}

// PostLikes returns one page of users who liked a post.
func (c *Client) PostLikes(ctx context.Context, postID int64, page, size int) ([]*models.User, error) {
	var out []*models.User
	if err := c.get(ctx, postPath(postID, "likes"), pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostComments returns one page of a post's comments.
func (c *Client) PostComments(ctx context.Context, postID int64, page, size int) ([]*models.CommentResponse, error) {
	var out []*models.CommentResponse
	if err := c.get(ctx, postPath(postID, "comments"), pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostShares returns one page of shares of a post.
func (c *Client) PostShares(ctx context.Context, postID int64, page, size int) ([]*models.PostResponse, error) {
	var out []*models.PostResponse
	if err := c.get(ctx, postPath(postID, "shares"), pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LikePost marks the post liked by the authenticated user.
func (c *Client) LikePost(ctx context.Context, postID int64) error {
	return c.postEmpty(ctx, postPath(postID, "like"), nil, nil)
}

// UnlikePost removes the authenticated user's like.
func (c *Client) UnlikePost(ctx context.Context, postID int64) error {
	return c.postEmpty(ctx, postPath(postID, "unlike"), nil, nil)
}

// CreateComment adds a comment to a post.
func (c *Client) CreateComment(ctx context.Context, postID int64, content string) (*models.CommentResponse, error) {
	var out models.CommentResponse
	fields := map[string]string{"content": content}
	if err := c.postMultipart(ctx, postPath(postID, "comments", "create"), fields, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes a comment from a post.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID int64) error {
	path := postPath(postID, "comments", strconv.FormatInt(commentID, 10), "delete")
	return c.postEmpty(ctx, path, nil, nil)
}

// LikeComment marks a comment liked by the authenticated user.
func (c *Client) LikeComment(ctx context.Context, commentID int64) error {
	return c.postEmpty(ctx, commentPath(commentID, "like"), nil, nil)
}

// UnlikeComment removes the authenticated user's like from a comment.
func (c *Client) UnlikeComment(ctx context.Context, commentID int64) error {
	return c.postEmpty(ctx, commentPath(commentID, "unlike"), nil, nil)
}

// CommentLikes returns one page of users who liked a comment.
func (c *Client) CommentLikes(ctx context.Context, commentID int64, page, size int) ([]*models.User, error) {
	var out []*models.User
	if err := c.get(ctx, commentPath(commentID, "likes"), pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateShare shares a post with an optional commentary.
func (c *Client) CreateShare(ctx context.Context, postID int64, content string) (*models.Post, error) {
	var out models.Post
	fields := map[string]string{"content": content}
	if err := c.postMultipart(ctx, postPath(postID, "share", "create"), fields, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostsByTag returns one page of posts carrying the given tag.
func (c *Client) PostsByTag(ctx context.Context, tag string, page, size int) ([]*models.PostResponse, error) {
	var out []*models.PostResponse
	path := "/posts/tags/" + url.PathEscape(tag)
	if err := c.get(ctx, path, pageParams(page, size), &out); err != nil {
		return nil, err
	}
	return out, nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/kpjunaid/socialgo/internal/client/collection"
	"github.com/kpjunaid/socialgo/internal/client/models"
	"github.com/kpjunaid/socialgo/internal/filex"
)

// resolvePost returns the canonical shared instance for a post, fetching it
// when no open view has loaded it yet.
func (a *App) resolvePost(ctx context.Context, id int64) (*models.PostResponse, error) {
	if rec, ok := a.posts.Get(id); ok {
		return rec, nil
	}
	rec, err := a.api.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.posts.Resolve(id, rec), nil
}

// NewPost prompts for content, tags and an optional photo, then publishes
// a new post.
func (a *App) NewPost(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	content, err := getMultiline(a.reader, "Post content", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, os.Stdout)
	if err != nil {
		return err
	}
	photoPath, err := getSimpleText(a.reader, "Photo path (leave empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var photo []byte
	var photoName string
	if photoPath != "" {
		photo, photoName, err = filex.LoadPhoto(photoPath)
		if err != nil {
			return a.reportErr(ctx, err)
		}
	}

	post, err := a.api.CreatePost(ctx, content, photo, photoName, tags)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	printlnFn(fmt.Sprintf("Published post #%d", post.ID))
	return nil
}

// EditPost prompts for fresh content, tags and an optional photo, then
// updates an own post. The registry record, if present, takes the returned
// post so every open view shows the edit.
func (a *App) EditPost(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	content, err := getMultiline(a.reader, "Post content", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, os.Stdout)
	if err != nil {
		return err
	}
	photoPath, err := getSimpleText(a.reader, "Photo path (leave empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var photo []byte
	var photoName string
	if photoPath != "" {
		photo, photoName, err = filex.LoadPhoto(photoPath)
		if err != nil {
			return a.reportErr(ctx, err)
		}
	}

	post, err := a.api.UpdatePost(ctx, id, content, photo, photoName, tags)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	if rec, ok := a.posts.Get(id); ok {
		rec.Post = post
	}
	printlnFn(fmt.Sprintf("Updated post #%d", id))
	return nil
}

// DeletePostPhoto strips the photo from an own post.
func (a *App) DeletePostPhoto(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	if err := a.api.DeletePostPhoto(ctx, id); err != nil {
		return a.reportErr(ctx, err)
	}
	if rec, ok := a.posts.Get(id); ok {
		rec.Post.PostPhoto = ""
	}
	printlnFn("Photo removed")
	return nil
}

// DeletePost removes an own post (or share) and drops it from the registry.
func (a *App) DeletePost(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}

	isShare := false
	if rec, ok := a.posts.Get(id); ok {
		isShare = rec.Post.IsTypeShare
	}
	if err := a.api.DeletePost(ctx, id, isShare); err != nil {
		return a.reportErr(ctx, err)
	}
	a.posts.Drop(id)
	printlnFn("Deleted")
	return nil
}

// togglePostLike flips the like state of a post through the optimistic
// coordinator: the counter moves immediately and is rolled back when the
// backend rejects the call.
func (a *App) togglePostLike(ctx context.Context, arg string, want bool) error {
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	rec, err := a.resolvePost(ctx, id)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	if rec.Flagged() == want {
		printlnFn("Nothing to do")
		return nil
	}

	err = a.likes.Toggle(ctx, rec, func(ctx context.Context, enabled bool) error {
		if enabled {
			return a.api.LikePost(ctx, id)
		}
		return a.api.UnlikePost(ctx, id)
	})
	if err != nil {
		return a.reportErr(ctx, err)
	}
	printlnFn(fmt.Sprintf("Post #%d likes: %d", id, rec.Post.LikeCount))
	return nil
}

func (a *App) LikePost(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.togglePostLike(ctx, arg, true)
}

func (a *App) UnlikePost(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.togglePostLike(ctx, arg, false)
}

// PostLikes opens the paged list of users who liked a post. The list is
// bounded by the post's like counter rather than by page shape, so the
// counter kept fresh by the optimistic coordinator decides when it ends.
func (a *App) PostLikes(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	rec, err := a.resolvePost(ctx, id)
	if err != nil {
		return a.reportErr(ctx, err)
	}

	col := collection.New(func(ctx context.Context, page, size int) ([]*models.User, error) {
		return a.api.PostLikes(ctx, id, page, size)
	}, a.config.PageSize, collection.CountBound[*models.User](func() int {
		return rec.Post.LikeCount
	}))
	a.current = newListView(col, func(u *models.User) {
		printlnFn(fmt.Sprintf("[user #%d] %s", u.ID, u.FullName()))
	})
	return a.More(ctx)
}

// Comment prompts for a comment body and attaches it to a post.
func (a *App) Comment(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	content, err := getMultiline(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateComment(ctx, id, content)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	a.comments.Resolve(created.Comment.ID, created)
	if rec, ok := a.posts.Get(id); ok {
		rec.Post.CommentCount++
	}
	printlnFn(fmt.Sprintf("Comment #%d added", created.Comment.ID))
	return nil
}

// PostComments opens the paged comment list of a post.
func (a *App) PostComments(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}

	col := collection.New(func(ctx context.Context, page, size int) ([]*models.CommentResponse, error) {
		items, err := a.api.PostComments(ctx, id, page, size)
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			items[i] = a.comments.Resolve(item.Comment.ID, item)
		}
		return items, nil
	}, a.config.PageSize)
	a.current = newListView(col, renderComment)
	return a.More(ctx)
}

// DeleteComment removes an own comment from a post and keeps the post's
// comment counter in step.
func (a *App) DeleteComment(ctx context.Context, postArg, commentArg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	postID, err := parseID(postArg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	commentID, err := parseID(commentArg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	if err := a.api.DeleteComment(ctx, postID, commentID); err != nil {
		return a.reportErr(ctx, err)
	}
	a.comments.Drop(commentID)
	if rec, ok := a.posts.Get(postID); ok {
		rec.Post.CommentCount--
	}
	printlnFn("Comment deleted")
	return nil
}

// resolveComment looks a comment up in the registry. Comments have no
// standalone fetch endpoint, so one of the open views must have loaded it.
func (a *App) resolveComment(arg string) (*models.CommentResponse, int64, error) {
	id, err := parseID(arg)
	if err != nil {
		return nil, 0, err
	}
	rec, ok := a.comments.Get(id)
	if !ok {
		return nil, 0, fmt.Errorf("comment #%d is not loaded, open its post's comments first", id)
	}
	return rec, id, nil
}

// toggleCommentLike flips the like state of a comment through the
// optimistic coordinator, same contract as togglePostLike.
func (a *App) toggleCommentLike(ctx context.Context, arg string, want bool) error {
	rec, id, err := a.resolveComment(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	if rec.Flagged() == want {
		printlnFn("Nothing to do")
		return nil
	}

	err = a.likes.Toggle(ctx, rec, func(ctx context.Context, enabled bool) error {
		if enabled {
			return a.api.LikeComment(ctx, id)
		}
		return a.api.UnlikeComment(ctx, id)
	})
	if err != nil {
		return a.reportErr(ctx, err)
	}
	printlnFn(fmt.Sprintf("Comment #%d likes: %d", id, rec.Comment.LikeCount))
	return nil
}

func (a *App) LikeComment(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.toggleCommentLike(ctx, arg, true)
}

func (a *App) UnlikeComment(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.toggleCommentLike(ctx, arg, false)
}

// CommentLikes opens the paged list of users who liked a comment, bounded
// by the comment's like counter.
func (a *App) CommentLikes(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	rec, id, err := a.resolveComment(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}

	col := collection.New(func(ctx context.Context, page, size int) ([]*models.User, error) {
		return a.api.CommentLikes(ctx, id, page, size)
	}, a.config.PageSize, collection.CountBound[*models.User](func() int {
		return rec.Comment.LikeCount
	}))
	a.current = newListView(col, func(u *models.User) {
		printlnFn(fmt.Sprintf("[user #%d] %s", u.ID, u.FullName()))
	})
	return a.More(ctx)
}

// Share reposts a post with an optional own comment on top.
func (a *App) Share(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	content, err := getMultiline(a.reader, "Say something about this (optional)", os.Stdout)
	if err != nil {
		return err
	}

	share, err := a.api.CreateShare(ctx, id, content)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	if rec, ok := a.posts.Get(id); ok {
		rec.Post.ShareCount++
	}
	printlnFn(fmt.Sprintf("Shared as post #%d", share.ID))
	return nil
}

// PostShares opens the paged list of shares of a post.
func (a *App) PostShares(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}

	col := collection.New(func(ctx context.Context, page, size int) ([]*models.PostResponse, error) {
		items, err := a.api.PostShares(ctx, id, page, size)
		if err != nil {
			return nil, err
		}
		return a.resolvePosts(items), nil
	}, a.config.PageSize)
	a.current = newListView(col, renderPost)
	return a.More(ctx)
}

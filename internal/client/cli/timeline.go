package cli

import (
	"context"
	"fmt"

	"github.com/kpjunaid/socialgo/internal/client/collection"
	"github.com/kpjunaid/socialgo/internal/client/models"
)

// resolvePosts routes fetched posts through the per-session registry so all
// open views share one instance per post id and optimistic like updates are
// visible everywhere.
func (a *App) resolvePosts(items []*models.PostResponse) []*models.PostResponse {
	for i, item := range items {
		items[i] = a.posts.Resolve(item.Post.ID, item)
	}
	return items
}

// Timeline opens (or returns to) the feed. The feed collection survives
// across views, so its position is kept; Reset by logging out.
func (a *App) Timeline(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	if a.feed == nil {
		col := collection.New(func(ctx context.Context, page, size int) ([]*models.PostResponse, error) {
			items, err := a.api.TimelinePosts(ctx, page, size)
			if err != nil {
				return nil, err
			}
			return a.resolvePosts(items), nil
		}, a.config.PageSize)
		a.feed = newListView(col, renderPost)
	}
	a.current = a.feed
	return a.More(ctx)
}

// More loads the next page of the most recently opened list.
func (a *App) More(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	if a.current == nil {
		printlnFn("No open list; try 'timeline' first")
		return nil
	}
	if err := a.current.More(ctx); err != nil {
		return a.reportErr(ctx, err)
	}
	return nil
}

// Tags prints the popular-tag sidebar of the timeline.
func (a *App) Tags(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	tags, err := a.api.TimelineTags(ctx)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	for _, tag := range tags {
		printlnFn(fmt.Sprintf("#%s (%d)", tag.Name, tag.TagUseCounter))
	}
	return nil
}

// TagPosts opens the paged list of posts carrying a tag.
func (a *App) TagPosts(ctx context.Context, tag string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	col := collection.New(func(ctx context.Context, page, size int) ([]*models.PostResponse, error) {
		items, err := a.api.PostsByTag(ctx, tag, page, size)
		if err != nil {
			return nil, err
		}
		return a.resolvePosts(items), nil
	}, a.config.PageSize)
	a.current = newListView(col, renderPost)
	return a.More(ctx)
}

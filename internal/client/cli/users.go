package cli

import (
	"context"
	"fmt"

	"github.com/kpjunaid/socialgo/internal/client/collection"
	"github.com/kpjunaid/socialgo/internal/client/models"
)

// resolveUser returns the canonical shared instance for a user profile,
// fetching it when no open view has loaded it yet.
func (a *App) resolveUser(ctx context.Context, id int64) (*models.UserResponse, error) {
	if rec, ok := a.users.Get(id); ok {
		return rec, nil
	}
	rec, err := a.api.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.users.Resolve(id, rec), nil
}

// targetID resolves an optional id argument; empty means the logged-in user.
func (a *App) targetID(ctx context.Context, arg string) (int64, error) {
	if arg == "" {
		return a.session.CachedUserID(ctx)
	}
	return parseID(arg)
}

// Search opens the paged people search. The collection is restartable:
// a short page rewinds the cursor so repeating the search starts over.
func (a *App) Search(ctx context.Context, key string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	col := collection.New(func(ctx context.Context, page, size int) ([]*models.UserResponse, error) {
		items, err := a.api.SearchUsers(ctx, key, page, size)
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			items[i] = a.users.Resolve(item.User.ID, item)
		}
		return items, nil
	}, a.config.PageSize, collection.Restartable[*models.UserResponse]())
	a.current = newListView(col, renderUser)
	return a.More(ctx)
}

// Profile shows a user profile and opens their paged post list.
func (a *App) Profile(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := a.targetID(ctx, arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	rec, err := a.resolveUser(ctx, id)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	renderUser(rec)
	printlnFn(fmt.Sprintf("  following: %d", rec.User.FollowingCount))

	col := collection.New(func(ctx context.Context, page, size int) ([]*models.PostResponse, error) {
		items, err := a.api.UserPosts(ctx, id, page, size)
		if err != nil {
			return nil, err
		}
		return a.resolvePosts(items), nil
	}, a.config.PageSize)
	a.current = newListView(col, renderPost)
	return a.More(ctx)
}

// Followers opens the paged follower list of a user, bounded by the
// profile's follower counter.
func (a *App) Followers(ctx context.Context, arg string) error {
	return a.followList(ctx, arg, "followers")
}

// Following opens the paged list of users a profile follows, bounded by the
// profile's following counter.
func (a *App) Following(ctx context.Context, arg string) error {
	return a.followList(ctx, arg, "following")
}

func (a *App) followList(ctx context.Context, arg, kind string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := a.targetID(ctx, arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	rec, err := a.resolveUser(ctx, id)
	if err != nil {
		return a.reportErr(ctx, err)
	}

	fetch := a.api.Followers
	total := func() int { return rec.User.FollowerCount }
	if kind == "following" {
		fetch = a.api.Following
		total = func() int { return rec.User.FollowingCount }
	}

	col := collection.New(func(ctx context.Context, page, size int) ([]*models.UserResponse, error) {
		items, err := fetch(ctx, id, page, size)
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			items[i] = a.users.Resolve(item.User.ID, item)
		}
		return items, nil
	}, a.config.PageSize, collection.CountBound[*models.UserResponse](total))
	a.current = newListView(col, renderUser)
	return a.More(ctx)
}

// toggleFollow flips the follow state of a profile through the optimistic
// coordinator; the follower counter moves immediately and rolls back on a
// backend failure.
func (a *App) toggleFollow(ctx context.Context, arg string, want bool) error {
	id, err := parseID(arg)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	rec, err := a.resolveUser(ctx, id)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	if rec.Flagged() == want {
		printlnFn("Nothing to do")
		return nil
	}

	err = a.likes.Toggle(ctx, rec, func(ctx context.Context, enabled bool) error {
		if enabled {
			return a.api.Follow(ctx, id)
		}
		return a.api.Unfollow(ctx, id)
	})
	if err != nil {
		return a.reportErr(ctx, err)
	}
	printlnFn(fmt.Sprintf("%s now has %d followers", rec.User.FullName(), rec.User.FollowerCount))
	return nil
}

func (a *App) Follow(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.toggleFollow(ctx, arg, true)
}

func (a *App) Unfollow(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.toggleFollow(ctx, arg, false)
}

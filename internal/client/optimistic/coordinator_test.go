package optimistic

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpjunaid/socialgo/internal/client/models"
	"github.com/kpjunaid/socialgo/internal/logging"
)

func newCoordinator() *Coordinator {
	return NewCoordinator(logging.NewSlogLogger(slog.Default()))
}

func TestToggle_LikeAppliesBeforeCallResolves(t *testing.T) {
	rec := &models.PostResponse{Post: &models.Post{ID: 1, LikeCount: 3}}
	c := newCoordinator()

	var observedFlag bool
	var observedCount int
	err := c.Toggle(context.Background(), rec, func(ctx context.Context, enabled bool) error {
		// The local state is already flipped when the backend call runs.
		observedFlag = rec.LikedByAuthUser
		observedCount = rec.Post.LikeCount
		assert.True(t, enabled)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, observedFlag)
	assert.Equal(t, 4, observedCount)
	assert.True(t, rec.LikedByAuthUser)
	assert.Equal(t, 4, rec.Post.LikeCount)
}

func TestToggle_FullCycleRestoresState(t *testing.T) {
	rec := &models.UserResponse{User: &models.User{ID: 9, FollowerCount: 10}}
	c := newCoordinator()
	ctx := context.Background()

	noop := func(ctx context.Context, enabled bool) error { return nil }

	require.NoError(t, c.Toggle(ctx, rec, noop)) // follow
	assert.True(t, rec.FollowedByAuthUser)
	assert.Equal(t, 11, rec.User.FollowerCount)

	require.NoError(t, c.Toggle(ctx, rec, noop)) // unfollow
	assert.False(t, rec.FollowedByAuthUser)
	assert.Equal(t, 10, rec.User.FollowerCount)
}

func TestToggle_FailureRollsBack(t *testing.T) {
	rec := &models.CommentResponse{Comment: &models.Comment{ID: 5, LikeCount: 2}}
	c := newCoordinator()
	boom := errors.New("backend down")

	err := c.Toggle(context.Background(), rec, func(ctx context.Context, enabled bool) error {
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.False(t, rec.LikedByAuthUser, "flag rolled back")
	assert.Equal(t, 2, rec.Comment.LikeCount, "count rolled back")
}

func TestToggle_UnlikePassesDisabled(t *testing.T) {
	rec := &models.PostResponse{
		Post:            &models.Post{ID: 1, LikeCount: 5},
		LikedByAuthUser: true,
	}
	c := newCoordinator()

	err := c.Toggle(context.Background(), rec, func(ctx context.Context, enabled bool) error {
		assert.False(t, enabled, "turning off must invoke the off call")
		return nil
	})
	require.NoError(t, err)
	assert.False(t, rec.LikedByAuthUser)
	assert.Equal(t, 4, rec.Post.LikeCount)
}

func TestRegistry_ResolveReturnsCanonicalInstance(t *testing.T) {
	reg := NewRegistry[*models.PostResponse]()

	first := &models.PostResponse{Post: &models.Post{ID: 7, LikeCount: 1}}
	got := reg.Resolve(7, first)
	require.Same(t, first, got)

	// A second fetch of the same entity resolves to the first instance, so
	// mutations through either handle are visible to both views.
	second := &models.PostResponse{Post: &models.Post{ID: 7, LikeCount: 1}}
	got = reg.Resolve(7, second)
	require.Same(t, first, got)

	got.Post.LikeCount++
	cached, ok := reg.Get(7)
	require.True(t, ok)
	assert.Equal(t, 2, cached.Post.LikeCount)
}

func TestRegistry_DropAndClear(t *testing.T) {
	reg := NewRegistry[*models.PostResponse]()
	reg.Resolve(1, &models.PostResponse{Post: &models.Post{ID: 1}})
	reg.Resolve(2, &models.PostResponse{Post: &models.Post{ID: 2}})

	reg.Drop(1)
	_, ok := reg.Get(1)
	assert.False(t, ok)

	reg.Clear()
	_, ok = reg.Get(2)
	assert.False(t, ok)
}

package collection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedFetch serves a fixed backing slice as pages, counting calls.
func pagedFetch(backing []int, calls *int) FetchFunc[int] {
	return func(ctx context.Context, page, size int) ([]int, error) {
		*calls++
		start := (page - 1) * size
		if start >= len(backing) {
			return nil, nil
		}
		end := start + size
		if end > len(backing) {
			end = len(backing)
		}
		return backing[start:end], nil
	}
}

func TestRequestPage_AdvancesCursorAndAppends(t *testing.T) {
	var calls int
	c := New(pagedFetch([]int{1, 2, 3, 4, 5, 6, 7}, &calls), 5)

	require.NoError(t, c.RequestPage(context.Background()))

	assert.Equal(t, 2, c.Cursor())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Items())
	assert.True(t, c.HasMore())
	assert.False(t, c.Fetching())
}

// Full page then short page: the scenario from the pagination contract.
func TestShortPagePolicy_FiveThenTwo(t *testing.T) {
	var calls int
	c := New(pagedFetch([]int{1, 2, 3, 4, 5, 6, 7}, &calls), 5)
	ctx := context.Background()

	require.NoError(t, c.RequestPage(ctx))
	assert.Equal(t, 2, c.Cursor())
	assert.True(t, c.HasMore())

	require.NoError(t, c.RequestPage(ctx))
	assert.Equal(t, 3, c.Cursor())
	assert.False(t, c.HasMore())
	assert.Equal(t, 7, c.Len())
}

func TestCountBoundPolicy_TerminatesOnKnownTotal(t *testing.T) {
	var calls int
	likeCount := 7
	c := New(pagedFetch([]int{1, 2, 3, 4, 5, 6, 7}, &calls), 5,
		CountBound[int](func() int { return likeCount }))
	ctx := context.Background()

	require.NoError(t, c.RequestPage(ctx))
	assert.True(t, c.HasMore(), "1*5 < 7")

	require.NoError(t, c.RequestPage(ctx))
	assert.False(t, c.HasMore(), "2*5 >= 7")
	assert.Equal(t, 3, c.Cursor())
}

// An exactly-full final page under count-bound terminates without the
// probe request the short-page policy would need.
func TestCountBoundPolicy_ExactMultiple(t *testing.T) {
	var calls int
	c := New(pagedFetch([]int{1, 2, 3, 4, 5}, &calls), 5,
		CountBound[int](func() int { return 5 }))

	require.NoError(t, c.RequestPage(context.Background()))
	assert.False(t, c.HasMore())
}

func TestRequestPage_ErrorLeavesCursorAndItems(t *testing.T) {
	boom := errors.New("backend down")
	fails := true
	var calls int
	c := New(func(ctx context.Context, page, size int) ([]int, error) {
		calls++
		if fails {
			return nil, boom
		}
		return []int{1}, nil
	}, 5)
	ctx := context.Background()

	err := c.RequestPage(ctx)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.Cursor(), "cursor never advances on error")
	assert.True(t, c.HasMore(), "hasMore unchanged on error")
	assert.Zero(t, c.Len())
	assert.False(t, c.Fetching(), "fetching reset so the user may retry")

	// Manual retry succeeds.
	fails = false
	require.NoError(t, c.RequestPage(ctx))
	assert.Equal(t, 2, c.Cursor())
	assert.Equal(t, 2, calls)
}

func TestRequestPage_ReentrancyGuard(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int

	c := New(func(ctx context.Context, page, size int) ([]int, error) {
		calls++
		close(started)
		<-release
		return []int{1}, nil
	}, 5)

	done := make(chan error)
	go func() { done <- c.RequestPage(context.Background()) }()

	<-started
	// A second request while the first is in flight is a silent no-op.
	require.NoError(t, c.RequestPage(context.Background()))
	assert.Equal(t, 1, calls, "no second network call")
	assert.Equal(t, 1, c.Cursor(), "state untouched by the no-op")

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 2, c.Cursor())
	assert.Equal(t, 1, calls)
}

func TestRestartable_ShortPageResetsCursor(t *testing.T) {
	var calls int
	c := New(pagedFetch([]int{1, 2, 3}, &calls), 5, Restartable[int]())

	require.NoError(t, c.RequestPage(context.Background()))
	assert.False(t, c.HasMore())
	assert.Equal(t, 1, c.Cursor(), "restartable list rewinds on exhaustion")
	assert.Equal(t, 3, c.Len(), "items are kept")
}

func TestItems_ArrivalOrderWithDuplicates(t *testing.T) {
	pages := [][]int{{3, 1, 3}, {1}}
	var calls int
	c := New(func(ctx context.Context, page, size int) ([]int, error) {
		calls++
		return pages[page-1], nil
	}, 3)
	ctx := context.Background()

	require.NoError(t, c.RequestPage(ctx))
	require.NoError(t, c.RequestPage(ctx))

	assert.Equal(t, []int{3, 1, 3, 1}, c.Items(), "no deduplication, arrival order")
}

func TestReset_ReturnsToInitialState(t *testing.T) {
	var calls int
	c := New(pagedFetch([]int{1, 2, 3, 4, 5, 6}, &calls), 5)
	ctx := context.Background()

	require.NoError(t, c.RequestPage(ctx))
	require.NoError(t, c.RequestPage(ctx))
	require.False(t, c.HasMore())

	c.Reset()

	assert.Equal(t, 1, c.Cursor())
	assert.Zero(t, c.Len())
	assert.True(t, c.HasMore())
}

func TestRequestPage_ContextCancellationSurfacesError(t *testing.T) {
	c := New(func(ctx context.Context, page, size int) ([]int, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return []int{1}, nil
		}
	}, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.RequestPage(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, c.Cursor())
}

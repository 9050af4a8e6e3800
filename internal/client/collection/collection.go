// Package collection implements the incremental-loading state machine every
// paged list view sits on: notifications, likes, followers, comments,
// shares, search results, timeline and profile posts.
package collection

import (
	"context"
	"sync"
)

// FetchFunc loads one page. page is 1-based; size is fixed per collection.
type FetchFunc[T any] func(ctx context.Context, page, size int) ([]T, error)

// Option configures a Collection.
type Option[T any] func(*Collection[T])

// CountBound selects the count-bound termination policy: the parent entity
// exposes a known total (a counter field), and the collection is exhausted
// once page*size reaches it. Used for like and follower lists.
func CountBound[T any](total func() int) Option[T] {
	return func(c *Collection[T]) { c.total = total }
}

// Restartable resets the cursor to 1 when a short page is detected, so the
// next open of the view reloads from the start. A deliberate simplification
// for search-style views; feed-style views don't want it.
func Restartable[T any]() Option[T] {
	return func(c *Collection[T]) { c.restartable = true }
}

// Collection accumulates pages of T in arrival order. Without options the
// short-page policy applies: a page smaller than the requested size signals
// exhaustion. The two policies must not be mixed on one collection; pick
// one per list and keep it.
type Collection[T any] struct {
	fetch    FetchFunc[T]
	pageSize int

	total       func() int // nil selects the short-page policy
	restartable bool

	mu       sync.Mutex
	items    []T
	cursor   int
	hasMore  bool
	fetching bool
}

// New returns an empty collection positioned at page 1.
func New[T any](fetch FetchFunc[T], pageSize int, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		fetch:    fetch,
		pageSize: pageSize,
		cursor:   1,
		hasMore:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestPage fetches the page at the current cursor and appends the result.
//
// While a fetch is in flight further calls are no-ops; the guard keeps
// overlapping fetches from double-appending a page and gives a total order
// on page arrivals. On success the cursor advances by exactly one and
// hasMore is recomputed per policy. On error only the fetching flag resets:
// cursor and hasMore stay put and the caller may retry manually.
func (c *Collection[T]) RequestPage(ctx context.Context) error {
	c.mu.Lock()
	if c.fetching {
		c.mu.Unlock()
		return nil
	}
	c.fetching = true
	page := c.cursor
	c.mu.Unlock()

	items, err := c.fetch(ctx, page, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetching = false
	if err != nil {
		return err
	}

	c.items = append(c.items, items...)
	c.cursor++

	if c.total != nil {
		c.hasMore = page*c.pageSize < c.total()
	} else {
		c.hasMore = len(items) >= c.pageSize
		if !c.hasMore && c.restartable {
			c.cursor = 1
		}
	}
	return nil
}

// Reset returns the collection to its initial state so a view can reload
// from page 1.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetching {
		return
	}
	c.items = nil
	c.cursor = 1
	c.hasMore = true
}

// Items returns the accumulated items in arrival order. Duplicates are kept
// as delivered; the backend owns ordering.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Len reports how many items have arrived so far.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Cursor is the next page the collection will request.
func (c *Collection[T]) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// HasMore reports whether another page is worth requesting.
func (c *Collection[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Fetching reports whether a fetch is currently in flight.
func (c *Collection[T]) Fetching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetching
}

// PageSize is the fixed size requested per page.
func (c *Collection[T]) PageSize() int {
	return c.pageSize
}

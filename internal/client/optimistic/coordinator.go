// Package optimistic applies toggle-style mutations (like/unlike,
// follow/unfollow) to local records before the backend confirms them, and
// rolls them back if the call fails.
package optimistic

import (
	"context"

	"github.com/kpjunaid/socialgo/internal/logging"
)

// Counted is a record carrying a count paired with a viewer-relative flag,
// e.g. likeCount with likedByAuthUser. The two always move together.
type Counted interface {
	Flagged() bool
	SetFlagged(bool)
	AdjustCount(delta int)
}

// Coordinator performs optimistic toggles. The local flip happens before
// the network call; a failed call rolls the flip back so displayed counters
// never drift from what the backend accepted. (The browser client kept the
// optimistic state on failure and relied on the next full reload; rollback
// is the deliberate replacement for that gap.)
type Coordinator struct {
	log logging.Logger
}

func NewCoordinator(log logging.Logger) *Coordinator {
	return &Coordinator{log: log}
}

// Toggle flips rec and invokes apply with the new flag state: true means
// the "on" call (like, follow), false the "off" call. A flag turning on
// adjusts the counter by +1, turning off by -1, so one full toggle cycle
// returns both to their starting values.
func (c *Coordinator) Toggle(ctx context.Context, rec Counted, apply func(ctx context.Context, enabled bool) error) error {
	enable := !rec.Flagged()
	delta := 1
	if !enable {
		delta = -1
	}

	rec.SetFlagged(enable)
	rec.AdjustCount(delta)

	if err := apply(ctx, enable); err != nil {
		rec.SetFlagged(!enable)
		rec.AdjustCount(-delta)
		c.log.Warn(ctx, "optimistic toggle rolled back", "error", err)
		return err
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/kpjunaid/socialgo/internal/client/collection"
	"github.com/kpjunaid/socialgo/internal/client/models"
)

// listView adapts a collection to the REPL: each More call loads one page
// and prints only the items that arrived with it.
type listView[T any] struct {
	col    *collection.Collection[T]
	render func(T)
	shown  int
}

func newListView[T any](col *collection.Collection[T], render func(T)) *listView[T] {
	return &listView[T]{col: col, render: render}
}

func (v *listView[T]) More(ctx context.Context) error {
	if !v.col.HasMore() {
		printlnFn("No more items")
		return nil
	}
	if err := v.col.RequestPage(ctx); err != nil {
		return err
	}
	items := v.col.Items()
	if len(items) == v.shown {
		printlnFn("No more items")
	}
	for _, item := range items[v.shown:] {
		v.render(item)
	}
	v.shown = len(items)
	return nil
}

func (v *listView[T]) HasMore() bool {
	return v.col.HasMore()
}

func renderPost(r *models.PostResponse) {
	p := r.Post
	liked := " "
	if r.LikedByAuthUser {
		liked = "*"
	}
	kind := "post"
	if p.IsTypeShare {
		kind = "share"
	}
	author := ""
	if p.Author != nil {
		author = p.Author.FullName()
	}
	printlnFn(fmt.Sprintf("[%s #%d]%s %s: %s", kind, p.ID, liked, author, firstLine(p.Content)))
	printlnFn(fmt.Sprintf("       likes: %d, comments: %d, shares: %d", p.LikeCount, p.CommentCount, p.ShareCount))
}

func renderComment(r *models.CommentResponse) {
	c := r.Comment
	liked := " "
	if r.LikedByAuthUser {
		liked = "*"
	}
	author := ""
	if c.Author != nil {
		author = c.Author.FullName()
	}
	printlnFn(fmt.Sprintf("  [comment #%d]%s %s: %s (likes: %d)", c.ID, liked, author, firstLine(c.Content), c.LikeCount))
}

func renderUser(r *models.UserResponse) {
	u := r.User
	followed := ""
	if r.FollowedByAuthUser {
		followed = " (following)"
	}
	printlnFn(fmt.Sprintf("[user #%d] %s%s - followers: %d", u.ID, u.FullName(), followed, u.FollowerCount))
}

func renderNotification(n *models.Notification) {
	mark := " "
	if !n.IsRead {
		mark = "*"
	}
	who := ""
	if n.Sender != nil {
		who = n.Sender.FullName()
	}
	printlnFn(fmt.Sprintf("[%s]%s %s", n.Type, mark, who))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " ..."
	}
	return s
}

package models

// Comment is a post comment; LikeCount pairs with LikedByAuthUser on the
// surrounding CommentResponse.
type Comment struct {
	ID               int64  `json:"id"`
	Content          string `json:"content"`
	LikeCount        int    `json:"likeCount"`
	DateCreated      string `json:"dateCreated,omitempty"`
	DateLastModified string `json:"dateLastModified,omitempty"`
	Author           *User  `json:"author,omitempty"`
}

// CommentResponse pairs a comment with the viewer-relative like flag.
type CommentResponse struct {
	Comment         *Comment `json:"comment"`
	LikedByAuthUser bool     `json:"likedByAuthUser"`
}

// Flagged reports the viewer-relative like flag for the optimistic
// coordinator.
func (r *CommentResponse) Flagged() bool { return r.LikedByAuthUser }

func (r *CommentResponse) SetFlagged(v bool) { r.LikedByAuthUser = v }

func (r *CommentResponse) AdjustCount(delta int) { r.Comment.LikeCount += delta }

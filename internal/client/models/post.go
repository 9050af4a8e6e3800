package models

// Tag labels posts; the timeline sidebar lists popular tags.
type Tag struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	TagUseCounter int    `json:"tagUseCounter,omitempty"`
}

// Post is the core feed entity. A share is itself a post with IsTypeShare
// set and SharedPost pointing at the original.
type Post struct {
	ID               int64  `json:"id"`
	Content          string `json:"content"`
	PostPhoto        string `json:"postPhoto,omitempty"`
	LikeCount        int    `json:"likeCount"`
	CommentCount     int    `json:"commentCount"`
	ShareCount       int    `json:"shareCount"`
	DateCreated      string `json:"dateCreated,omitempty"`
	DateLastModified string `json:"dateLastModified,omitempty"`
	IsTypeShare      bool   `json:"isTypeShare"`
	Author           *User  `json:"author,omitempty"`
	SharedPost       *Post  `json:"sharedPost,omitempty"`
	PostTags         []Tag  `json:"postTags,omitempty"`
}

// PostResponse pairs a post with the viewer-relative like flag.
type PostResponse struct {
	Post            *Post `json:"post"`
	LikedByAuthUser bool  `json:"likedByAuthUser"`
}

// Flagged reports the viewer-relative like flag for the optimistic
// coordinator.
func (r *PostResponse) Flagged() bool { return r.LikedByAuthUser }

func (r *PostResponse) SetFlagged(v bool) { r.LikedByAuthUser = v }

func (r *PostResponse) AdjustCount(delta int) { r.Post.LikeCount += delta }

package models

// Notification types used by the backend.
const (
	NotificationTypeLike    = "Like"
	NotificationTypeComment = "Comment"
	NotificationTypeShare   = "Share"
	NotificationTypeFollow  = "Follow"
)

// Notification is delivered in the paged /notifications list. IsSeen flips
// on mark-seen for the whole page, IsRead on mark-read per item or for all.
type Notification struct {
	ID               int64    `json:"id"`
	Type             string   `json:"type"`
	Receiver         *User    `json:"receiver,omitempty"`
	Sender           *User    `json:"sender,omitempty"`
	OwningPost       *Post    `json:"owningPost,omitempty"`
	OwningComment    *Comment `json:"owningComment,omitempty"`
	IsSeen           bool     `json:"isSeen"`
	IsRead           bool     `json:"isRead"`
	DateCreated      string   `json:"dateCreated,omitempty"`
	DateUpdated      string   `json:"dateUpdated,omitempty"`
	DateLastModified string   `json:"dateLastModified,omitempty"`
}

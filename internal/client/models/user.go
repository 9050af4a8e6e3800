// Package models defines the wire types exchanged with the social-network
// backend. Field names and JSON tags follow the backend DTOs.
package models

// Country is a reference entity attached to user profiles.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is the account entity returned by the backend. FollowerCount and
// FollowingCount are the counters the optimistic follow toggle keeps in
// step with FollowedByAuthUser on the surrounding UserResponse.
type User struct {
	ID               int64    `json:"id"`
	Email            string   `json:"email"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Gender           string   `json:"gender,omitempty"`
	Intro            string   `json:"intro,omitempty"`
	Hometown         string   `json:"hometown,omitempty"`
	CurrentCity      string   `json:"currentCity,omitempty"`
	EduInstitution   string   `json:"eduInstitution,omitempty"`
	Workplace        string   `json:"workplace,omitempty"`
	Country          *Country `json:"country,omitempty"`
	ProfilePhoto     string   `json:"profilePhoto,omitempty"`
	CoverPhoto       string   `json:"coverPhoto,omitempty"`
	Role             string   `json:"role,omitempty"`
	FollowerCount    int      `json:"followerCount"`
	FollowingCount   int      `json:"followingCount"`
	Enabled          bool     `json:"enabled"`
	AccountVerified  bool     `json:"accountVerified"`
	EmailVerified    bool     `json:"emailVerified"`
	BirthDate        string   `json:"birthDate,omitempty"`
	JoinDate         string   `json:"joinDate,omitempty"`
	DateLastModified string   `json:"dateLastModified,omitempty"`
}

// FullName is a display helper used by the CLI views.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserResponse pairs a user with the viewer-relative follow flag.
type UserResponse struct {
	User               *User `json:"user"`
	FollowedByAuthUser bool  `json:"followedByAuthUser"`
}

// Flagged reports the viewer-relative follow flag; together with
// AdjustCount it lets the optimistic coordinator move flag and counter as
// one unit.
func (r *UserResponse) Flagged() bool { return r.FollowedByAuthUser }

func (r *UserResponse) SetFlagged(v bool) { r.FollowedByAuthUser = v }

func (r *UserResponse) AdjustCount(delta int) { r.User.FollowerCount += delta }

package api

import (
	"context"

	"github.com/kpjunaid/socialgo/internal/client/models"
)

// UpdateInfoRequest carries the editable profile fields.
type UpdateInfoRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Gender         string `json:"gender,omitempty"`
	Intro          string `json:"intro,omitempty"`
	Hometown       string `json:"hometown,omitempty"`
	CurrentCity    string `json:"currentCity,omitempty"`
	EduInstitution string `json:"eduInstitution,omitempty"`
	Workplace      string `json:"workplace,omitempty"`
	CountryName    string `json:"countryName,omitempty"`
	BirthDate      string `json:"birthDate,omitempty"`
}

// UpdateEmailRequest changes the account email; the backend sends a new
// verification mail and the session must be re-established afterwards.
type UpdateEmailRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePasswordRequest changes the account password; like an email change
// it forces a fresh login.
type UpdatePasswordRequest struct {
	Password       string `json:"password"`
	PasswordRepeat string `json:"passwordRepeat"`
	OldPassword    string `json:"oldPassword"`
}

// UpdateInfo updates profile fields and returns the fresh user snapshot.
func (c *Client) UpdateInfo(ctx context.Context, req UpdateInfoRequest) (*models.User, error) {
	var out models.User
	if err := c.postJSON(ctx, "/account/update/info", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmail changes the account email address.
func (c *Client) UpdateEmail(ctx context.Context, req UpdateEmailRequest) error {
	return c.postJSON(ctx, "/account/update/email", req, nil)
}

// UpdatePassword changes the account password.
func (c *Client) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error {
	return c.postJSON(ctx, "/account/update/password", req, nil)
}

// UpdateProfilePhoto uploads a new profile photo.
func (c *Client) UpdateProfilePhoto(ctx context.Context, photo []byte, name string) (*models.User, error) {
	return c.uploadPhoto(ctx, "/account/update/profile-photo", "profilePhoto", photo, name)
}

// UpdateCoverPhoto uploads a new cover photo.
func (c *Client) UpdateCoverPhoto(ctx context.Context, photo []byte, name string) (*models.User, error) {
	return c.uploadPhoto(ctx, "/account/update/cover-photo", "coverPhoto", photo, name)
}

func (c *Client) uploadPhoto(ctx context.Context, path, field string, photo []byte, name string) (*models.User, error) {
	var out models.User
	files := []filePart{{field: field, name: name, content: photo}}
	if err := c.postMultipart(ctx, path, nil, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

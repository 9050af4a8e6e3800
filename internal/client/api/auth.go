package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kpjunaid/socialgo/internal/client/models"
)

// TokenHeader is the response header carrying the bearer token issued on
// login.
const TokenHeader = "Jwt-Token"

// SignupRequest is the registration payload. Registration never issues a
// token; the account must verify its email before the first login.
type SignupRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	PasswordRepeat string `json:"passwordRepeat"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
}

// LoginRequest is the credential payload for /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest carries the new password for a reset token.
type ResetPasswordRequest struct {
	Password       string `json:"password"`
	PasswordRepeat string `json:"passwordRepeat"`
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.postJSON(ctx, "/signup", req, nil)
}

// Login authenticates and returns the user from the body together with the
// token from the Jwt-Token response header.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.User, string, error) {
	var user models.User
	headers, err := c.doWithHeaders(ctx, http.MethodPost, "/login", req, &user)
	if err != nil {
		return nil, "", err
	}
	return &user, headers.Get(TokenHeader), nil
}

// VerifyEmail redeems an email-verification token.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.postEmpty(ctx, "/verify-email/"+url.PathEscape(token), nil, nil)
}

// ForgotPassword asks the backend to send a reset email. The backend
// responds identically whether or not the address exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	q := url.Values{}
	q.Set("email", email)
	return c.postEmpty(ctx, "/forgot-password", q, nil)
}

// ResetPassword redeems a reset token with the new password.
func (c *Client) ResetPassword(ctx context.Context, token string, req ResetPasswordRequest) error {
	return c.postJSON(ctx, "/reset-password/"+url.PathEscape(token), req, nil)
}

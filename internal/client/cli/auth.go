package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/kpjunaid/socialgo/internal/client/api"
	"github.com/kpjunaid/socialgo/internal/client/mailbox"
	"github.com/kpjunaid/socialgo/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Signup prompts for account details and registers a new account.
//
// On success the canonical activation message is posted to the mailbox and
// shown immediately; its ToLogin hint mirrors the post-signup redirect.
// The password byte slices are wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	repeat, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(repeat)

	err = a.gateway.Signup(ctx, api.SignupRequest{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Password:       string(password),
		PasswordRepeat: string(repeat),
	})
	if err != nil {
		return a.reportErr(ctx, err)
	}

	_ = a.box.Post(ctx, mailbox.SignupSuccess())
	return a.Message(ctx)
}

// Login prompts for credentials and authenticates through the gateway.
// On success the session is persisted by the gateway; here we only greet.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.gateway.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return a.reportErr(ctx, err)
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome, %s!", user.FullName()))
	return nil
}

// Logout clears the persisted session through the gateway.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gateway.Logout(ctx); err != nil {
		return a.reportErr(ctx, err)
	}
	a.user = nil
	printlnFn("Logged out")
	return nil
}

// VerifyEmail submits an email verification token.
func (a *App) VerifyEmail(ctx context.Context, token string) error {
	if err := a.api.VerifyEmail(ctx, token); err != nil {
		return a.reportErr(ctx, err)
	}
	_ = a.box.Post(ctx, mailbox.EmailVerifySuccess())
	return a.Message(ctx)
}

// ForgotPassword prompts for an email and requests a reset link.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.api.ForgotPassword(ctx, email); err != nil {
		return a.reportErr(ctx, err)
	}
	_ = a.box.Post(ctx, mailbox.ForgotPasswordSuccess())
	return a.Message(ctx)
}

// ResetPassword sets a new password for a reset token.
func (a *App) ResetPassword(ctx context.Context, token string) error {
	password, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	repeat, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(repeat)

	err = a.api.ResetPassword(ctx, token, api.ResetPasswordRequest{
		Password:       string(password),
		PasswordRepeat: string(repeat),
	})
	if err != nil {
		return a.reportErr(ctx, err)
	}
	_ = a.box.Post(ctx, mailbox.PasswordChangeSuccess())
	return a.Message(ctx)
}

// ChangePassword updates the account password. A successful change
// invalidates the session, so the user is logged out afterwards.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	old, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(old)
	password, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	repeat, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(repeat)

	err = a.api.UpdatePassword(ctx, api.UpdatePasswordRequest{
		OldPassword:    string(old),
		Password:       string(password),
		PasswordRepeat: string(repeat),
	})
	if err != nil {
		return a.reportErr(ctx, err)
	}

	_ = a.box.Post(ctx, mailbox.PasswordChangeSuccess())
	_ = a.gateway.Logout(ctx)
	a.user = nil
	return a.Message(ctx)
}

// ChangeEmail updates the account email. The new address must be verified
// before the next login, so the session is closed afterwards.
func (a *App) ChangeEmail(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	email, err := getSimpleText(a.reader, "New email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.api.UpdateEmail(ctx, api.UpdateEmailRequest{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return a.reportErr(ctx, err)
	}

	_ = a.box.Post(ctx, mailbox.EmailChangeSuccess())
	_ = a.gateway.Logout(ctx)
	a.user = nil
	return a.Message(ctx)
}

// Whoami prints the cached account snapshot.
func (a *App) Whoami(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	printlnFn(fmt.Sprintf("#%d %s <%s>", a.user.ID, a.user.FullName(), a.user.Email))
	printlnFn(fmt.Sprintf("  followers: %d, following: %d", a.user.FollowerCount, a.user.FollowingCount))
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/kpjunaid/socialgo/internal/client/api"
	"github.com/kpjunaid/socialgo/internal/client/models"
	"github.com/kpjunaid/socialgo/internal/filex"
)

// promptField asks for a profile field showing its current value; an empty
// answer keeps it.
func (a *App) promptField(label, current string) (string, error) {
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), os.Stdout)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// Settings walks through the editable profile fields and submits the result.
// The fresh user snapshot replaces both the in-memory user and the cached
// session copy.
func (a *App) Settings(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	u := a.user

	req := api.UpdateInfoRequest{}
	fields := []struct {
		label   string
		current string
		dst     *string
	}{
		{"First name", u.FirstName, &req.FirstName},
		{"Last name", u.LastName, &req.LastName},
		{"Gender", u.Gender, &req.Gender},
		{"Intro", u.Intro, &req.Intro},
		{"Hometown", u.Hometown, &req.Hometown},
		{"Current city", u.CurrentCity, &req.CurrentCity},
		{"Education", u.EduInstitution, &req.EduInstitution},
		{"Workplace", u.Workplace, &req.Workplace},
		{"Birth date", u.BirthDate, &req.BirthDate},
	}
	if u.Country != nil {
		req.CountryName = u.Country.Name
	}
	for _, f := range fields {
		v, err := a.promptField(f.label, f.current)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	country, err := a.promptField("Country", req.CountryName)
	if err != nil {
		return err
	}
	req.CountryName = country

	updated, err := a.api.UpdateInfo(ctx, req)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	a.applyUserUpdate(ctx, updated)
	printlnFn("Profile updated")
	return nil
}

// ProfilePhoto uploads a new profile photo from a local file.
func (a *App) ProfilePhoto(ctx context.Context, path string) error {
	return a.updatePhoto(ctx, path, a.api.UpdateProfilePhoto)
}

// CoverPhoto uploads a new cover photo from a local file.
func (a *App) CoverPhoto(ctx context.Context, path string) error {
	return a.updatePhoto(ctx, path, a.api.UpdateCoverPhoto)
}

func (a *App) updatePhoto(ctx context.Context, path string, upload func(context.Context, []byte, string) (*models.User, error)) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	photo, name, err := filex.LoadPhoto(path)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	updated, err := upload(ctx, photo, name)
	if err != nil {
		return a.reportErr(ctx, err)
	}
	a.applyUserUpdate(ctx, updated)
	printlnFn("Photo updated")
	return nil
}

// applyUserUpdate installs a fresh account snapshot in memory and in the
// session cache, so the next restore starts from the edited profile.
func (a *App) applyUserUpdate(ctx context.Context, u *models.User) {
	a.user = u
	if err := a.session.CacheUser(ctx, u); err != nil {
		a.log.Warn(ctx, "cache user failed", "error", err)
	}
}

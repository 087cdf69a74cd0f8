package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/railticket/internal/client/models"
	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/dmitrijs2005/railticket/internal/filex"
)

// maxAvatarSize caps profile images read from disk.
const maxAvatarSize = 5 << 20

// WhoAmI prints the profile of the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.authService.User()
	switch {
	case !ok:
		fmt.Fprintln(a.out, "Still loading your profile, try again in a moment.")
		return nil
	case u == nil:
		fmt.Fprintln(a.out, "You are not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "Name:      %s\n", u.FullName())
	fmt.Fprintf(a.out, "User name: %s\n", u.UserName)
	fmt.Fprintf(a.out, "Email:     %s\n", u.Email)
	fmt.Fprintf(a.out, "Phone:     %s\n", u.Phone)
	if u.Gender != nil {
		fmt.Fprintf(a.out, "Gender:    %s\n", *u.Gender)
	}
	if u.ProfileImage != nil {
		fmt.Fprintln(a.out, "Avatar:    yes (use 'avatar-url')")
	}
	fmt.Fprintf(a.out, "Member since %s\n", u.CreatedAt.Format("2006-01-02"))
	return nil
}

// EditProfile asks for each field in turn; empty answers keep the current value.
func (a *App) EditProfile(ctx context.Context) error {
	var patch models.ProfilePatch
	prompts := []struct {
		label string
		dst   **string
	}{
		{"First name", &patch.FirstName},
		{"Last name", &patch.LastName},
		{"User name", &patch.UserName},
		{"Email", &patch.Email},
		{"Phone", &patch.Phone},
		{"Gender", &patch.Gender},
	}
	for _, p := range prompts {
		v, err := getOptionalText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	change, err := confirm(a.reader, "Change password?", a.out)
	if err != nil {
		return err
	}
	if change {
		pw, err := getPassword(a.out)
		if err != nil {
			return err
		}
		s := string(pw)
		common.WipeByteArray(pw)
		patch.Password = &s
	}

	if patch.Empty() {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()
	if err := a.authService.UpdateProfile(cctx, patch); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// UploadAvatar reads an image from path and makes it the profile image.
func (a *App) UploadAvatar(ctx context.Context, path string) error {
	data, err := filex.ReadLimited(path, maxAvatarSize)
	if err != nil {
		if errors.Is(err, filex.ErrFileTooLarge) {
			fmt.Fprintf(a.out, "File is larger than %d MiB.\n", maxAvatarSize>>20)
			return err
		}
		fmt.Fprintln(a.out, "Cannot read file:", err)
		return err
	}

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()
	if err := a.authService.UploadProfileImage(cctx, http.DetectContentType(data), data); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Avatar uploaded.")
	return nil
}

// AvatarURL prints a temporary download link for the profile image.
func (a *App) AvatarURL(ctx context.Context) error {
	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	url, err := a.authService.ProfileImageURL(cctx)
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintln(a.out, "No avatar uploaded.")
		return nil
	}
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, url)
	return nil
}

// Exists checks whether an email, user name or phone number is registered.
func (a *App) Exists(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Email, user name or phone", a.out)
	if err != nil {
		return err
	}
	c := models.CredentialsFor(identifier, "")

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()
	found, err := a.authService.IdentityExists(cctx, models.IdentityQuery{Email: c.Email, UserName: c.UserName, Phone: c.Phone})
	if err != nil {
		return a.report(err)
	}
	if found {
		fmt.Fprintf(a.out, "%s is registered.\n", identifier)
	} else {
		fmt.Fprintf(a.out, "%s is free.\n", identifier)
	}
	return nil
}

// DeleteAccount removes the signed-in account after confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	ok, err := confirm(a.reader, "Delete your account permanently?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()
	if err := a.authService.DeleteAccount(cctx); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Account deleted.")
	return nil
}

// Reset wipes all locally stored data and signs out.
func (a *App) Reset(ctx context.Context) error {
	ok, err := confirm(a.reader, "Erase all local data?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.authService.SignOut(ctx); err != nil {
		return a.report(err)
	}
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "error clearing local data", "error", err)
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Local data erased.")
	return nil
}

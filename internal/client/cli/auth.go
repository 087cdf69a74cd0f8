package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/railticket/internal/client/client"
	"github.com/dmitrijs2005/railticket/internal/client/models"
	"github.com/dmitrijs2005/railticket/internal/common"
)

// getSimpleText, getOptionalText, getPassword and confirm are indirections
// used to facilitate testing. They point to interactive input helpers and can
// be swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
	confirm         = Confirm
)

// describeError turns service errors into a line for the user.
func describeError(err error) string {
	var dup *common.DuplicateIdentityError
	switch {
	case errors.As(err, &dup):
		return fmt.Sprintf("That %s is already registered.", dup.Field)
	case errors.Is(err, common.ErrIdentityNotFound):
		return "No account matches that email, username or phone."
	case errors.Is(err, common.ErrWrongPassword):
		return "Wrong password."
	case errors.Is(err, common.ErrTooManyAttempts):
		return "Too many sign-in attempts. Wait a moment and try again."
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable. Try again later."
	case errors.Is(err, client.ErrUnauthorized):
		return "You need to sign in first."
	case errors.Is(err, context.DeadlineExceeded):
		return "The server took too long to answer."
	default:
		return err.Error()
	}
}

func (a *App) report(err error) error {
	fmt.Fprintln(a.out, describeError(err))
	return err
}

// Register prompts for the account fields and a password, creates the
// account and signs it in. An email already in use is reported before the
// password is asked for.
func (a *App) Register(ctx context.Context) error {
	var nu models.NewUser
	prompts := []struct {
		label string
		dst   *string
	}{
		{"First name", &nu.FirstName},
		{"Last name", &nu.LastName},
		{"User name", &nu.UserName},
		{"Email", &nu.Email},
		{"Phone", &nu.Phone},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	gender, err := getOptionalText(a.reader, "Gender", a.out)
	if err != nil {
		return err
	}
	nu.Gender = gender

	cctx, cancel := a.withTimeout(ctx)
	taken, err := a.authService.IdentityExists(cctx, models.IdentityQuery{Email: nu.Email})
	cancel()
	if err == nil && taken {
		return a.report(&common.DuplicateIdentityError{Field: "email"})
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	nu.Password = string(password)

	cctx, cancel = a.withTimeout(ctx)
	defer cancel()
	if err := a.authService.SignUp(cctx, nu); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Success! You are signed in.")
	return nil
}

// Login prompts for an email, user name or phone number and a password.
// A rejected attempt also ends any previous session.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Email, user name or phone", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.authService.SignIn(cctx, models.CredentialsFor(identifier, string(password))); err != nil {
		a.logger.Info(ctx, "login unsuccessful", "error", err)
		return a.report(err)
	}

	u, err := a.authService.WaitUser(cctx)
	if err != nil || u == nil {
		fmt.Fprintln(a.out, "Login successful.")
		return nil
	}
	fmt.Fprintf(a.out, "Login successful. Welcome, %s!\n", u.FullName())
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.SignOut(ctx); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

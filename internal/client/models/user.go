// Package models defines client-side data models used by the railticket CLI.
package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/dmitrijs2005/railticket/internal/common"
)

// User is the signed-in account as the backend reports it.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	UserName     string
	Email        string
	Phone        string
	Gender       *string
	ProfileImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Credentials identify an account by user name, email or phone. When more
// than one identity field is set the backend tries them in that order.
type Credentials struct {
	UserName string
	Email    string
	Phone    string
	Password string
}

// CredentialsFor guesses which identity field identifier belongs to: an
// address with '@' is an email, digits (with an optional leading '+' and
// separators) are a phone number, anything else is a user name.
func CredentialsFor(identifier, password string) Credentials {
	identifier = strings.TrimSpace(identifier)
	switch {
	case strings.Contains(identifier, "@"):
		return Credentials{Email: identifier, Password: password}
	case looksLikePhone(identifier):
		return Credentials{Phone: identifier, Password: password}
	default:
		return Credentials{UserName: identifier, Password: password}
	}
}

func looksLikePhone(s string) bool {
	s = strings.TrimPrefix(s, "+")
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 5
}

// NewUser is a registration request.
type NewUser struct {
	FirstName string
	LastName  string
	UserName  string
	Email     string
	Phone     string
	Password  string
	Gender    *string
}

const minPasswordLen = 6

// Validate checks the fields the backend would reject anyway, so the user can
// fix them without a round trip.
func (n NewUser) Validate() error {
	required := []struct{ name, value string }{
		{"first name", n.FirstName},
		{"last name", n.LastName},
		{"user name", n.UserName},
		{"email", n.Email},
		{"phone", n.Phone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, f.name)
		}
	}
	if strings.ContainsAny(n.UserName, " @") {
		return fmt.Errorf("%w: user name must not contain spaces or '@'", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(n.Email); err != nil {
		return fmt.Errorf("%w: email is malformed", common.ErrorValidation)
	}
	if !looksLikePhone(n.Phone) {
		return fmt.Errorf("%w: phone is malformed", common.ErrorValidation)
	}
	if len(n.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLen)
	}
	return nil
}

// ProfilePatch lists the profile fields to change; nil fields stay as they are.
type ProfilePatch struct {
	FirstName    *string
	LastName     *string
	UserName     *string
	Email        *string
	Phone        *string
	Password     *string
	Gender       *string
	ProfileImage *string
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.UserName == nil &&
		p.Email == nil && p.Phone == nil && p.Password == nil &&
		p.Gender == nil && p.ProfileImage == nil
}

// IdentityQuery asks whether any account already uses one of the set values.
type IdentityQuery struct {
	Email    string
	UserName string
	Phone    string
}

package models

import "time"

// User is a row of the users table.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	UserName     string
	Email        string
	Phone        string
	Gender       *string
	ProfileImage *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity field names. They double as column names and as the
// duplicate_field values reported to clients.
const (
	FieldUserName = "user_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

// UserPatch lists the columns to change; nil fields keep their value.
// PasswordHash is already hashed.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	UserName     *string
	Email        *string
	Phone        *string
	Gender       *string
	ProfileImage *string
	PasswordHash *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.UserName == nil &&
		p.Email == nil && p.Phone == nil && p.Gender == nil &&
		p.ProfileImage == nil && p.PasswordHash == nil
}

// Package services contains server-side business logic: account management,
// the identity resolver behind sign-in, live user updates and avatar storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/dmitrijs2005/railticket/internal/cryptox"
	"github.com/dmitrijs2005/railticket/internal/logging"
	"github.com/dmitrijs2005/railticket/internal/server/models"
	"github.com/dmitrijs2005/railticket/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const minPasswordLen = 6

// Credentials identify an account by one of its identity values.
type Credentials struct {
	UserName string
	Email    string
	Phone    string
	Password string
}

// identity picks the lookup field: user name, then email, then phone. The
// first non-empty one wins and the others are ignored.
func (c Credentials) identity() (field, value string) {
	switch {
	case c.UserName != "":
		return models.FieldUserName, c.UserName
	case c.Email != "":
		return models.FieldEmail, c.Email
	case c.Phone != "":
		return models.FieldPhone, c.Phone
	}
	return "", ""
}

// NewUser is a registration request with a plain-text password.
type NewUser struct {
	FirstName string
	LastName  string
	UserName  string
	Email     string
	Phone     string
	Gender    *string
	Password  string
}

// UserUpdate lists the fields to change. Password is plain text.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	UserName     *string
	Email        *string
	Phone        *string
	Gender       *string
	ProfileImage *string
	Password     *string
}

// UserService manages accounts and resolves sign-in credentials.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	passwords   cryptox.Argon2Params
	hub         *Hub
	logger      logging.Logger
}

// NewUserService constructs a UserService. Changes made through it are
// announced on hub.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, passwords cryptox.Argon2Params, hub *Hub, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		passwords:   passwords,
		hub:         hub,
		logger:      logger.With("module", "user_service"),
	}
}

// Authenticate resolves c to a user id.
//
// Only the first non-empty identity field is consulted (user name, email,
// phone). No field or no matching account gives common.ErrIdentityNotFound;
// a match with a different password gives common.ErrWrongPassword. Values
// are compared exactly, passwords in constant time.
func (s *UserService) Authenticate(ctx context.Context, c Credentials) (string, error) {
	field, value := c.identity()
	if field == "" {
		return "", common.ErrIdentityNotFound
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.FindBy(ctx, field, value)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrIdentityNotFound
		}
		return "", err
	}

	ok, err := s.passwords.VerifyPassword(user.PasswordHash, c.Password)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unusable", "user_id", user.ID, "error", err)
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrWrongPassword
	}

	return user.ID, nil
}

func validateNewUser(u NewUser) error {
	for _, f := range []struct{ name, value string }{
		{"first name", u.FirstName},
		{"last name", u.LastName},
		{"user name", u.UserName},
		{"email", u.Email},
		{"phone", u.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, f.name)
		}
	}
	if strings.ContainsAny(u.UserName, " @") {
		return fmt.Errorf("%w: user name must not contain spaces or '@'", common.ErrorValidation)
	}
	if len(u.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLen)
	}
	return nil
}

// Create registers a new account. A taken user name, email or phone yields
// *common.DuplicateIdentityError.
func (s *UserService) Create(ctx context.Context, nu NewUser) (*models.User, error) {
	if err := validateNewUser(nu); err != nil {
		return nil, err
	}

	hash, err := s.passwords.HashPassword(nu.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		FirstName:    nu.FirstName,
		LastName:     nu.LastName,
		UserName:     nu.UserName,
		Email:        nu.Email,
		Phone:        nu.Phone,
		Gender:       nu.Gender,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Exists reports whether any account uses one of the non-empty values.
func (s *UserService) Exists(ctx context.Context, email, userName, phone string) (bool, error) {
	return s.repomanager.Users(s.db).Exists(ctx, email, userName, phone)
}

// Update changes the account and notifies its watchers. A profile image must
// be a key issued for this user.
func (s *UserService) Update(ctx context.Context, id string, upd UserUpdate) (*models.User, error) {
	for name, v := range map[string]*string{
		"first name": upd.FirstName,
		"last name":  upd.LastName,
		"user name":  upd.UserName,
		"email":      upd.Email,
		"phone":      upd.Phone,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", common.ErrorValidation, name)
		}
	}
	if upd.UserName != nil && strings.ContainsAny(*upd.UserName, " @") {
		return nil, fmt.Errorf("%w: user name must not contain spaces or '@'", common.ErrorValidation)
	}
	if upd.ProfileImage != nil && *upd.ProfileImage != "" && !strings.HasPrefix(*upd.ProfileImage, AvatarKeyPrefix(id)) {
		return nil, fmt.Errorf("%w: profile image key does not belong to the user", common.ErrorValidation)
	}

	patch := models.UserPatch{
		FirstName:    upd.FirstName,
		LastName:     upd.LastName,
		UserName:     upd.UserName,
		Email:        upd.Email,
		Phone:        upd.Phone,
		Gender:       upd.Gender,
		ProfileImage: upd.ProfileImage,
	}
	if upd.Password != nil {
		if len(*upd.Password) < minPasswordLen {
			return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLen)
		}
		hash, err := s.passwords.HashPassword(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	user, err := s.repomanager.Users(s.db).Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.hub.Notify(id)
	return user, nil
}

// Delete removes the account and notifies its watchers.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Users(s.db).Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "user deleted", "user_id", id)
	s.hub.Notify(id)
	return nil
}

// Watch calls send with the current state of the account and again after
// every change, until ctx is done or send fails. A nil user means the account
// does not exist.
func (s *UserService) Watch(ctx context.Context, id string, send func(*models.User) error) error {
	signals, cancel := s.hub.Subscribe(id)
	defer cancel()

	repo := s.repomanager.Users(s.db)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-signals:
			if !ok {
				return nil
			}

			user, err := repo.GetByID(ctx, id)
			if errors.Is(err, common.ErrorNotFound) {
				user, err = nil, nil
			}
			if err != nil {
				return err
			}

			if err := send(user); err != nil {
				return err
			}
		}
	}
}

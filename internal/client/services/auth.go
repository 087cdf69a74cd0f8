// Package services contains application services for the railticket client.
// This file defines the authentication service: sign-in, sign-up, sign-out,
// and the live view of the signed-in user derived from the session token.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/railticket/internal/client/client"
	"github.com/dmitrijs2005/railticket/internal/client/models"
	"github.com/dmitrijs2005/railticket/internal/client/session"
	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/dmitrijs2005/railticket/internal/logging"
	"github.com/dmitrijs2005/railticket/internal/netx"
	"github.com/dmitrijs2005/railticket/internal/observe"
)

// UserAPI is the part of the backend API the auth service uses.
// client.GRPCClient implements it.
type UserAPI interface {
	Ping(ctx context.Context) error
	Authenticate(ctx context.Context, creds models.Credentials) (string, error)
	CreateUser(ctx context.Context, u models.NewUser) (string, error)
	WatchUser(ctx context.Context, userID string) (client.UserStream, error)
	UserExists(ctx context.Context, q models.IdentityQuery) (bool, error)
	UpdateUser(ctx context.Context, userID string, patch models.ProfilePatch) error
	DeleteUser(ctx context.Context, userID string) error
	ProfileImageUploadURL(ctx context.Context, userID string) (string, string, error)
	ProfileImageURL(ctx context.Context, userID string, key string) (string, error)
}

// Session is the token holder. *session.Session implements it.
type Session interface {
	Snapshot() session.State
	Subscribe() (<-chan session.State, func())
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type UserStatus int

const (
	// UserPending: the session is loading or the record has not arrived yet.
	UserPending UserStatus = iota
	// UserAbsent: nobody is signed in, or the account no longer exists.
	UserAbsent
	// UserPresent: User holds the current record.
	UserPresent
)

// UserState is what the service knows about the signed-in user. Token is the
// session token the state was derived from.
type UserState struct {
	Status UserStatus
	Token  string
	User   *models.User
}

const DefaultRetryDelay = 2 * time.Second

// uploadFn is a test seam.
var uploadFn = netx.UploadToPresignedURL

// AuthService composes the session with the backend. Create one per process
// and share it; Run must be running for User to leave the pending state.
type AuthService struct {
	session Session
	api     UserAPI
	logger  logging.Logger

	// RetryDelay is the pause before re-opening a failed user subscription.
	RetryDelay time.Duration

	opMu sync.Mutex // serializes SignIn, SignUp, SignOut and DeleteAccount

	user  *observe.Value[UserState]
	genMu sync.Mutex
	gen   uint64 // bumped whenever the followed token changes
}

func NewAuthService(s Session, api UserAPI, logger logging.Logger) *AuthService {
	return &AuthService{
		session:    s,
		api:        api,
		logger:     logger.With("module", "auth"),
		RetryDelay: DefaultRetryDelay,
		user:       observe.NewValue(UserState{Status: UserPending}),
	}
}

// User reports the signed-in user. ok is false while resolution is pending;
// (nil, true) means nobody is signed in.
func (a *AuthService) User() (u *models.User, ok bool) {
	st := a.user.Load()
	switch st.Status {
	case UserPresent:
		return st.User, true
	case UserAbsent:
		return nil, true
	default:
		return nil, false
	}
}

// Subscribe streams UserState changes, starting with the current one.
func (a *AuthService) Subscribe() (<-chan UserState, func()) {
	return a.user.Subscribe()
}

// WaitUser blocks until the user state matches the current session token and
// is no longer pending, then returns the user (nil if nobody is signed in).
func (a *AuthService) WaitUser(ctx context.Context) (*models.User, error) {
	states, cancel := a.user.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case st := <-states:
			sess := a.session.Snapshot()
			if sess.Status == session.StateLoading || st.Status == UserPending {
				continue
			}
			if st.Token == sess.Token {
				return st.User, nil
			}
		}
	}
}

// Run follows session changes and keeps the user record current until ctx is
// done. Each new token replaces the previous subscription.
func (a *AuthService) Run(ctx context.Context) error {
	states, cancel := a.session.Subscribe()
	defer cancel()

	var (
		token     string
		watching  bool
		stopWatch context.CancelFunc = func() {}
	)
	defer func() { stopWatch() }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case st, ok := <-states:
			if !ok {
				return nil
			}
			switch st.Status {
			case session.StateLoading:
			case session.StateUnauthenticated:
				stopWatch()
				watching, token = false, ""
				a.advance(UserState{Status: UserAbsent})
			case session.StateAuthenticated:
				if watching && st.Token == token {
					continue
				}
				stopWatch()
				token = st.Token
				gen := a.advance(UserState{Status: UserPending, Token: token})

				wctx, c := context.WithCancel(ctx)
				stopWatch, watching = c, true
				go a.watch(wctx, gen, token)
			}
		}
	}
}

// advance starts a new generation and publishes st for it. Updates from
// older generations are dropped from then on.
func (a *AuthService) advance(st UserState) uint64 {
	a.genMu.Lock()
	defer a.genMu.Unlock()
	a.gen++
	a.user.Store(st)
	return a.gen
}

func (a *AuthService) deliver(gen uint64, st UserState) {
	a.genMu.Lock()
	defer a.genMu.Unlock()
	if gen != a.gen {
		return
	}
	a.user.Store(st)
}

func (a *AuthService) watch(ctx context.Context, gen uint64, userID string) {
	for {
		err := a.follow(ctx, gen, userID)
		if ctx.Err() != nil {
			return
		}
		a.logger.Warn(ctx, "user subscription interrupted", "error", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(a.RetryDelay):
		}
	}
}

func (a *AuthService) follow(ctx context.Context, gen uint64, userID string) error {
	stream, err := a.api.WatchUser(ctx, userID)
	if err != nil {
		return err
	}
	for {
		u, err := stream.Recv()
		if err != nil {
			return err
		}
		if u == nil {
			a.deliver(gen, UserState{Status: UserAbsent, Token: userID})
			continue
		}
		a.deliver(gen, UserState{Status: UserPresent, Token: userID, User: u})
	}
}

// SignIn resolves creds on the backend and stores the resulting session.
//
// A rejected sign-in (common.ErrIdentityNotFound or common.ErrWrongPassword)
// also drops any existing session. Transport failures, including
// common.ErrTooManyAttempts, leave the session as it was.
func (a *AuthService) SignIn(ctx context.Context, creds models.Credentials) error {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	id, err := a.api.Authenticate(ctx, creds)
	switch {
	case err == nil:
		if err := a.session.SetToken(ctx, id); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		a.logger.Info(ctx, "signed in", "user_id", id)
		return nil

	case errors.Is(err, common.ErrIdentityNotFound), errors.Is(err, common.ErrWrongPassword):
		if cerr := a.session.Clear(ctx); cerr != nil {
			a.logger.Warn(ctx, "failed to drop session after rejected sign-in", "error", cerr)
		}
		return err

	default:
		return err
	}
}

// SignUp registers u and signs the new account in.
func (a *AuthService) SignUp(ctx context.Context, u models.NewUser) error {
	if err := u.Validate(); err != nil {
		return err
	}

	a.opMu.Lock()
	defer a.opMu.Unlock()

	id, err := a.api.CreateUser(ctx, u)
	if err != nil {
		return err
	}
	if err := a.session.SetToken(ctx, id); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.logger.Info(ctx, "registered", "user_id", id)
	return nil
}

// SignOut drops the session unconditionally.
func (a *AuthService) SignOut(ctx context.Context) error {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	return a.session.Clear(ctx)
}

func (a *AuthService) currentToken() (string, error) {
	st := a.session.Snapshot()
	if st.Status != session.StateAuthenticated {
		return "", client.ErrUnauthorized
	}
	return st.Token, nil
}

// UpdateProfile applies patch to the signed-in account. The change reaches
// User through the live subscription.
func (a *AuthService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	token, err := a.currentToken()
	if err != nil {
		return err
	}
	if patch.Empty() {
		return nil
	}
	return a.api.UpdateUser(ctx, token, patch)
}

// DeleteAccount removes the signed-in account and then signs out.
func (a *AuthService) DeleteAccount(ctx context.Context) error {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	token, err := a.currentToken()
	if err != nil {
		return err
	}
	if err := a.api.DeleteUser(ctx, token); err != nil {
		return err
	}
	a.logger.Info(ctx, "account deleted", "user_id", token)
	return a.session.Clear(ctx)
}

// IdentityExists reports whether any account already uses one of the values
// in q. The answer is advisory: registration still enforces uniqueness.
func (a *AuthService) IdentityExists(ctx context.Context, q models.IdentityQuery) (bool, error) {
	return a.api.UserExists(ctx, q)
}

// UploadProfileImage uploads data to object storage and records it as the
// profile image of the signed-in account.
func (a *AuthService) UploadProfileImage(ctx context.Context, contentType string, data []byte) error {
	token, err := a.currentToken()
	if err != nil {
		return err
	}

	key, url, err := a.api.ProfileImageUploadURL(ctx, token)
	if err != nil {
		return err
	}
	if err := uploadFn(ctx, url, contentType, data); err != nil {
		return fmt.Errorf("upload profile image: %w", err)
	}
	return a.api.UpdateUser(ctx, token, models.ProfilePatch{ProfileImage: &key})
}

// ProfileImageURL returns a download URL for the signed-in user's image, or
// common.ErrorNotFound if there is none.
func (a *AuthService) ProfileImageURL(ctx context.Context) (string, error) {
	token, err := a.currentToken()
	if err != nil {
		return "", err
	}
	u, _ := a.User()
	if u == nil || u.ProfileImage == nil || *u.ProfileImage == "" {
		return "", common.ErrorNotFound
	}
	return a.api.ProfileImageURL(ctx, token, *u.ProfileImage)
}

func (a *AuthService) Ping(ctx context.Context) error {
	return a.api.Ping(ctx)
}

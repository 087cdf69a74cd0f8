package client

import (
	"context"

	"github.com/dmitrijs2005/railticket/internal/client/models"
)

// Client is the backend API the client-side components depend on.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Authenticate(ctx context.Context, creds models.Credentials) (string, error)
	CreateUser(ctx context.Context, u models.NewUser) (string, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	WatchUser(ctx context.Context, userID string) (UserStream, error)
	UserExists(ctx context.Context, q models.IdentityQuery) (bool, error)
	UpdateUser(ctx context.Context, userID string, patch models.ProfilePatch) error
	DeleteUser(ctx context.Context, userID string) error

	ProfileImageUploadURL(ctx context.Context, userID string) (key string, url string, err error)
	ProfileImageURL(ctx context.Context, userID string, key string) (string, error)
}

// UserStream yields the current user record and then every change to it.
// Recv returns a nil user once the account no longer exists and io.EOF when
// the server closes the stream.
type UserStream interface {
	Recv() (*models.User, error)
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/railticket/internal/client/client"
	"github.com/dmitrijs2005/railticket/internal/client/config"
	"github.com/dmitrijs2005/railticket/internal/client/models"
	"github.com/dmitrijs2005/railticket/internal/client/repositories/records"
	"github.com/dmitrijs2005/railticket/internal/client/services"
	"github.com/dmitrijs2005/railticket/internal/client/session"
	"github.com/dmitrijs2005/railticket/internal/client/storage"
	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/dmitrijs2005/railticket/internal/cryptox"
	"github.com/dmitrijs2005/railticket/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// authService is the slice of services.AuthService the CLI drives.
type authService interface {
	User() (*models.User, bool)
	WaitUser(ctx context.Context) (*models.User, error)
	Run(ctx context.Context) error
	SignIn(ctx context.Context, creds models.Credentials) error
	SignUp(ctx context.Context, u models.NewUser) error
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) error
	DeleteAccount(ctx context.Context) error
	IdentityExists(ctx context.Context, q models.IdentityQuery) (bool, error)
	UploadProfileImage(ctx context.Context, contentType string, data []byte) error
	ProfileImageURL(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

// sessionHolder is the slice of session.Session the CLI needs.
type sessionHolder interface {
	Start(ctx context.Context)
	Ready() <-chan struct{}
}

// localStore is the slice of storage.Store used by the reset command.
type localStore interface {
	Clear(ctx context.Context) error
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService authService
	session     sessionHolder
	store       localStore
	reader      *bufio.Reader
	out         io.Writer

	modeMu sync.Mutex
	Mode   Mode

	closers []func() error
}

// NewApp wires local storage, the session, the backend client and the auth
// service. Close releases what it opened.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	codec, err := cryptox.NewCodec([]byte(c.Secret))
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := storage.New(records.NewSQLiteRepository(db), codec, logger)
	sess := session.New(store, common.SessionTokenKey, logger)
	as := services.NewAuthService(sess, apiClient, logger)

	return &App{
		config:      c,
		logger:      logger.With("module", "cli"),
		authService: as,
		session:     sess,
		store:       store,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		closers:     []func() error{apiClient.Close, db.Close},
	}, nil
}

// Close releases the backend connection and the local database.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Run loads the session, starts the background workers and blocks in the
// REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.session.Start(ctx)
	go func() {
		if err := a.authService.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error(ctx, "auth service stopped", "error", err)
		}
	}()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to railticket CLI (type 'help' for commands)")
	a.greet(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// greet waits for the stored session to load and reports who is signed in.
// Nothing is printed about the session while it is still loading.
func (a *App) greet(ctx context.Context) {
	select {
	case <-a.session.Ready():
	case <-ctx.Done():
		return
	}

	wctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.authService.WaitUser(wctx)
	switch {
	case err != nil:
		fmt.Fprintln(a.out, "Session restored; profile not available yet.")
	case u == nil:
		fmt.Fprintln(a.out, "You are not signed in. Use 'login' or 'register'.")
	default:
		fmt.Fprintf(a.out, "Signed in as %s (%s).\n", u.UserName, u.Email)
	}
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) isLoggedIn() bool {
	u, _ := a.authService.User()
	return u != nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.Mode
}

func (a *App) getStatus() string {
	s := ""
	if u, _ := a.authService.User(); u != nil {
		s = u.UserName + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the backend every interval and tracks
// whether it is reachable.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

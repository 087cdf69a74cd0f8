// Package server wires the account backend together: it opens the database,
// applies migrations and runs the gRPC API next to the metrics endpoint until
// the context is cancelled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/railticket/internal/dbx"
	"github.com/dmitrijs2005/railticket/internal/logging"
	"github.com/dmitrijs2005/railticket/internal/server/config"
	"github.com/dmitrijs2005/railticket/internal/server/metrics"
	"github.com/dmitrijs2005/railticket/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/railticket/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	gs "github.com/dmitrijs2005/railticket/internal/server/grpc"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	registry      *prometheus.Registry
	collector     *metrics.Collector
	userService   *services.UserService
	avatarService *services.AvatarService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.SlogLevel())

	db, err := dbx.Open(ctx, "pgx", c.DatabaseDSN, dbx.Pool{MaxOpenConns: 20, MaxIdleConns: 5, ConnMaxLifetime: 30 * time.Minute})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	hub := services.NewHub()

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		registry:      registry,
		collector:     metrics.NewCollector(registry),
		userService:   services.NewUserService(db, rm, c.Argon2Params(), hub, logger),
		avatarService: services.NewAvatarService(c),
	}, nil
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	limiter := gs.NewSignInLimiter(app.config.SignInRate, app.config.SignInBurst)
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.avatarService, app.collector, limiter)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {

	router := metrics.NewRouter(app.registry, app.db.PingContext)
	s := metrics.NewServer(app.config.MetricsAddr, router, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled or one of the servers fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}

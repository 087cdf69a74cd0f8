package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/railticket/internal/logging"
	pb "github.com/dmitrijs2005/railticket/internal/proto"
	"github.com/dmitrijs2005/railticket/internal/server/metrics"
	"github.com/dmitrijs2005/railticket/internal/server/models"
	"github.com/dmitrijs2005/railticket/internal/server/services"
	"google.golang.org/grpc"
)

const (
	limiterIdle = 10 * time.Minute
	// open WatchUser streams never finish on their own
	stopGrace = 5 * time.Second
)

type userService interface {
	Authenticate(ctx context.Context, c services.Credentials) (string, error)
	Create(ctx context.Context, nu services.NewUser) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, email, userName, phone string) (bool, error)
	Update(ctx context.Context, id string, upd services.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context, id string, send func(*models.User) error) error
}

type avatarService interface {
	UploadURL(ctx context.Context, userID string) (string, string, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address string
	users   userService
	avatars avatarService
	metrics *metrics.Collector
	limiter *SignInLimiter
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us userService, as avatarService, mc *metrics.Collector, lim *SignInLimiter) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		avatars: as,
		metrics: mc,
		limiter: lim,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.observeInterceptor, s.sessionTokenInterceptor, s.signInLimitInterceptor),
		grpc.ChainStreamInterceptor(s.observeStreamInterceptor),
	)
	pb.RegisterUserServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info(ctx, "Stopping gPRC server...")
				stop(srv)
				return
			case <-ticker.C:
				s.limiter.Cleanup(limiterIdle)
			}
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

func stop(srv *grpc.Server) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopGrace):
		srv.Stop()
	}
}

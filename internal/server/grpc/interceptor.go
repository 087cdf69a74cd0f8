package grpc

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/railticket/internal/common"
	pb "github.com/dmitrijs2005/railticket/internal/proto"
	"github.com/dmitrijs2005/railticket/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func sessionToken(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.SessionTokenHeaderName)
		if len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// checkOwner enforces that the caller's session token names userID.
func checkOwner(ctx context.Context, userID string) error {
	token := sessionToken(ctx)
	if len(token) == 0 {
		return status.Error(codes.Unauthenticated, "missing session token")
	}
	if token != userID {
		return status.Error(codes.PermissionDenied, "session does not own this account")
	}
	return nil
}

// checkImageOwner enforces that key lies under the caller's own image prefix.
func checkImageOwner(ctx context.Context, key string) error {
	token := sessionToken(ctx)
	if len(token) == 0 {
		return status.Error(codes.Unauthenticated, "missing session token")
	}
	if !strings.HasPrefix(key, services.AvatarKeyPrefix(token)) {
		return status.Error(codes.PermissionDenied, "session does not own this image")
	}
	return nil
}

func (s *GRPCServer) observeInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	method := path.Base(info.FullMethod)
	code := status.Code(err)
	s.metrics.RecordRequest(method, code.String(), time.Since(start))
	s.logger.Debug(ctx, "rpc", "method", method, "code", code.String(), "duration", time.Since(start))

	return resp, err
}

func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	var owner string
	switch r := req.(type) {
	case *pb.UserIDRequest:
		owner = r.GetUserId()
	case *pb.UpdateUserRequest:
		owner = r.GetUserId()
	default:
		return handler(ctx, req)
	}

	if err := checkOwner(ctx, owner); err != nil {
		return nil, err
	}

	return handler(ctx, req)
}

func (s *GRPCServer) signInLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	r, ok := req.(*pb.AuthenticateRequest)
	if !ok {
		return handler(ctx, req)
	}

	key := limiterKey(r)
	if key != "" && !s.limiter.Allow(key) {
		s.metrics.RecordThrottled()
		s.logger.Warn(ctx, "sign-in throttled", "identity", key)
		return nil, status.Error(codes.ResourceExhausted, "too many sign-in attempts")
	}

	return handler(ctx, req)
}

// limiterKey picks the identity the same way sign-in resolution does.
func limiterKey(r *pb.AuthenticateRequest) string {
	switch {
	case r.GetUserName() != "":
		return "user_name:" + r.GetUserName()
	case r.GetEmail() != "":
		return "email:" + r.GetEmail()
	case r.GetPhone() != "":
		return "phone:" + r.GetPhone()
	}
	return ""
}

func (s *GRPCServer) observeStreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	s.metrics.WatchStarted()
	defer s.metrics.WatchEnded()

	err := handler(srv, ss)

	method := path.Base(info.FullMethod)
	code := status.Code(err)
	s.metrics.RecordRequest(method, code.String(), time.Since(start))
	s.logger.Debug(ss.Context(), "stream closed", "method", method, "code", code.String(), "duration", time.Since(start))

	return err
}

package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/railticket/internal/common"
	pb "github.com/dmitrijs2005/railticket/internal/proto"
	"github.com/dmitrijs2005/railticket/internal/server/models"
	"github.com/dmitrijs2005/railticket/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Sign-in outcome labels of the sign-in metric.
const (
	signInOK            = "ok"
	signInNotFound      = "not_found"
	signInWrongPassword = "wrong_password"
)

// toStatus maps service errors to gRPC codes. Unexpected errors are logged
// and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrDuplicateIdentity):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}

func duplicateField(err error) (string, bool) {
	var dup *common.DuplicateIdentityError
	if errors.As(err, &dup) {
		return dup.Field, true
	}
	return "", false
}

func toPBUser(u *models.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{
		Id:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		UserName:     u.UserName,
		Email:        u.Email,
		Phone:        u.Phone,
		Gender:       u.Gender,
		ProfileImage: u.ProfileImage,
		CreatedAt:    timestamppb.New(u.CreatedAt),
		UpdatedAt:    timestamppb.New(u.UpdatedAt),
	}
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {

	id, err := s.users.Authenticate(ctx, services.Credentials{
		UserName: req.GetUserName(),
		Email:    req.GetEmail(),
		Phone:    req.GetPhone(),
		Password: req.GetPassword(),
	})

	switch {
	case err == nil:
	case errors.Is(err, common.ErrIdentityNotFound):
		s.metrics.RecordSignIn(signInNotFound)
		return &pb.AuthenticateResponse{Outcome: pb.AuthOutcome_AUTH_OUTCOME_NOT_FOUND}, nil
	case errors.Is(err, common.ErrWrongPassword):
		s.metrics.RecordSignIn(signInWrongPassword)
		return &pb.AuthenticateResponse{Outcome: pb.AuthOutcome_AUTH_OUTCOME_WRONG_PASSWORD}, nil
	default:
		return nil, s.toStatus(ctx, err)
	}

	s.metrics.RecordSignIn(signInOK)
	s.logger.Info(ctx, "Signed in", "user_id", id)
	return &pb.AuthenticateResponse{Outcome: pb.AuthOutcome_AUTH_OUTCOME_OK, UserId: id}, nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	u, err := s.users.Create(ctx, services.NewUser{
		FirstName: req.GetFirstName(),
		LastName:  req.GetLastName(),
		UserName:  req.GetUserName(),
		Email:     req.GetEmail(),
		Phone:     req.GetPhone(),
		Gender:    req.Gender,
		Password:  req.GetPassword(),
	})
	if err != nil {
		if field, ok := duplicateField(err); ok {
			return &pb.CreateUserResponse{DuplicateField: field}, nil
		}
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &pb.CreateUserResponse{UserId: u.ID}, nil
}

// GetUser answers with an empty response when the account is gone.
func (s *GRPCServer) GetUser(ctx context.Context, req *pb.UserIDRequest) (*pb.UserResponse, error) {
	u, err := s.users.Get(ctx, req.GetUserId())
	if errors.Is(err, common.ErrorNotFound) {
		return &pb.UserResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserResponse{User: toPBUser(u)}, nil
}

func (s *GRPCServer) WatchUser(req *pb.UserIDRequest, stream grpc.ServerStreamingServer[pb.UserEvent]) error {
	ctx := stream.Context()
	if err := checkOwner(ctx, req.GetUserId()); err != nil {
		return err
	}

	err := s.users.Watch(ctx, req.GetUserId(), func(u *models.User) error {
		return stream.Send(&pb.UserEvent{User: toPBUser(u)})
	})
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return s.toStatus(ctx, err)
}

func (s *GRPCServer) UserExists(ctx context.Context, req *pb.UserExistsRequest) (*pb.UserExistsResponse, error) {
	exists, err := s.users.Exists(ctx, req.GetEmail(), req.GetUserName(), req.GetPhone())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserExistsResponse{Exists: exists}, nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UpdateUserResponse, error) {
	_, err := s.users.Update(ctx, req.GetUserId(), services.UserUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		UserName:     req.UserName,
		Email:        req.Email,
		Phone:        req.Phone,
		Gender:       req.Gender,
		ProfileImage: req.ProfileImage,
		Password:     req.Password,
	})
	if err != nil {
		if field, ok := duplicateField(err); ok {
			return &pb.UpdateUserResponse{DuplicateField: field}, nil
		}
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpdateUserResponse{}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.UserIDRequest) (*pb.DeleteUserResponse, error) {
	if err := s.users.Delete(ctx, req.GetUserId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Deleted", "user_id", req.GetUserId())
	return &pb.DeleteUserResponse{}, nil
}

func (s *GRPCServer) ProfileImageUploadURL(ctx context.Context, req *pb.UserIDRequest) (*pb.ProfileImageUploadURLResponse, error) {
	key, url, err := s.avatars.UploadURL(ctx, req.GetUserId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProfileImageUploadURLResponse{Key: key, Url: url}, nil
}

// ProfileImageURL presigns a download of one of the caller's own images.
func (s *GRPCServer) ProfileImageURL(ctx context.Context, req *pb.ProfileImageURLRequest) (*pb.ProfileImageURLResponse, error) {
	if err := checkImageOwner(ctx, req.GetKey()); err != nil {
		return nil, err
	}
	url, err := s.avatars.DownloadURL(ctx, req.GetKey())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProfileImageURLResponse{Url: url}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

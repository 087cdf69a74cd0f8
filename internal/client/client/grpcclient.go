package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/railticket/internal/client/models"
	"github.com/dmitrijs2005/railticket/internal/common"
	pb "github.com/dmitrijs2005/railticket/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	conn        *grpc.ClientConn
	api         pb.UserServiceClient
}

// withSessionToken attaches token to the outgoing metadata, replacing any
// value already there.
func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults (insecure transport credentials).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOpts: opts}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.api = pb.NewUserServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.api.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Authenticate resolves creds to a user id. A failed sign-in comes back as
// common.ErrIdentityNotFound or common.ErrWrongPassword; anything else is a
// transport or server failure.
func (s *GRPCClient) Authenticate(ctx context.Context, creds models.Credentials) (string, error) {
	req := &pb.AuthenticateRequest{
		UserName: creds.UserName,
		Email:    creds.Email,
		Phone:    creds.Phone,
		Password: creds.Password,
	}

	resp, err := s.api.Authenticate(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	switch resp.GetOutcome() {
	case pb.AuthOutcome_AUTH_OUTCOME_OK:
		return resp.GetUserId(), nil
	case pb.AuthOutcome_AUTH_OUTCOME_NOT_FOUND:
		return "", common.ErrIdentityNotFound
	case pb.AuthOutcome_AUTH_OUTCOME_WRONG_PASSWORD:
		return "", common.ErrWrongPassword
	default:
		return "", fmt.Errorf("unexpected authentication outcome %s", resp.GetOutcome())
	}
}

// CreateUser registers u and returns the new user id. A collision with an
// existing account yields *common.DuplicateIdentityError.
func (s *GRPCClient) CreateUser(ctx context.Context, u models.NewUser) (string, error) {
	req := &pb.CreateUserRequest{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
		Email:     u.Email,
		Phone:     u.Phone,
		Password:  u.Password,
		Gender:    u.Gender,
	}

	resp, err := s.api.CreateUser(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	if resp.GetDuplicateField() != "" {
		return "", &common.DuplicateIdentityError{Field: resp.GetDuplicateField()}
	}
	return resp.GetUserId(), nil
}

// GetUser returns common.ErrorNotFound when the account does not exist.
func (s *GRPCClient) GetUser(ctx context.Context, userID string) (*models.User, error) {
	resp, err := s.api.GetUser(withSessionToken(ctx, userID), &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetUser() == nil {
		return nil, common.ErrorNotFound
	}
	return userFromPB(resp.GetUser()), nil
}

type userStream struct {
	client *GRPCClient
	stream pb.UserService_WatchUserClient
}

func (u *userStream) Recv() (*models.User, error) {
	ev, err := u.stream.Recv()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, u.client.mapError(err)
	}
	if ev.GetUser() == nil {
		return nil, nil
	}
	return userFromPB(ev.GetUser()), nil
}

// WatchUser subscribes to the account record. The stream ends when ctx is
// cancelled.
func (s *GRPCClient) WatchUser(ctx context.Context, userID string) (UserStream, error) {
	stream, err := s.api.WatchUser(withSessionToken(ctx, userID), &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &userStream{client: s, stream: stream}, nil
}

func (s *GRPCClient) UserExists(ctx context.Context, q models.IdentityQuery) (bool, error) {
	resp, err := s.api.UserExists(ctx, &pb.UserExistsRequest{Email: q.Email, UserName: q.UserName, Phone: q.Phone})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetExists(), nil
}

func (s *GRPCClient) UpdateUser(ctx context.Context, userID string, patch models.ProfilePatch) error {
	req := &pb.UpdateUserRequest{
		UserId:       userID,
		FirstName:    patch.FirstName,
		LastName:     patch.LastName,
		UserName:     patch.UserName,
		Email:        patch.Email,
		Phone:        patch.Phone,
		Password:     patch.Password,
		Gender:       patch.Gender,
		ProfileImage: patch.ProfileImage,
	}

	resp, err := s.api.UpdateUser(withSessionToken(ctx, userID), req)
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetDuplicateField() != "" {
		return &common.DuplicateIdentityError{Field: resp.GetDuplicateField()}
	}
	return nil
}

func (s *GRPCClient) DeleteUser(ctx context.Context, userID string) error {
	_, err := s.api.DeleteUser(withSessionToken(ctx, userID), &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ProfileImageUploadURL(ctx context.Context, userID string) (string, string, error) {
	resp, err := s.api.ProfileImageUploadURL(withSessionToken(ctx, userID), &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.GetKey(), resp.GetUrl(), nil
}

// ProfileImageURL presigns a download of key, which must belong to userID.
func (s *GRPCClient) ProfileImageURL(ctx context.Context, userID, key string) (string, error) {
	resp, err := s.api.ProfileImageURL(withSessionToken(ctx, userID), &pb.ProfileImageURLRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.ResourceExhausted:
		return common.ErrTooManyAttempts
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func userFromPB(u *pb.User) *models.User {
	return &models.User{
		ID:           u.GetId(),
		FirstName:    u.GetFirstName(),
		LastName:     u.GetLastName(),
		UserName:     u.GetUserName(),
		Email:        u.GetEmail(),
		Phone:        u.GetPhone(),
		Gender:       u.Gender,
		ProfileImage: u.ProfileImage,
		CreatedAt:    asTime(u.GetCreatedAt()),
		UpdatedAt:    asTime(u.GetUpdatedAt()),
	}
}

// asTime keeps an unset timestamp as the zero time rather than the Unix epoch.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

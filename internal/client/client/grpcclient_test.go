package client

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/railticket/internal/client/models"
	"github.com/dmitrijs2005/railticket/internal/common"
	pb "github.com/dmitrijs2005/railticket/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake server
 *************/

type fakeServer struct {
	pb.UnimplementedUserServiceServer

	mu         sync.Mutex
	lastAuth   *pb.AuthenticateRequest
	lastCreate *pb.CreateUserRequest
	lastUpdate *pb.UpdateUserRequest
	lastExists *pb.UserExistsRequest
	tokens     map[string]string // method -> session token seen

	authResp   *pb.AuthenticateResponse
	authErr    error
	createResp *pb.CreateUserResponse
	updateResp *pb.UpdateUserResponse
	user       *pb.User
	events     []*pb.UserEvent
	pingStatus string
	err        error
}

func (f *fakeServer) seeToken(ctx context.Context, method string) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokens == nil {
		f.tokens = map[string]string{}
	}
	if v := md.Get(common.SessionTokenHeaderName); len(v) > 0 {
		f.tokens[method] = v[0]
	}
}

func (f *fakeServer) token(method string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[method]
}

func (f *fakeServer) Authenticate(_ context.Context, in *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {
	f.mu.Lock()
	f.lastAuth = in
	f.mu.Unlock()
	return f.authResp, f.authErr
}

func (f *fakeServer) CreateUser(_ context.Context, in *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {
	f.mu.Lock()
	f.lastCreate = in
	f.mu.Unlock()
	return f.createResp, f.err
}

func (f *fakeServer) GetUser(ctx context.Context, in *pb.UserIDRequest) (*pb.UserResponse, error) {
	f.seeToken(ctx, "GetUser")
	return &pb.UserResponse{User: f.user}, f.err
}

func (f *fakeServer) WatchUser(in *pb.UserIDRequest, stream grpc.ServerStreamingServer[pb.UserEvent]) error {
	f.seeToken(stream.Context(), "WatchUser")
	for _, ev := range f.events {
		if err := stream.Send(ev); err != nil {
			return err
		}
	}
	return f.err
}

func (f *fakeServer) UserExists(_ context.Context, in *pb.UserExistsRequest) (*pb.UserExistsResponse, error) {
	f.mu.Lock()
	f.lastExists = in
	f.mu.Unlock()
	return &pb.UserExistsResponse{Exists: in.GetEmail() == "taken@example.com"}, f.err
}

func (f *fakeServer) UpdateUser(ctx context.Context, in *pb.UpdateUserRequest) (*pb.UpdateUserResponse, error) {
	f.seeToken(ctx, "UpdateUser")
	f.mu.Lock()
	f.lastUpdate = in
	f.mu.Unlock()
	return f.updateResp, f.err
}

func (f *fakeServer) DeleteUser(ctx context.Context, in *pb.UserIDRequest) (*pb.DeleteUserResponse, error) {
	f.seeToken(ctx, "DeleteUser")
	return &pb.DeleteUserResponse{}, f.err
}

func (f *fakeServer) ProfileImageUploadURL(ctx context.Context, in *pb.UserIDRequest) (*pb.ProfileImageUploadURLResponse, error) {
	f.seeToken(ctx, "ProfileImageUploadURL")
	return &pb.ProfileImageUploadURLResponse{Key: "avatars/" + in.GetUserId() + "/k", Url: "https://s3/put"}, f.err
}

func (f *fakeServer) ProfileImageURL(ctx context.Context, in *pb.ProfileImageURLRequest) (*pb.ProfileImageURLResponse, error) {
	f.seeToken(ctx, "ProfileImageURL")
	return &pb.ProfileImageURLResponse{Url: "https://s3/get/" + in.GetKey()}, f.err
}

func (f *fakeServer) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: f.pingStatus}, f.err
}

func newTestClient(t *testing.T, srv pb.UserServiceServer) *GRPCClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	pb.RegisterUserServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.PermissionDenied, "x")))
	require.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	require.Equal(t, common.ErrTooManyAttempts, c.mapError(status.Error(codes.ResourceExhausted, "slow down")))
	require.Equal(t, common.ErrorNotFound, c.mapError(status.Error(codes.NotFound, "x")))
	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "bad email")), common.ErrorValidation)
	require.ErrorIs(t, c.mapError(status.Error(codes.Canceled, "x")), context.Canceled)
	require.ErrorIs(t, c.mapError(context.DeadlineExceeded), context.DeadlineExceeded)
	require.NoError(t, c.mapError(nil))

	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
}

/*************
 * Ping tests
 *************/

func TestPing(t *testing.T) {
	srv := &fakeServer{pingStatus: "OK"}
	c := newTestClient(t, srv)
	require.NoError(t, c.Ping(testCtx(t)))

	srv.pingStatus = "NOT_OK"
	require.ErrorIs(t, c.Ping(testCtx(t)), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	c := newTestClient(t, &fakeServer{err: status.Error(codes.Unavailable, "down")})
	require.ErrorIs(t, c.Ping(testCtx(t)), ErrUnavailable)
}

/*************
 * Authenticate / CreateUser tests
 *************/

func TestAuthenticate_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		resp    *pb.AuthenticateResponse
		wantID  string
		wantErr error
	}{
		{"ok", &pb.AuthenticateResponse{Outcome: pb.AuthOutcome_AUTH_OUTCOME_OK, UserId: "u-1"}, "u-1", nil},
		{"not found", &pb.AuthenticateResponse{Outcome: pb.AuthOutcome_AUTH_OUTCOME_NOT_FOUND}, "", common.ErrIdentityNotFound},
		{"wrong password", &pb.AuthenticateResponse{Outcome: pb.AuthOutcome_AUTH_OUTCOME_WRONG_PASSWORD}, "", common.ErrWrongPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &fakeServer{authResp: tt.resp}
			c := newTestClient(t, srv)

			id, err := c.Authenticate(testCtx(t), models.Credentials{UserName: "alice", Email: "a@b.c", Password: "pw"})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantID, id)
			want := &pb.AuthenticateRequest{UserName: "alice", Email: "a@b.c", Password: "pw"}
			assert.True(t, proto.Equal(want, srv.lastAuth), "got %v", srv.lastAuth)
		})
	}
}

func TestAuthenticate_UnknownOutcome(t *testing.T) {
	c := newTestClient(t, &fakeServer{authResp: &pb.AuthenticateResponse{Outcome: pb.AuthOutcome_AUTH_OUTCOME_UNSPECIFIED}})
	_, err := c.Authenticate(testCtx(t), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.ErrorContains(t, err, "AUTH_OUTCOME_UNSPECIFIED")
}

func TestAuthenticate_TooManyAttempts(t *testing.T) {
	c := newTestClient(t, &fakeServer{authErr: status.Error(codes.ResourceExhausted, "rate")})
	_, err := c.Authenticate(testCtx(t), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.ErrorIs(t, err, common.ErrTooManyAttempts)
}

func TestCreateUser(t *testing.T) {
	gender := "male"
	srv := &fakeServer{createResp: &pb.CreateUserResponse{UserId: "u-9"}}
	c := newTestClient(t, srv)

	id, err := c.CreateUser(testCtx(t), models.NewUser{
		FirstName: "Bob", LastName: "B", UserName: "bob", Email: "bob@example.com",
		Phone: "5550100", Password: "secret123", Gender: &gender,
	})
	require.NoError(t, err)
	assert.Equal(t, "u-9", id)
	assert.Equal(t, "bob", srv.lastCreate.GetUserName())
	assert.Equal(t, "secret123", srv.lastCreate.GetPassword())
	require.NotNil(t, srv.lastCreate.Gender)
	assert.Equal(t, "male", *srv.lastCreate.Gender)
}

func TestCreateUser_Duplicate(t *testing.T) {
	c := newTestClient(t, &fakeServer{createResp: &pb.CreateUserResponse{DuplicateField: "email"}})

	_, err := c.CreateUser(testCtx(t), models.NewUser{Email: "bob@example.com"})
	require.ErrorIs(t, err, common.ErrDuplicateIdentity)

	var dup *common.DuplicateIdentityError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)
}

/*************
 * user record tests
 *************/

func TestGetUser(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	srv := &fakeServer{user: &pb.User{Id: "u-1", UserName: "alice", Email: "a@b.c", CreatedAt: timestamppb.New(now)}}
	c := newTestClient(t, srv)

	u, err := c.GetUser(testCtx(t), "u-1")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: "u-1", UserName: "alice", Email: "a@b.c", CreatedAt: now}, u)
	assert.Equal(t, "u-1", srv.token("GetUser"))

	srv.user = nil
	_, err = c.GetUser(testCtx(t), "u-1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestWatchUser(t *testing.T) {
	srv := &fakeServer{events: []*pb.UserEvent{
		{User: &pb.User{Id: "u-1", FirstName: "Alice"}},
		{User: &pb.User{Id: "u-1", FirstName: "Alicia"}},
		{},
	}}
	c := newTestClient(t, srv)

	stream, err := c.WatchUser(testCtx(t), "u-1")
	require.NoError(t, err)

	u, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.FirstName)

	u, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "Alicia", u.FirstName)

	u, err = stream.Recv()
	require.NoError(t, err)
	assert.Nil(t, u)

	_, err = stream.Recv()
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "u-1", srv.token("WatchUser"))
}

func TestUserExists(t *testing.T) {
	srv := &fakeServer{}
	c := newTestClient(t, srv)

	ok, err := c.UserExists(testCtx(t), models.IdentityQuery{Email: "taken@example.com"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.UserExists(testCtx(t), models.IdentityQuery{Email: "free@example.com", Phone: "555"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "555", srv.lastExists.GetPhone())
}

func TestUpdateUser(t *testing.T) {
	srv := &fakeServer{updateResp: &pb.UpdateUserResponse{}}
	c := newTestClient(t, srv)

	name := "Alicia"
	require.NoError(t, c.UpdateUser(testCtx(t), "u-1", models.ProfilePatch{FirstName: &name}))
	require.NotNil(t, srv.lastUpdate.FirstName)
	assert.Equal(t, "Alicia", *srv.lastUpdate.FirstName)
	assert.Nil(t, srv.lastUpdate.Email)
	assert.Equal(t, "u-1", srv.token("UpdateUser"))

	srv.updateResp = &pb.UpdateUserResponse{DuplicateField: "phone"}
	err := c.UpdateUser(testCtx(t), "u-1", models.ProfilePatch{FirstName: &name})
	require.ErrorIs(t, err, common.ErrDuplicateIdentity)
}

func TestDeleteUser(t *testing.T) {
	srv := &fakeServer{}
	c := newTestClient(t, srv)

	require.NoError(t, c.DeleteUser(testCtx(t), "u-1"))
	assert.Equal(t, "u-1", srv.token("DeleteUser"))

	srv.err = status.Error(codes.PermissionDenied, "not yours")
	require.ErrorIs(t, c.DeleteUser(testCtx(t), "u-2"), ErrUnauthorized)
}

func TestProfileImageURLs(t *testing.T) {
	srv := &fakeServer{}
	c := newTestClient(t, srv)

	key, url, err := c.ProfileImageUploadURL(testCtx(t), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "avatars/u-1/k", key)
	assert.Equal(t, "https://s3/put", url)
	assert.Equal(t, "u-1", srv.token("ProfileImageUploadURL"))

	get, err := c.ProfileImageURL(testCtx(t), "u-1", key)
	require.NoError(t, err)
	assert.Equal(t, "https://s3/get/avatars/u-1/k", get)
	assert.Equal(t, "u-1", srv.token("ProfileImageURL"))

	srv.err = status.Error(codes.PermissionDenied, "not yours")
	_, err = c.ProfileImageURL(testCtx(t), "u-2", key)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestWithSessionToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.SessionTokenHeaderName, "old", "other", "x")
	ctx = withSessionToken(ctx, "new")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, md.Get(common.SessionTokenHeaderName))
	assert.Equal(t, []string{"x"}, md.Get("other"))
}

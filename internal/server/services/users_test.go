package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/dmitrijs2005/railticket/internal/cryptox"
	"github.com/dmitrijs2005/railticket/internal/dbx"
	"github.com/dmitrijs2005/railticket/internal/logging"
	"github.com/dmitrijs2005/railticket/internal/server/models"
	usersrepo "github.com/dmitrijs2005/railticket/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = cryptox.Argon2Params{MemoryKiB: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

// memUsers is an in-memory users.Repository with the same uniqueness rules
// as the users table.
type memUsers struct {
	mu    sync.Mutex
	rows  map[string]models.User
	fail  error
	reads int
}

func newMemUsers() *memUsers { return &memUsers{rows: map[string]models.User{}} }

func (m *memUsers) conflict(id string, u models.User) error {
	for _, r := range m.rows {
		if r.ID == id {
			continue
		}
		switch {
		case r.UserName == u.UserName:
			return &common.DuplicateIdentityError{Field: models.FieldUserName}
		case r.Email == u.Email:
			return &common.DuplicateIdentityError{Field: models.FieldEmail}
		case r.Phone == u.Phone:
			return &common.DuplicateIdentityError{Field: models.FieldPhone}
		}
	}
	return nil
}

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	if err := m.conflict(u.ID, *u); err != nil {
		return nil, err
	}
	u.CreatedAt, u.UpdatedAt = time.Now(), time.Now()
	m.rows[u.ID] = *u
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.fail != nil {
		return nil, m.fail
	}
	u, ok := m.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (m *memUsers) FindBy(_ context.Context, field, value string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	for _, u := range m.rows {
		var v string
		switch field {
		case models.FieldUserName:
			v = u.UserName
		case models.FieldEmail:
			v = u.Email
		case models.FieldPhone:
			v = u.Phone
		}
		if v == value {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) Exists(_ context.Context, email, userName, phone string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if (email != "" && u.Email == email) || (userName != "" && u.UserName == userName) || (phone != "" && u.Phone == phone) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) Update(_ context.Context, id string, p models.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.UserName, p.UserName)
	set(&u.Email, p.Email)
	set(&u.Phone, p.Phone)
	set(&u.PasswordHash, p.PasswordHash)
	if p.Gender != nil {
		u.Gender = p.Gender
	}
	if p.ProfileImage != nil {
		u.ProfileImage = p.ProfileImage
	}
	if err := m.conflict(id, u); err != nil {
		return nil, err
	}
	u.UpdatedAt = time.Now()
	m.rows[id] = u
	return &u, nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.rows, id)
	return nil
}

type fakeRepoManager struct{ users *memUsers }

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return f.users }

type fixture struct {
	svc   *UserService
	users *memUsers
	hub   *Hub
	bob   *models.User
	alice *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := newMemUsers()
	hub := NewHub()
	svc := NewUserService(nil, &fakeRepoManager{users: users}, testParams, hub, logging.Discard())

	ctx := context.Background()
	bob, err := svc.Create(ctx, NewUser{FirstName: "Bob", LastName: "Stone", UserName: "bob", Email: "bob@example.org", Phone: "+1 555 0100", Password: "secret123"})
	require.NoError(t, err)
	alice, err := svc.Create(ctx, NewUser{FirstName: "Alice", LastName: "Liddell", UserName: "alice", Email: "alice@example.org", Phone: "+44 20 7946 0000", Password: "wonderland"})
	require.NoError(t, err)

	return &fixture{svc: svc, users: users, hub: hub, bob: bob, alice: alice}
}

func TestAuthenticate_Outcomes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.svc.Authenticate(ctx, Credentials{UserName: "bob", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, f.bob.ID, id)

	id, err = f.svc.Authenticate(ctx, Credentials{Email: "bob@example.org", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, f.bob.ID, id)

	id, err = f.svc.Authenticate(ctx, Credentials{Phone: "+1 555 0100", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, f.bob.ID, id)

	_, err = f.svc.Authenticate(ctx, Credentials{UserName: "bob", Password: "nope"})
	require.ErrorIs(t, err, common.ErrWrongPassword)

	_, err = f.svc.Authenticate(ctx, Credentials{UserName: "carol", Password: "secret123"})
	require.ErrorIs(t, err, common.ErrIdentityNotFound)

	_, err = f.svc.Authenticate(ctx, Credentials{Password: "secret123"})
	require.ErrorIs(t, err, common.ErrIdentityNotFound)
}

func TestAuthenticate_UserNameTakesPrecedence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.svc.Authenticate(ctx, Credentials{UserName: "alice", Email: "nobody@example.org", Password: "wonderland"})
	require.NoError(t, err)
	assert.Equal(t, f.alice.ID, id, "the email is never consulted")

	_, err = f.svc.Authenticate(ctx, Credentials{UserName: "carol", Email: "alice@example.org", Password: "wonderland"})
	require.ErrorIs(t, err, common.ErrIdentityNotFound, "no fallback to the next field")

	id, err = f.svc.Authenticate(ctx, Credentials{Email: "alice@example.org", Phone: "+1 555 0100", Password: "wonderland"})
	require.NoError(t, err)
	assert.Equal(t, f.alice.ID, id, "email beats phone")
}

func TestAuthenticate_ExactMatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Authenticate(context.Background(), Credentials{UserName: "Bob", Password: "secret123"})
	require.ErrorIs(t, err, common.ErrIdentityNotFound)

	_, err = f.svc.Authenticate(context.Background(), Credentials{UserName: "bob", Password: "Secret123"})
	require.ErrorIs(t, err, common.ErrWrongPassword)
}

func TestAuthenticate_Errors(t *testing.T) {
	f := newFixture(t)

	f.users.fail = errors.New("db down")
	_, err := f.svc.Authenticate(context.Background(), Credentials{UserName: "bob", Password: "secret123"})
	require.EqualError(t, err, "db down")
	f.users.fail = nil

	u := f.users.rows[f.bob.ID]
	u.PasswordHash = "garbage"
	f.users.rows[f.bob.ID] = u
	_, err = f.svc.Authenticate(context.Background(), Credentials{UserName: "bob", Password: "secret123"})
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestCreate_HashesPassword(t *testing.T) {
	f := newFixture(t)

	stored := f.users.rows[f.bob.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	ok, err := testParams.VerifyPassword(stored.PasswordHash, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, f.bob.ID)
	assert.NotEqual(t, f.bob.ID, f.alice.ID)
}

func TestCreate_Duplicate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), NewUser{FirstName: "B", LastName: "S", UserName: "bobby", Email: "bob@example.org", Phone: "+1 555 0199", Password: "secret123"})
	var dup *common.DuplicateIdentityError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, models.FieldEmail, dup.Field)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)
	valid := NewUser{FirstName: "C", LastName: "D", UserName: "carol", Email: "carol@example.org", Phone: "+1 555 0111", Password: "secret123"}

	cases := map[string]func(u *NewUser){
		"missing email":  func(u *NewUser) { u.Email = " " },
		"at in username": func(u *NewUser) { u.UserName = "carol@x" },
		"short password": func(u *NewUser) { u.Password = "123" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			u := valid
			mutate(&u)
			_, err := f.svc.Create(context.Background(), u)
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestExists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.svc.Exists(ctx, "bob@example.org", "", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.Exists(ctx, "", "carol", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	last, pw := "Smith", "newsecret"

	u, err := f.svc.Update(ctx, f.bob.ID, UserUpdate{LastName: &last, Password: &pw})
	require.NoError(t, err)
	assert.Equal(t, "Smith", u.LastName)

	_, err = f.svc.Authenticate(ctx, Credentials{UserName: "bob", Password: "secret123"})
	require.ErrorIs(t, err, common.ErrWrongPassword)
	_, err = f.svc.Authenticate(ctx, Credentials{UserName: "bob", Password: "newsecret"})
	require.NoError(t, err)
}

func TestUpdate_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	empty, spaced, short := "", "bo b", "123"
	foreign := AvatarKeyPrefix(f.alice.ID) + "x"
	taken := "alice"

	for name, upd := range map[string]UserUpdate{
		"empty email":     {Email: &empty},
		"spaced username": {UserName: &spaced},
		"short password":  {Password: &short},
		"foreign avatar":  {ProfileImage: &foreign},
	} {
		_, err := f.svc.Update(ctx, f.bob.ID, upd)
		require.ErrorIs(t, err, common.ErrorValidation, name)
	}

	_, err := f.svc.Update(ctx, f.bob.ID, UserUpdate{UserName: &taken})
	require.ErrorIs(t, err, common.ErrDuplicateIdentity)

	_, err = f.svc.Update(ctx, "ghost", UserUpdate{LastName: &taken})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_OwnAvatarKey(t *testing.T) {
	f := newFixture(t)
	key := AvatarKeyPrefix(f.bob.ID) + "1"

	u, err := f.svc.Update(context.Background(), f.bob.ID, UserUpdate{ProfileImage: &key})
	require.NoError(t, err)
	require.NotNil(t, u.ProfileImage)
	assert.Equal(t, key, *u.ProfileImage)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Delete(ctx, f.bob.ID))
	_, err := f.svc.Get(ctx, f.bob.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.ErrorIs(t, f.svc.Delete(ctx, f.bob.ID), common.ErrorNotFound)

	_, err = f.svc.Authenticate(ctx, Credentials{UserName: "bob", Password: "secret123"})
	require.ErrorIs(t, err, common.ErrIdentityNotFound)
}

func TestWatch_FollowsUpdatesAndDeletion(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := make(chan *models.User, 8)
	done := make(chan error, 1)
	go func() {
		done <- f.svc.Watch(ctx, f.bob.ID, func(u *models.User) error {
			frames <- u
			return nil
		})
	}()

	next := func() *models.User {
		select {
		case u := <-frames:
			return u
		case <-time.After(2 * time.Second):
			t.Fatal("no frame")
			return nil
		}
	}

	first := next()
	require.NotNil(t, first)
	assert.Equal(t, "Stone", first.LastName)

	last := "Smith"
	_, err := f.svc.Update(context.Background(), f.bob.ID, UserUpdate{LastName: &last})
	require.NoError(t, err)
	assert.Equal(t, "Smith", next().LastName)

	require.NoError(t, f.svc.Delete(context.Background(), f.bob.ID))
	assert.Nil(t, next(), "deleted account is reported as absent")

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Equal(t, 0, f.hub.Watchers())
}

func TestWatch_SendErrorStops(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("client gone")

	err := f.svc.Watch(context.Background(), f.alice.ID, func(*models.User) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, f.hub.Watchers())
}

func TestWatch_RepoError(t *testing.T) {
	f := newFixture(t)
	f.users.fail = errors.New("db down")

	err := f.svc.Watch(context.Background(), f.alice.ID, func(*models.User) error { return nil })
	require.EqualError(t, err, "db down")
}

package usersrv_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartresume/smartresume/builder/user"
	"github.com/smartresume/smartresume/builder/user/userauth"
	"github.com/smartresume/smartresume/builder/user/usersrv"
	"github.com/smartresume/smartresume/pkg/errx"
	"github.com/smartresume/smartresume/pkg/kernel"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[kernel.UserID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[kernel.UserID]*user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken()
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func newTestService() *usersrv.Service {
	return usersrv.New(
		newMemUserRepo(),
		userauth.NewBcryptPasswordService(),
		userauth.NewJWTTokenService("test-secret", time.Hour, "smartresume"),
	)
}

func TestSignupAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	signup, err := svc.Signup(ctx, user.SignupRequest{
		FullName: "Jane Doe",
		Email:    "Jane.Doe@Example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, signup.Token)
	assert.Equal(t, "Jane Doe", signup.User.FullName)

	// Email lookup is case-insensitive via normalization
	login, err := svc.Login(ctx, user.LoginRequest{
		Email:    "jane.doe@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, login.User.ID)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Signup(context.Background(), user.SignupRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "short",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, user.CodeWeakPassword, e.Code)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, user.SignupRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, user.SignupRequest{
		FullName: "Other Jane",
		Email:    "JANE@example.com",
		Password: "another strong password",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, user.CodeEmailTaken, e.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, user.SignupRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, user.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong password entirely",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, user.CodeInvalidCredentials, e.Code)
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever password",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, user.CodeInvalidCredentials, e.Code)
}

func TestMe(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	signup, err := svc.Signup(ctx, user.SignupRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	profile, err := svc.Me(ctx, signup.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, kernel.NewEmail("jane@example.com"), profile.Email)
}

package usersrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartresume/smartresume/builder/user"
	"github.com/smartresume/smartresume/pkg/kernel"
	"github.com/smartresume/smartresume/pkg/logx"
)

const minPasswordLength = 8

// Service implements account signup, login and profile lookup
type Service struct {
	repo     user.Repository
	password user.PasswordService
	tokens   user.TokenService
}

func New(repo user.Repository, password user.PasswordService, tokens user.TokenService) *Service {
	return &Service{
		repo:     repo,
		password: password,
		tokens:   tokens,
	}
}

// Signup registers a new account and returns an access token
func (s *Service) Signup(ctx context.Context, req user.SignupRequest) (*user.AuthResponse, error) {
	email := user.NormalizeEmail(req.Email)

	if len(req.Password) < minPasswordLength {
		return nil, user.ErrWeakPassword()
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, user.ErrRegistry.NewWithCause(user.CodeInvalidUserData, err).
			WithDetail("email", email)
	}
	if taken {
		return nil, user.ErrEmailTaken().WithDetail("email", email)
	}

	hash, err := s.password.Hash(req.Password)
	if err != nil {
		return nil, user.ErrRegistry.NewWithCause(user.CodeInvalidUserData, err)
	}

	now := time.Now()
	u := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	logx.Infof("User registered: UserID=%s", u.ID)

	return &user.AuthResponse{Token: token, User: u.ToResponse()}, nil
}

// Login authenticates an account and returns an access token
func (s *Service) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	email := user.NormalizeEmail(req.Email)

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Do not leak whether the email exists
		return nil, user.ErrInvalidCredentials()
	}

	if err := s.password.Compare(u.PasswordHash, req.Password); err != nil {
		return nil, user.ErrInvalidCredentials()
	}

	token, err := s.tokens.Generate(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	logx.Infof("User logged in: UserID=%s", u.ID)

	return &user.AuthResponse{Token: token, User: u.ToResponse()}, nil
}

// Me returns the profile of the authenticated user
func (s *Service) Me(ctx context.Context, id kernel.UserID) (*user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", id)
	}
	resp := u.ToResponse()
	return &resp, nil
}

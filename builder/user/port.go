package user

import (
	"context"

	"github.com/smartresume/smartresume/pkg/kernel"
)

type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, u *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// ExistsByEmail checks whether an email is already registered
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
}

// PasswordService hashes and verifies account passwords
type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenService issues and validates access tokens
type TokenService interface {
	Generate(userID kernel.UserID, email kernel.Email) (string, error)
	Validate(token string) (*Claims, error)
}

// Claims are the validated contents of an access token
type Claims struct {
	UserID kernel.UserID
	Email  kernel.Email
}

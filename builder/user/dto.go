package user

import (
	"time"

	"github.com/smartresume/smartresume/pkg/kernel"
)

// SignupRequest - Register a new account
type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest - Authenticate an existing account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse - Public view of a user
type UserResponse struct {
	ID        kernel.UserID `json:"id"`
	FullName  string        `json:"full_name"`
	Email     kernel.Email  `json:"email"`
	CreatedAt time.Time     `json:"created_at"`
}

// AuthResponse - Token plus the authenticated user
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToResponse converts a user entity to its public view
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

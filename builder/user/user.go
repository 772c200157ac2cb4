package user

import (
	"strings"
	"time"

	"github.com/smartresume/smartresume/pkg/kernel"
)

// User is an account that owns resumes
type User struct {
	ID           kernel.UserID `db:"id" json:"id"`
	FullName     string        `db:"full_name" json:"full_name"`
	Email        kernel.Email  `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// NormalizeEmail lowercases and trims an email for storage and lookup
func NormalizeEmail(email string) kernel.Email {
	return kernel.Email(strings.ToLower(strings.TrimSpace(email)))
}

// Validate checks the minimum shape of a user record
func (u *User) Validate() error {
	if strings.TrimSpace(u.FullName) == "" {
		return ErrInvalidUserData().WithDetail("field", "full_name")
	}
	if u.Email.IsEmpty() || !strings.Contains(u.Email.String(), "@") {
		return ErrInvalidUserData().WithDetail("field", "email")
	}
	return nil
}

//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest represents the request to create a new user with password authentication.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Next     string `json:"next,omitempty"`
}

// LoginRequest represents the login request. Next carries the navigation
// intent captured before the login redirect.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Next     string `json:"next,omitempty"`
}

// User is the public view of an account. The password hash never leaves the db package.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response. Next is set only when
// the requested post-login target was a safe local path.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
	Next  string `json:"next,omitempty"`
}

// UpdatePasswordRequest represents a password update request.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// Validate checks required fields, email format and minimum password length
func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks the login fields are present
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdatePasswordRequest) Validate() error {
	return validate.Struct(r)
}

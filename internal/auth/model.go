// Package auth implements user accounts for sitehub: registration, login,
// credential hashing, field validation, and Redis-backed sessions for the
// HTTP layer.
//
// The account contract is deliberately small. Register and Login return a
// *User or an *apperror.AppError whose Message is the exact string shown
// to the person at the keyboard; no other error type crosses the package
// boundary.
package auth

import (
	"time"
)

// DefaultAvatar is the sentinel avatar reference assigned to accounts that
// never uploaded one.
const DefaultAvatar = "default_avatar.png"

// User represents a registered account. This is the domain model used
// throughout the application; database scanning and JSON marshaling use
// this struct directly.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // Never expose in JSON responses.
	Email        *string    `json:"email,omitempty"`
	DisplayName  *string    `json:"display_name,omitempty"`
	AvatarPath   string     `json:"avatar_path"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// RegisterInput is the input for creating a new account. Email is optional;
// empty string means "not provided".
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
	Email    string `json:"email"`
}

// LoginInput is the input for authenticating an account.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session represents an authenticated user session stored in Redis.
// The session token is the key, and this struct is the value (JSON-encoded).
// Sessions belong to the HTTP layer; the Register/Login contract itself
// stops at the returned *User.
type Session struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

package domain

import (
	"errors"
	"strings"
	"time"
)

// Role identifies what a user is allowed to do.
type Role string

// Supported roles
const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a stored role string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// User is an account that can authenticate and study decks.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID <= 0 {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID int64
	Role   Role
}

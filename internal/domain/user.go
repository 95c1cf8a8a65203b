package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role represents user role
type Role string

const (
	RoleDefault Role = "default"
	RoleAdmin   Role = "admin"
)

// User represents a registered diner or staff member
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IdentityClaim is the payload signed into a session token
type IdentityClaim struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role,omitempty"`
	jwt.RegisteredClaims
}

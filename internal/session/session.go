// Package session implements the cookie-based session scheme: the typed user
// identity carried by the cookie, the signed token codec, and the
// request-scoped accessors protected handlers use to obtain the caller.
package session

import (
	"errors"
	"strings"
)

var (
	// ErrUnauthorized is returned when a handler requires an identity and
	// the request context carries none.
	ErrUnauthorized = errors.New("session: unauthorized")

	// ErrInvalidUser is returned when an identity record is structurally
	// incomplete and cannot be encoded.
	ErrInvalidUser = errors.New("session: invalid user")
)

// Role is the fixed set of access levels a session can carry.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
	RoleViewer  Role = "viewer"
)

// roleRank orders roles for at-least comparisons. Higher is stronger.
var roleRank = map[Role]int{
	RoleViewer:  1,
	RoleUser:    2,
	RoleManager: 3,
	RoleAdmin:   4,
}

// ParseRole validates a raw role value against the fixed enumeration.
// Anything outside the four known values fails closed.
func ParseRole(raw string) (Role, bool) {
	role := Role(strings.TrimSpace(strings.ToLower(raw)))
	if _, ok := roleRank[role]; !ok {
		return "", false
	}
	return role, true
}

// AtLeast reports whether the role grants at least the given level.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}

// SessionUser is the identity record carried inside the session cookie.
// It is created wholesale at login and never partially mutated.
type SessionUser struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Valid reports whether every required field is present.
func (u SessionUser) Valid() bool {
	if u.ID <= 0 {
		return false
	}
	if strings.TrimSpace(u.FullName) == "" || strings.TrimSpace(u.Email) == "" {
		return false
	}
	_, ok := ParseRole(string(u.Role))
	return ok
}

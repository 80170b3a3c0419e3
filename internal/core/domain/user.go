package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of identities a user can hold. The role catalog in
// the store only confirms availability; the domain itself is fixed here.
type Role string

const (
	RoleBroker Role = "Broker"
	RoleSeeker Role = "Seeker"
)

// DefaultRole is the claim used when a stored user carries no role.
const DefaultRole = RoleSeeker

// AllRoles lists every role seeded at startup.
var AllRoles = []Role{RoleBroker, RoleSeeker}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	return r == RoleBroker || r == RoleSeeker
}

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// User models a registered actor. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName is the name claim embedded in session tokens.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ValidationError aggregates every violated registration rule so callers see
// the full list rather than only the first failure.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// AuditAction identifies the auth operation an audit event records.
type AuditAction string

const (
	AuditRegister AuditAction = "register"
	AuditLogin    AuditAction = "login"
)

// AuthEvent is an audit-trail record of a registration or login attempt.
type AuthEvent struct {
	Email     string      `json:"email"`
	Action    AuditAction `json:"action"`
	Success   bool        `json:"success"`
	Reason    string      `json:"reason,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

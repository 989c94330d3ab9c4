// Package identity contains the identity domain model: role-tagged user
// accounts and the in-memory directory used for login and duplicate-email
// detection.
package identity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alem-hub/alem-lms/internal/domain/shared"
	"github.com/alem-hub/alem-lms/internal/validate"
)

// Role is the closed set of actor roles. Each role exposes its own
// operation set at the application layer; the entity itself is just a
// tagged credential triple.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleTeacher       Role = "teacher"
	RoleStudent       Role = "student"
)

// IsValid reports whether the role is one of the known variants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string { return string(r) }

// Identity represents a registered user: a username/email/password triple
// tagged with a role. Email is the unique natural key across the system.
type Identity struct {
	// ID is the internal surrogate identifier. Display always goes
	// through positional indices at the boundary.
	ID string

	Username string
	Email    string
	Password string
	Role     Role
}

// NewIdentityParams contains the parameters for creating an identity.
type NewIdentityParams struct {
	Username string
	Email    string
	Password string
	Role     Role
}

// NewIdentity creates a new identity with validation of all fields.
func NewIdentity(params NewIdentityParams) (*Identity, error) {
	username := strings.TrimSpace(params.Username)
	if !validate.NonEmptyString(username) {
		return nil, shared.ErrInvalidUsername
	}
	if !validate.Email(params.Email) {
		return nil, shared.ErrInvalidEmail
	}
	if params.Password == "" {
		return nil, shared.ErrInvalidPassword
	}
	if !params.Role.IsValid() {
		return nil, shared.ErrInvalidRole
	}

	return &Identity{
		ID:       uuid.NewString(),
		Username: username,
		Email:    params.Email,
		Password: params.Password,
		Role:     params.Role,
	}, nil
}

// UsernameFromEmail derives a username from the local part of an email
// address (everything before the '@'). Used when an administrator creates
// a student account during enrollment.
func UsernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// String returns a representation safe for logging (no password).
func (i *Identity) String() string {
	return fmt.Sprintf("Identity{Username: %s, Email: %s, Role: %s}", i.Username, i.Email, i.Role)
}

// Clone returns a copy of the identity.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

// Package cli implements the text-menu boundary of the system: the login
// loop, the role-scoped menus, input prompting with bounded retries, and
// rendering of the structured results returned by the application layer.
// The core never performs terminal I/O itself; it all happens here.
package cli

import (
	"github.com/alem-hub/alem-lms/internal/domain/identity"
)

// Session is the role session state machine. Each identity has exactly
// two reachable states, LoggedOut and LoggedIn(role); logging out is
// always available and unconditional.
type Session struct {
	actor *identity.Identity
}

// NewSession starts in the LoggedOut state.
func NewSession() *Session {
	return &Session{}
}

// LoggedIn reports whether an actor is currently logged in.
func (s *Session) LoggedIn() bool {
	return s.actor != nil
}

// Login transitions to LoggedIn(role) for the given identity.
func (s *Session) Login(actor *identity.Identity) {
	s.actor = actor
}

// Logout transitions back to LoggedOut. Always permitted.
func (s *Session) Logout() {
	s.actor = nil
}

// Actor returns the logged-in identity, or nil when logged out.
func (s *Session) Actor() *identity.Identity {
	return s.actor
}

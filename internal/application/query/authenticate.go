package query

import (
	"context"

	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
	"github.com/alem-hub/alem-lms/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// AUTHENTICATE QUERY
// A pure credential lookup with no session side effects. The boundary
// layer owns the login loop and the resulting role session.
// ══════════════════════════════════════════════════════════════════════════════

// AuthenticateHandler resolves credentials to a role-tagged identity.
type AuthenticateHandler struct {
	directory *identity.Directory
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewAuthenticateHandler creates a new AuthenticateHandler.
func NewAuthenticateHandler(directory *identity.Directory, publisher shared.EventPublisher, log *logger.Logger) *AuthenticateHandler {
	return &AuthenticateHandler{directory: directory, publisher: publisher, log: log}
}

// Handle looks up the identity matching the credentials. It returns
// shared.ErrBadCredentials when no identity matches.
func (h *AuthenticateHandler) Handle(ctx context.Context, email, password string) (*identity.Identity, error) {
	id, err := h.directory.Authenticate(email, password)
	if err != nil {
		h.log.Warn("login failed", logger.Email(email))
		h.publisher.Publish(loginEvent(shared.EventLoginFailed, email, ""))
		return nil, err
	}

	h.log.Info("login succeeded", logger.Email(email), logger.Role(id.Role.String()))
	h.publisher.Publish(loginEvent(shared.EventLoginSucceeded, email, id.Role.String()))
	return id, nil
}

// loginOutcomeEvent records a login attempt for the audit log.
type loginOutcomeEvent struct {
	shared.BaseEvent
	email string
	role  string
}

func loginEvent(t shared.EventType, email, role string) loginOutcomeEvent {
	return loginOutcomeEvent{
		BaseEvent: shared.NewBaseEvent(t, email),
		email:     email,
		role:      role,
	}
}

// Payload implements shared.Event.
func (e loginOutcomeEvent) Payload() map[string]any {
	p := map[string]any{"email": e.email}
	if e.role != "" {
		p["role"] = e.role
	}
	return p
}

package command

import (
	"context"

	"github.com/alem-hub/alem-lms/internal/domain/course"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
	"github.com/alem-hub/alem-lms/internal/validate"
	"github.com/alem-hub/alem-lms/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SELF ENROLL COMMAND
// A student enrolls themselves in a course. The already-enrolled check
// happens here as well as in the aggregate: the role layer is a second
// line of defense, kept from the historical implementation.
// ══════════════════════════════════════════════════════════════════════════════

// SelfEnrollCommand enrolls the acting student in a course.
type SelfEnrollCommand struct {
	Actor       identity.Identity `validate:"-"`
	CourseIndex int               `validate:"gte=0"`
}

// Validate validates the command.
func (c SelfEnrollCommand) Validate() error {
	return validate.Struct(c)
}

// SelfEnrollHandler handles SelfEnrollCommand.
type SelfEnrollHandler struct {
	registry  *course.Registry
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewSelfEnrollHandler creates a new SelfEnrollHandler.
func NewSelfEnrollHandler(registry *course.Registry, publisher shared.EventPublisher, log *logger.Logger) *SelfEnrollHandler {
	return &SelfEnrollHandler{registry: registry, publisher: publisher, log: log}
}

// Handle executes the self enroll command.
func (h *SelfEnrollHandler) Handle(ctx context.Context, cmd SelfEnrollCommand) error {
	if cmd.Actor.Role != identity.RoleStudent {
		return shared.ErrNotAuthorized
	}
	if err := cmd.Validate(); err != nil {
		return shared.WrapError("student", "Enroll", shared.ErrValidation, "invalid command", err)
	}

	c, err := h.registry.Get(cmd.CourseIndex)
	if err != nil {
		return err
	}
	enrolled, err := c.IsEnrolled(cmd.Actor.Email)
	if err != nil {
		return err
	}
	if enrolled {
		return shared.ErrAlreadyEnrolled
	}
	if err := c.Enroll(cmd.Actor.Email); err != nil {
		return err
	}

	h.log.Info("student self-enrolled",
		logger.Op("SelfEnroll"),
		logger.CourseName(c.Name()),
		logger.Email(cmd.Actor.Email))

	h.publisher.Publish(shared.StudentEnrolledEvent{
		BaseEvent:    shared.NewBaseEvent(shared.EventStudentEnrolled, c.ID()),
		CourseName:   c.Name(),
		StudentEmail: cmd.Actor.Email,
	})

	return nil
}

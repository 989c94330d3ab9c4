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
// ADD GRADE COMMAND
// The teacher operation enforces roster membership before delegating to
// the course aggregate. The aggregate itself does not check enrollment;
// that contract lives here.
// ══════════════════════════════════════════════════════════════════════════════

// AddGradeCommand records a grade for an enrolled student.
type AddGradeCommand struct {
	Actor        identity.Identity `validate:"-"`
	CourseIndex  int               `validate:"gte=0"`
	StudentEmail string            `validate:"lmsemail"`
	Grade        int               `validate:"grade"`
}

// Validate validates the command.
func (c AddGradeCommand) Validate() error {
	return validate.Struct(c)
}

// AddGradeHandler handles AddGradeCommand.
type AddGradeHandler struct {
	registry  *course.Registry
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewAddGradeHandler creates a new AddGradeHandler.
func NewAddGradeHandler(registry *course.Registry, publisher shared.EventPublisher, log *logger.Logger) *AddGradeHandler {
	return &AddGradeHandler{registry: registry, publisher: publisher, log: log}
}

// Handle executes the add grade command.
func (h *AddGradeHandler) Handle(ctx context.Context, cmd AddGradeCommand) error {
	if cmd.Actor.Role != identity.RoleTeacher {
		return shared.ErrNotAuthorized
	}
	if err := cmd.Validate(); err != nil {
		return shared.WrapError("teacher", "AddGrade", shared.ErrValidation, "invalid command", err)
	}

	c, err := h.registry.Get(cmd.CourseIndex)
	if err != nil {
		return err
	}
	enrolled, err := c.IsEnrolled(cmd.StudentEmail)
	if err != nil {
		return err
	}
	if !enrolled {
		return shared.ErrGradeNotEnrolled
	}
	if err := c.AddGrade(cmd.StudentEmail, cmd.Grade); err != nil {
		return err
	}

	h.log.Info("grade recorded",
		logger.Op("AddGrade"),
		logger.CourseName(c.Name()),
		logger.Email(cmd.StudentEmail),
		logger.Grade(cmd.Grade))

	h.publisher.Publish(shared.GradeRecordedEvent{
		BaseEvent:    shared.NewBaseEvent(shared.EventGradeRecorded, c.ID()),
		CourseName:   c.Name(),
		StudentEmail: cmd.StudentEmail,
		Grade:        cmd.Grade,
	})

	return nil
}

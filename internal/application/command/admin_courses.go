// Package command contains the write operations of the system (CQRS
// commands). Each command is a self-contained use case: a command struct
// with validation, a handler with its dependencies, and a typed result.
// Role checks happen here, not in the domain entities.
package command

import (
	"context"

	"github.com/alem-hub/alem-lms/config"
	"github.com/alem-hub/alem-lms/internal/domain/course"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
	"github.com/alem-hub/alem-lms/internal/validate"
	"github.com/alem-hub/alem-lms/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD COURSE COMMAND
// Administrator creates a new course. Depending on policy, a teacher that
// already owns a course may not be assigned a second one.
// ══════════════════════════════════════════════════════════════════════════════

// AddCourseCommand contains the data needed to create a course.
type AddCourseCommand struct {
	Actor        identity.Identity `validate:"-"`
	Name         string            `validate:"required,max=100"`
	TeacherEmail string            `validate:"lmsemail"`
}

// Validate validates the command.
func (c AddCourseCommand) Validate() error {
	return validate.Struct(c)
}

// AddCourseResult contains the result of course creation.
type AddCourseResult struct {
	// CourseID is the stable surrogate ID of the new course.
	CourseID string

	// DisplayIndex is the 1-based position of the new course at the
	// time of creation. It is valid only until the next structural
	// mutation of the registry.
	DisplayIndex int
}

// AddCourseHandler handles AddCourseCommand.
type AddCourseHandler struct {
	registry  *course.Registry
	policy    config.PolicyConfig
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewAddCourseHandler creates a new AddCourseHandler.
func NewAddCourseHandler(registry *course.Registry, policy config.PolicyConfig, publisher shared.EventPublisher, log *logger.Logger) *AddCourseHandler {
	return &AddCourseHandler{registry: registry, policy: policy, publisher: publisher, log: log}
}

// Handle executes the add course command.
func (h *AddCourseHandler) Handle(ctx context.Context, cmd AddCourseCommand) (*AddCourseResult, error) {
	if cmd.Actor.Role != identity.RoleAdministrator {
		return nil, shared.ErrNotAuthorized
	}
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("admin", "AddCourse", shared.ErrValidation, "invalid command", err)
	}

	if h.policy.EnforceUniqueTeacher && h.registry.TeacherOwns(cmd.TeacherEmail) {
		return nil, shared.ErrTeacherAssigned
	}

	c, err := course.New(cmd.Name, cmd.TeacherEmail)
	if err != nil {
		return nil, err
	}
	h.registry.Add(c)

	h.log.Info("course added",
		logger.Op("AddCourse"),
		logger.CourseName(cmd.Name),
		logger.Email(cmd.TeacherEmail))

	h.publisher.Publish(shared.CourseCreatedEvent{
		BaseEvent:    shared.NewBaseEvent(shared.EventCourseCreated, c.ID),
		CourseName:   cmd.Name,
		TeacherEmail: cmd.TeacherEmail,
	})

	return &AddCourseResult{CourseID: c.ID, DisplayIndex: h.registry.Size()}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DELETE COURSE COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// DeleteCourseCommand deletes the course at a 0-based index. All higher
// indices shift down by one; callers must re-fetch indices afterwards.
type DeleteCourseCommand struct {
	Actor       identity.Identity `validate:"-"`
	CourseIndex int               `validate:"gte=0"`
}

// Validate validates the command.
func (c DeleteCourseCommand) Validate() error {
	return validate.Struct(c)
}

// DeleteCourseHandler handles DeleteCourseCommand.
type DeleteCourseHandler struct {
	registry  *course.Registry
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewDeleteCourseHandler creates a new DeleteCourseHandler.
func NewDeleteCourseHandler(registry *course.Registry, publisher shared.EventPublisher, log *logger.Logger) *DeleteCourseHandler {
	return &DeleteCourseHandler{registry: registry, publisher: publisher, log: log}
}

// Handle executes the delete course command.
func (h *DeleteCourseHandler) Handle(ctx context.Context, cmd DeleteCourseCommand) error {
	if cmd.Actor.Role != identity.RoleAdministrator {
		return shared.ErrNotAuthorized
	}
	if err := cmd.Validate(); err != nil {
		return shared.WrapError("admin", "DeleteCourse", shared.ErrValidation, "invalid command", err)
	}

	removed, err := h.registry.Remove(cmd.CourseIndex)
	if err != nil {
		return err
	}

	h.log.Info("course deleted", logger.Op("DeleteCourse"), logger.CourseName(removed.Name))

	h.publisher.Publish(shared.CourseDeletedEvent{
		BaseEvent:  shared.NewBaseEvent(shared.EventCourseDeleted, removed.ID),
		CourseName: removed.Name,
	})

	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// CONTENT COMMANDS
// Editing a course means adding or removing content items. Adding is
// open to administrators and teachers; removal is an administrator
// operation, matching the historical menus.
// ══════════════════════════════════════════════════════════════════════════════

// AddContentCommand appends a content item to a course.
type AddContentCommand struct {
	Actor       identity.Identity `validate:"-"`
	CourseIndex int               `validate:"gte=0"`
	Content     string            `validate:"required,max=100"`
}

// Validate validates the command.
func (c AddContentCommand) Validate() error {
	return validate.Struct(c)
}

// AddContentHandler handles AddContentCommand.
type AddContentHandler struct {
	registry  *course.Registry
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewAddContentHandler creates a new AddContentHandler.
func NewAddContentHandler(registry *course.Registry, publisher shared.EventPublisher, log *logger.Logger) *AddContentHandler {
	return &AddContentHandler{registry: registry, publisher: publisher, log: log}
}

// Handle executes the add content command.
func (h *AddContentHandler) Handle(ctx context.Context, cmd AddContentCommand) error {
	if cmd.Actor.Role != identity.RoleAdministrator && cmd.Actor.Role != identity.RoleTeacher {
		return shared.ErrNotAuthorized
	}
	if err := cmd.Validate(); err != nil {
		return shared.WrapError("course", "AddContent", shared.ErrValidation, "invalid command", err)
	}

	c, err := h.registry.Get(cmd.CourseIndex)
	if err != nil {
		return err
	}
	if err := c.AddContent(cmd.Content); err != nil {
		return err
	}

	h.log.Info("content added", logger.Op("AddContent"), logger.CourseName(c.Name()))

	h.publisher.Publish(shared.CourseEditedEvent{
		BaseEvent:  shared.NewBaseEvent(shared.EventCourseEdited, c.ID()),
		CourseName: c.Name(),
		Change:     "content_added",
	})
	return nil
}

// RemoveContentCommand removes the content item at a 0-based index.
type RemoveContentCommand struct {
	Actor        identity.Identity `validate:"-"`
	CourseIndex  int               `validate:"gte=0"`
	ContentIndex int               `validate:"gte=0"`
}

// Validate validates the command.
func (c RemoveContentCommand) Validate() error {
	return validate.Struct(c)
}

// RemoveContentHandler handles RemoveContentCommand.
type RemoveContentHandler struct {
	registry  *course.Registry
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewRemoveContentHandler creates a new RemoveContentHandler.
func NewRemoveContentHandler(registry *course.Registry, publisher shared.EventPublisher, log *logger.Logger) *RemoveContentHandler {
	return &RemoveContentHandler{registry: registry, publisher: publisher, log: log}
}

// Handle executes the remove content command.
func (h *RemoveContentHandler) Handle(ctx context.Context, cmd RemoveContentCommand) error {
	if cmd.Actor.Role != identity.RoleAdministrator {
		return shared.ErrNotAuthorized
	}
	if err := cmd.Validate(); err != nil {
		return shared.WrapError("admin", "RemoveContent", shared.ErrValidation, "invalid command", err)
	}

	c, err := h.registry.Get(cmd.CourseIndex)
	if err != nil {
		return err
	}
	if err := c.RemoveContent(cmd.ContentIndex); err != nil {
		return err
	}

	h.log.Info("content removed", logger.Op("RemoveContent"), logger.CourseName(c.Name()))

	h.publisher.Publish(shared.CourseEditedEvent{
		BaseEvent:  shared.NewBaseEvent(shared.EventCourseEdited, c.ID()),
		CourseName: c.Name(),
		Change:     "content_removed",
	})
	return nil
}

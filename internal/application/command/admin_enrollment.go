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
// ENROLL STUDENT COMMAND (administrator-driven)
// Two-phase: if the student email has no account, a Student identity is
// created (username derived from the local part of the email) before the
// roster insertion. When the insertion fails and the rollback policy is
// on, the freshly created account is removed so it is not left orphaned.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentCommand contains the data for administrator-driven
// enrollment with account creation.
type EnrollStudentCommand struct {
	Actor        identity.Identity `validate:"-"`
	CourseIndex  int               `validate:"gte=0"`
	StudentEmail string            `validate:"lmsemail"`
	// Password for the account created when the email is new.
	Password string `validate:"required"`
}

// Validate validates the command.
func (c EnrollStudentCommand) Validate() error {
	return validate.Struct(c)
}

// EnrollStudentResult contains the result of the enrollment.
type EnrollStudentResult struct {
	CourseName string

	// AccountCreated reports whether a new student account was created.
	AccountCreated bool
}

// EnrollStudentHandler handles EnrollStudentCommand.
type EnrollStudentHandler struct {
	registry  *course.Registry
	directory *identity.Directory
	policy    config.PolicyConfig
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewEnrollStudentHandler creates a new EnrollStudentHandler.
func NewEnrollStudentHandler(registry *course.Registry, directory *identity.Directory, policy config.PolicyConfig, publisher shared.EventPublisher, log *logger.Logger) *EnrollStudentHandler {
	return &EnrollStudentHandler{
		registry:  registry,
		directory: directory,
		policy:    policy,
		publisher: publisher,
		log:       log,
	}
}

// Handle executes the enroll student command.
func (h *EnrollStudentHandler) Handle(ctx context.Context, cmd EnrollStudentCommand) (*EnrollStudentResult, error) {
	if cmd.Actor.Role != identity.RoleAdministrator {
		return nil, shared.ErrNotAuthorized
	}
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("admin", "EnrollStudent", shared.ErrValidation, "invalid command", err)
	}

	c, err := h.registry.Get(cmd.CourseIndex)
	if err != nil {
		return nil, err
	}

	accountCreated := false
	_, findErr := h.directory.FindByEmail(cmd.StudentEmail)
	switch {
	case findErr == nil:
		// Account exists. Under the duplicate-account policy that is a
		// conflict; otherwise the existing account is simply enrolled.
		if h.policy.CheckDuplicateAccount {
			return nil, shared.ErrDuplicateEmail
		}
	case shared.IsNotFound(findErr):
		id, err := identity.NewIdentity(identity.NewIdentityParams{
			Username: identity.UsernameFromEmail(cmd.StudentEmail),
			Email:    cmd.StudentEmail,
			Password: cmd.Password,
			Role:     identity.RoleStudent,
		})
		if err != nil {
			return nil, err
		}
		if err := h.directory.Register(id); err != nil {
			return nil, err
		}
		accountCreated = true

		h.publisher.Publish(shared.AccountCreatedEvent{
			BaseEvent: shared.NewBaseEvent(shared.EventAccountCreated, id.ID),
			Email:     id.Email,
			Role:      id.Role.String(),
		})
	default:
		return nil, findErr
	}

	if err := c.Enroll(cmd.StudentEmail); err != nil {
		if accountCreated && h.policy.RollbackAccountOnEnrollFailure {
			if rbErr := h.directory.Unregister(cmd.StudentEmail); rbErr != nil {
				h.log.Error("account rollback failed",
					logger.Email(cmd.StudentEmail),
					logger.Err(rbErr))
			} else {
				h.publisher.Publish(shared.AccountRolledBackEvent{
					BaseEvent: shared.NewBaseEvent(shared.EventAccountRolledBack, cmd.StudentEmail),
					Email:     cmd.StudentEmail,
				})
			}
		}
		return nil, err
	}

	h.log.Info("student enrolled",
		logger.Op("EnrollStudent"),
		logger.CourseName(c.Name()),
		logger.Email(cmd.StudentEmail),
		logger.Bool("account_created", accountCreated))

	h.publisher.Publish(shared.StudentEnrolledEvent{
		BaseEvent:      shared.NewBaseEvent(shared.EventStudentEnrolled, c.ID()),
		CourseName:     c.Name(),
		StudentEmail:   cmd.StudentEmail,
		AccountCreated: accountCreated,
	})

	return &EnrollStudentResult{CourseName: c.Name(), AccountCreated: accountCreated}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// REMOVE STUDENT COMMAND
// Removing a student from a roster does not cascade-delete their grade
// entries unless the purge policy is on. The identity itself is never
// deleted; the directory has no account-removal workflow.
// ══════════════════════════════════════════════════════════════════════════════

// RemoveStudentCommand removes a student email from a course roster.
type RemoveStudentCommand struct {
	Actor        identity.Identity `validate:"-"`
	CourseIndex  int               `validate:"gte=0"`
	StudentEmail string            `validate:"lmsemail"`
}

// Validate validates the command.
func (c RemoveStudentCommand) Validate() error {
	return validate.Struct(c)
}

// RemoveStudentResult contains the result of the removal.
type RemoveStudentResult struct {
	CourseName string

	// GradesPurged is the number of grade entries removed along with the
	// student; zero under the default retain policy.
	GradesPurged int
}

// RemoveStudentHandler handles RemoveStudentCommand.
type RemoveStudentHandler struct {
	registry  *course.Registry
	policy    config.PolicyConfig
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewRemoveStudentHandler creates a new RemoveStudentHandler.
func NewRemoveStudentHandler(registry *course.Registry, policy config.PolicyConfig, publisher shared.EventPublisher, log *logger.Logger) *RemoveStudentHandler {
	return &RemoveStudentHandler{registry: registry, policy: policy, publisher: publisher, log: log}
}

// Handle executes the remove student command.
func (h *RemoveStudentHandler) Handle(ctx context.Context, cmd RemoveStudentCommand) (*RemoveStudentResult, error) {
	if cmd.Actor.Role != identity.RoleAdministrator {
		return nil, shared.ErrNotAuthorized
	}
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("admin", "RemoveStudent", shared.ErrValidation, "invalid command", err)
	}

	c, err := h.registry.Get(cmd.CourseIndex)
	if err != nil {
		return nil, err
	}
	if err := c.RemoveStudent(cmd.StudentEmail); err != nil {
		return nil, err
	}

	purged := 0
	if h.policy.PurgeGradesOnRemoval {
		n, err := c.PurgeGrades(cmd.StudentEmail)
		if err != nil {
			return nil, err
		}
		purged = n
	}

	h.log.Info("student removed",
		logger.Op("RemoveStudent"),
		logger.CourseName(c.Name()),
		logger.Email(cmd.StudentEmail),
		logger.Int("grades_purged", purged))

	h.publisher.Publish(shared.StudentRemovedEvent{
		BaseEvent:    shared.NewBaseEvent(shared.EventStudentRemoved, c.ID()),
		CourseName:   c.Name(),
		StudentEmail: cmd.StudentEmail,
		GradesPurged: purged > 0,
	})

	return &RemoveStudentResult{CourseName: c.Name(), GradesPurged: purged}, nil
}

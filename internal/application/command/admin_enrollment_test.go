package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/alem-lms/config"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

func TestEnrollStudentHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and enrolls", func(t *testing.T) {
		registry := seedRegistry(t, "Mathematics")
		directory := identity.NewDirectory()
		pub := &recordingPublisher{}
		h := NewEnrollStudentHandler(registry, directory, config.DefaultPolicy(), pub, testLogger())

		res, err := h.Handle(ctx, EnrollStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
			Password:     "changeme",
		})
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", res.CourseName)
		assert.True(t, res.AccountCreated)

		// The account carries the Student role and a username derived
		// from the email's local part.
		id, err := directory.FindByEmail("s1@example.com")
		require.NoError(t, err)
		assert.Equal(t, identity.RoleStudent, id.Role)
		assert.Equal(t, "s1", id.Username)

		c, err := registry.Get(0)
		require.NoError(t, err)
		enrolled, err := c.IsEnrolled("s1@example.com")
		require.NoError(t, err)
		assert.True(t, enrolled)

		assert.Equal(t, []shared.EventType{
			shared.EventAccountCreated,
			shared.EventStudentEnrolled,
		}, pub.types())
	})

	t.Run("duplicate account policy on", func(t *testing.T) {
		registry := seedRegistry(t, "Mathematics")
		directory := seedDirectory(t, identity.NewIdentityParams{
			Username: "s1",
			Email:    "s1@example.com",
			Password: "studentpass",
			Role:     identity.RoleStudent,
		})
		h := NewEnrollStudentHandler(registry, directory, config.DefaultPolicy(), &recordingPublisher{}, testLogger())

		_, err := h.Handle(ctx, EnrollStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
			Password:     "changeme",
		})
		assert.ErrorIs(t, err, shared.ErrConflict)

		c, getErr := registry.Get(0)
		require.NoError(t, getErr)
		enrolled, isErr := c.IsEnrolled("s1@example.com")
		require.NoError(t, isErr)
		assert.False(t, enrolled)
	})

	t.Run("duplicate account policy off enrolls existing account", func(t *testing.T) {
		registry := seedRegistry(t, "Mathematics")
		directory := seedDirectory(t, identity.NewIdentityParams{
			Username: "s1",
			Email:    "s1@example.com",
			Password: "studentpass",
			Role:     identity.RoleStudent,
		})
		policy := config.DefaultPolicy()
		policy.CheckDuplicateAccount = false
		h := NewEnrollStudentHandler(registry, directory, policy, &recordingPublisher{}, testLogger())

		res, err := h.Handle(ctx, EnrollStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
			Password:     "ignored",
		})
		require.NoError(t, err)
		assert.False(t, res.AccountCreated)
		assert.Equal(t, 1, directory.Size())
	})

	t.Run("rollback on enroll failure", func(t *testing.T) {
		registry := seedRegistry(t, "Mathematics")
		c, err := registry.Get(0)
		require.NoError(t, err)
		// Roster already has the email even though no account exists, so
		// the account-creation phase succeeds and the roster insertion
		// fails.
		require.NoError(t, c.Enroll("s1@example.com"))

		directory := identity.NewDirectory()
		pub := &recordingPublisher{}
		h := NewEnrollStudentHandler(registry, directory, config.DefaultPolicy(), pub, testLogger())

		_, err = h.Handle(ctx, EnrollStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
			Password:     "changeme",
		})
		assert.ErrorIs(t, err, shared.ErrConflict)
		assert.Zero(t, directory.Size())

		assert.Equal(t, []shared.EventType{
			shared.EventAccountCreated,
			shared.EventAccountRolledBack,
		}, pub.types())
	})

	t.Run("rollback policy off keeps account", func(t *testing.T) {
		registry := seedRegistry(t, "Mathematics")
		c, err := registry.Get(0)
		require.NoError(t, err)
		require.NoError(t, c.Enroll("s1@example.com"))

		directory := identity.NewDirectory()
		policy := config.DefaultPolicy()
		policy.RollbackAccountOnEnrollFailure = false
		h := NewEnrollStudentHandler(registry, directory, policy, &recordingPublisher{}, testLogger())

		_, err = h.Handle(ctx, EnrollStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
			Password:     "changeme",
		})
		assert.ErrorIs(t, err, shared.ErrConflict)
		assert.Equal(t, 1, directory.Size())
	})

	t.Run("invalid course index", func(t *testing.T) {
		h := NewEnrollStudentHandler(seedRegistry(t), identity.NewDirectory(), config.DefaultPolicy(), &recordingPublisher{}, testLogger())

		_, err := h.Handle(ctx, EnrollStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
			Password:     "changeme",
		})
		assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
	})

	t.Run("rejects non-administrator", func(t *testing.T) {
		h := NewEnrollStudentHandler(seedRegistry(t, "Mathematics"), identity.NewDirectory(), config.DefaultPolicy(), &recordingPublisher{}, testLogger())

		_, err := h.Handle(ctx, EnrollStudentCommand{
			Actor:        teacherActor("teacher1@example.com"),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
			Password:     "changeme",
		})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestRemoveStudentHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("removes student and retains grades by default", func(t *testing.T) {
		registry := seedRegistry(t, "Mathematics")
		c, err := registry.Get(0)
		require.NoError(t, err)
		require.NoError(t, c.Enroll("s1@example.com"))
		require.NoError(t, c.AddGrade("s1@example.com", 90))

		pub := &recordingPublisher{}
		h := NewRemoveStudentHandler(registry, config.DefaultPolicy(), pub, testLogger())

		res, err := h.Handle(ctx, RemoveStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
		})
		require.NoError(t, err)
		assert.Zero(t, res.GradesPurged)
		enrolled, err := c.IsEnrolled("s1@example.com")
		require.NoError(t, err)
		assert.False(t, enrolled)
		grades, err := c.Grades()
		require.NoError(t, err)
		assert.Len(t, grades, 1)
		assert.Equal(t, []shared.EventType{shared.EventStudentRemoved}, pub.types())
	})

	t.Run("purge policy on deletes grades", func(t *testing.T) {
		registry := seedRegistry(t, "Mathematics")
		c, err := registry.Get(0)
		require.NoError(t, err)
		require.NoError(t, c.Enroll("s1@example.com"))
		require.NoError(t, c.AddGrade("s1@example.com", 90))
		require.NoError(t, c.AddGrade("s1@example.com", 70))

		policy := config.DefaultPolicy()
		policy.PurgeGradesOnRemoval = true
		h := NewRemoveStudentHandler(registry, policy, &recordingPublisher{}, testLogger())

		res, err := h.Handle(ctx, RemoveStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "s1@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, res.GradesPurged)
		grades, err := c.Grades()
		require.NoError(t, err)
		assert.Empty(t, grades)
	})

	t.Run("student not on roster", func(t *testing.T) {
		registry := seedRegistry(t, "Mathematics")
		h := NewRemoveStudentHandler(registry, config.DefaultPolicy(), &recordingPublisher{}, testLogger())

		_, err := h.Handle(ctx, RemoveStudentCommand{
			Actor:        adminActor(),
			CourseIndex:  0,
			StudentEmail: "ghost@example.com",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

package command

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alem-hub/alem-lms/internal/domain/course"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
	"github.com/alem-hub/alem-lms/pkg/logger"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []shared.Event
}

func (p *recordingPublisher) Publish(event shared.Event) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []shared.EventType {
	out := make([]shared.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

func testLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelError)
}

func adminActor() identity.Identity {
	return identity.Identity{
		ID:       "admin-id",
		Username: "admin1",
		Email:    "admin1@example.com",
		Role:     identity.RoleAdministrator,
	}
}

func teacherActor(email string) identity.Identity {
	return identity.Identity{
		ID:       "teacher-id",
		Username: identity.UsernameFromEmail(email),
		Email:    email,
		Role:     identity.RoleTeacher,
	}
}

func studentActor(email string) identity.Identity {
	return identity.Identity{
		ID:       "student-id",
		Username: identity.UsernameFromEmail(email),
		Email:    email,
		Role:     identity.RoleStudent,
	}
}

func seedRegistry(t *testing.T, names ...string) *course.Registry {
	t.Helper()
	r := course.NewRegistry()
	for i, name := range names {
		teacher := "teacher" + string(rune('1'+i)) + "@example.com"
		c, err := course.New(name, teacher)
		require.NoError(t, err)
		r.Add(c)
	}
	return r
}

func seedDirectory(t *testing.T, ids ...identity.NewIdentityParams) *identity.Directory {
	t.Helper()
	d := identity.NewDirectory()
	for _, params := range ids {
		id, err := identity.NewIdentity(params)
		require.NoError(t, err)
		require.NoError(t, d.Register(id))
	}
	return d
}

package query

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alem-hub/alem-lms/internal/domain/course"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
	"github.com/alem-hub/alem-lms/pkg/logger"
)

type recordingPublisher struct {
	events []shared.Event
}

func (p *recordingPublisher) Publish(event shared.Event) {
	p.events = append(p.events, event)
}

func testLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelError)
}

func mustCourse(t *testing.T, name, teacher string) *course.Course {
	t.Helper()
	c, err := course.New(name, teacher)
	require.NoError(t, err)
	return c
}

func actor(email string, role identity.Role) identity.Identity {
	return identity.Identity{
		ID:       "test-id",
		Username: identity.UsernameFromEmail(email),
		Email:    email,
		Role:     role,
	}
}

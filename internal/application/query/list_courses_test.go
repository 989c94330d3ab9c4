package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/alem-lms/internal/domain/course"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

func TestListCoursesHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("lists in insertion order with 1-based indices", func(t *testing.T) {
		registry := course.NewRegistry()
		registry.Add(mustCourse(t, "Mathematics", "teacher1@example.com"))
		registry.Add(mustCourse(t, "Physics", "teacher2@example.com"))

		h := NewListCoursesHandler(registry)
		got := h.Handle(ctx)
		assert.Equal(t, []CourseListingDTO{
			{DisplayIndex: 1, Name: "Mathematics", TeacherEmail: "teacher1@example.com"},
			{DisplayIndex: 2, Name: "Physics", TeacherEmail: "teacher2@example.com"},
		}, got)
	})

	t.Run("empty registry", func(t *testing.T) {
		h := NewListCoursesHandler(course.NewRegistry())
		assert.Empty(t, h.Handle(ctx))
	})
}

func TestCourseContentHandler(t *testing.T) {
	ctx := context.Background()
	registry := course.NewRegistry()
	c := mustCourse(t, "Mathematics", "teacher1@example.com")
	require.NoError(t, c.AddContent("Introduction to Algebra"))
	registry.Add(c)

	h := NewCourseContentHandler(registry)

	dto, err := h.Handle(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", dto.CourseName)
	assert.Equal(t, []string{"Introduction to Algebra"}, dto.Contents)

	_, err = h.Handle(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
}

func TestCourseRosterHandler(t *testing.T) {
	ctx := context.Background()
	registry := course.NewRegistry()
	c := mustCourse(t, "Mathematics", "teacher1@example.com")
	require.NoError(t, c.Enroll("s1@example.com"))
	require.NoError(t, c.Enroll("s2@example.com"))
	registry.Add(c)

	h := NewCourseRosterHandler(registry)

	dto, err := h.Handle(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1@example.com", "s2@example.com"}, dto.Students)

	_, err = h.Handle(ctx, -1)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
}

package query

import (
	"context"

	"github.com/alem-hub/alem-lms/internal/domain/course"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT VIEWS
// A student sees only courses in which they are enrolled. Filtering by
// roster membership happens here, before anything reaches the boundary;
// a student enrolled in no courses gets an empty result, never an error.
// ══════════════════════════════════════════════════════════════════════════════

// EnrolledCourseDTO is one course a student is enrolled in, with its
// content listing.
type EnrolledCourseDTO struct {
	// DisplayIndex is the course's current 1-based position in the
	// global registry, so the student can reference it in other menus.
	DisplayIndex int
	Name         string
	TeacherEmail string
	Contents     []string
}

// StudentGradesDTO holds a student's own grade entries for one course.
type StudentGradesDTO struct {
	CourseName string
	Grades     []GradeEntryDTO
}

// StudentViewsHandler produces the student-scoped course and grade views.
type StudentViewsHandler struct {
	registry *course.Registry
}

// NewStudentViewsHandler creates a new StudentViewsHandler.
func NewStudentViewsHandler(registry *course.Registry) *StudentViewsHandler {
	return &StudentViewsHandler{registry: registry}
}

// EnrolledCourses returns the courses whose roster contains the acting
// student's email, in registry order.
func (h *StudentViewsHandler) EnrolledCourses(ctx context.Context, actor identity.Identity) ([]EnrolledCourseDTO, error) {
	if actor.Role != identity.RoleStudent {
		return nil, shared.ErrNotAuthorized
	}
	var out []EnrolledCourseDTO
	for i := 0; i < h.registry.Size(); i++ {
		c, err := h.registry.Get(i)
		if err != nil {
			return nil, err
		}
		enrolled, err := c.IsEnrolled(actor.Email)
		if err != nil {
			return nil, err
		}
		if !enrolled {
			continue
		}
		contents, err := c.Contents()
		if err != nil {
			return nil, err
		}
		out = append(out, EnrolledCourseDTO{
			DisplayIndex: i + 1,
			Name:         c.Name(),
			TeacherEmail: c.TeacherEmail(),
			Contents:     contents,
		})
	}
	return out, nil
}

// Grades returns the acting student's own grade entries, grouped by
// course, restricted to courses they are enrolled in. Orphaned grades in
// courses the student was removed from are not shown here.
func (h *StudentViewsHandler) Grades(ctx context.Context, actor identity.Identity) ([]StudentGradesDTO, error) {
	if actor.Role != identity.RoleStudent {
		return nil, shared.ErrNotAuthorized
	}
	var out []StudentGradesDTO
	for i := 0; i < h.registry.Size(); i++ {
		c, err := h.registry.Get(i)
		if err != nil {
			return nil, err
		}
		enrolled, err := c.IsEnrolled(actor.Email)
		if err != nil {
			return nil, err
		}
		if !enrolled {
			continue
		}
		entries, err := c.GradesFor(actor.Email)
		if err != nil {
			return nil, err
		}
		dto := StudentGradesDTO{CourseName: c.Name(), Grades: make([]GradeEntryDTO, 0, len(entries))}
		for _, g := range entries {
			dto.Grades = append(dto.Grades, GradeEntryDTO{StudentEmail: g.StudentEmail, Grade: g.Grade})
		}
		out = append(out, dto)
	}
	return out, nil
}

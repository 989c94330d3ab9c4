package query

import (
	"context"

	"github.com/alem-hub/alem-lms/internal/domain/course"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE REPORTS
// The administrator report covers every course; the teacher report only
// covers courses assigned to the acting teacher's email.
// ══════════════════════════════════════════════════════════════════════════════

// GradeEntryDTO is one entry of a course's grade log.
type GradeEntryDTO struct {
	StudentEmail string
	Grade        int
}

// CourseReportDTO is the full report for one course: roster plus grade log.
type CourseReportDTO struct {
	Name         string
	TeacherEmail string
	Students     []string
	Grades       []GradeEntryDTO
}

func reportFor(c *course.Handle) (CourseReportDTO, error) {
	students, err := c.Students()
	if err != nil {
		return CourseReportDTO{}, err
	}
	grades, err := c.Grades()
	if err != nil {
		return CourseReportDTO{}, err
	}
	dto := CourseReportDTO{
		Name:         c.Name(),
		TeacherEmail: c.TeacherEmail(),
		Students:     students,
		Grades:       make([]GradeEntryDTO, 0, len(grades)),
	}
	for _, g := range grades {
		dto.Grades = append(dto.Grades, GradeEntryDTO{StudentEmail: g.StudentEmail, Grade: g.Grade})
	}
	return dto, nil
}

// ReportsHandler produces course reports for administrators and teachers.
type ReportsHandler struct {
	registry *course.Registry
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(registry *course.Registry) *ReportsHandler {
	return &ReportsHandler{registry: registry}
}

// AllCourses returns a report for every course. Administrator only.
func (h *ReportsHandler) AllCourses(ctx context.Context, actor identity.Identity) ([]CourseReportDTO, error) {
	if actor.Role != identity.RoleAdministrator {
		return nil, shared.ErrNotAuthorized
	}
	out := make([]CourseReportDTO, 0, h.registry.Size())
	for i := 0; i < h.registry.Size(); i++ {
		c, err := h.registry.Get(i)
		if err != nil {
			return nil, err
		}
		report, err := reportFor(c)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, nil
}

// OwnCourses returns reports for the courses assigned to the acting
// teacher. A teacher with no courses gets an empty result, not an error.
func (h *ReportsHandler) OwnCourses(ctx context.Context, actor identity.Identity) ([]CourseReportDTO, error) {
	if actor.Role != identity.RoleTeacher {
		return nil, shared.ErrNotAuthorized
	}
	var out []CourseReportDTO
	for i := 0; i < h.registry.Size(); i++ {
		c, err := h.registry.Get(i)
		if err != nil {
			return nil, err
		}
		if c.TeacherEmail() != actor.Email {
			continue
		}
		report, err := reportFor(c)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, nil
}

// Package query contains the read operations of the system (CQRS
// queries). Queries never modify state; they return structured results
// for the boundary layer to render.
package query

import (
	"context"

	"github.com/alem-hub/alem-lms/internal/domain/course"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST COURSES QUERY
// The global course list shown in every menu: 1-based display index,
// course name, and teacher email, in insertion order.
// ══════════════════════════════════════════════════════════════════════════════

// CourseListingDTO is one row of the course list.
type CourseListingDTO struct {
	// DisplayIndex is 1-based and valid only until the next structural
	// mutation of the registry.
	DisplayIndex int
	Name         string
	TeacherEmail string
}

// ListCoursesHandler produces the global course list.
type ListCoursesHandler struct {
	registry *course.Registry
}

// NewListCoursesHandler creates a new ListCoursesHandler.
func NewListCoursesHandler(registry *course.Registry) *ListCoursesHandler {
	return &ListCoursesHandler{registry: registry}
}

// Handle returns all course listings in insertion order.
func (h *ListCoursesHandler) Handle(ctx context.Context) []CourseListingDTO {
	out := make([]CourseListingDTO, 0, h.registry.Size())
	for l := range h.registry.List() {
		out = append(out, CourseListingDTO{
			DisplayIndex: l.DisplayIndex,
			Name:         l.Name,
			TeacherEmail: l.TeacherEmail,
		})
	}
	return out
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSE CONTENT QUERY
// ══════════════════════════════════════════════════════════════════════════════

// CourseContentDTO is a course's content listing.
type CourseContentDTO struct {
	CourseName string
	Contents   []string
}

// CourseContentHandler returns the content list of one course.
type CourseContentHandler struct {
	registry *course.Registry
}

// NewCourseContentHandler creates a new CourseContentHandler.
func NewCourseContentHandler(registry *course.Registry) *CourseContentHandler {
	return &CourseContentHandler{registry: registry}
}

// Handle returns the contents of the course at the given 0-based index.
func (h *CourseContentHandler) Handle(ctx context.Context, courseIndex int) (*CourseContentDTO, error) {
	c, err := h.registry.Get(courseIndex)
	if err != nil {
		return nil, err
	}
	contents, err := c.Contents()
	if err != nil {
		return nil, err
	}
	return &CourseContentDTO{CourseName: c.Name(), Contents: contents}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSE ROSTER QUERY
// ══════════════════════════════════════════════════════════════════════════════

// CourseRosterDTO is a course's roster in enrollment order.
type CourseRosterDTO struct {
	CourseName string
	Students   []string
}

// CourseRosterHandler returns the roster of one course.
type CourseRosterHandler struct {
	registry *course.Registry
}

// NewCourseRosterHandler creates a new CourseRosterHandler.
func NewCourseRosterHandler(registry *course.Registry) *CourseRosterHandler {
	return &CourseRosterHandler{registry: registry}
}

// Handle returns the roster of the course at the given 0-based index.
func (h *CourseRosterHandler) Handle(ctx context.Context, courseIndex int) (*CourseRosterDTO, error) {
	c, err := h.registry.Get(courseIndex)
	if err != nil {
		return nil, err
	}
	students, err := c.Students()
	if err != nil {
		return nil, err
	}
	return &CourseRosterDTO{CourseName: c.Name(), Students: students}, nil
}

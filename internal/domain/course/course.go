// Package course contains the course aggregate and the course registry.
// A course owns its content list, enrollment roster, and grade log, and
// enforces the per-course invariants on every mutation.
package course

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alem-hub/alem-lms/internal/domain/shared"
	"github.com/alem-hub/alem-lms/internal/validate"
)

// GradeEntry is a single entry in a course's grade log.
type GradeEntry struct {
	StudentEmail string
	Grade        int
}

// Course is the aggregate for a single course. The registry owns every
// course exclusively; read accessors return copies, and mutation happens
// only through the aggregate's methods on a registry-mediated handle.
type Course struct {
	// ID is a stable surrogate identifier. Positional indices exist only
	// at the boundary and shift on deletion; the ID never changes.
	ID string

	Name         string
	TeacherEmail string

	contents []string
	roster   []string
	grades   []GradeEntry
}

// New creates a course with validation of name and teacher email.
func New(name, teacherEmail string) (*Course, error) {
	if !validate.NonEmptyString(name) {
		return nil, shared.ErrInvalidCourseName
	}
	if !validate.Email(teacherEmail) {
		return nil, shared.ErrInvalidTeacherEmail
	}
	return &Course{
		ID:           uuid.NewString(),
		Name:         name,
		TeacherEmail: teacherEmail,
	}, nil
}

// AddContent appends a content item. Order is preserved.
func (c *Course) AddContent(text string) error {
	if !validate.NonEmptyString(text) {
		return shared.ErrInvalidContent
	}
	c.contents = append(c.contents, text)
	return nil
}

// RemoveContent removes the content item at the given 0-based index.
// Subsequent items shift down; there are no tombstones.
func (c *Course) RemoveContent(index int) error {
	if !validate.Index(index, len(c.contents)) {
		return shared.ErrContentIndex
	}
	c.contents = append(c.contents[:index], c.contents[index+1:]...)
	return nil
}

// Enroll adds a student email to the roster. Enrollment is
// idempotent-rejecting: enrolling an already-present email fails with a
// conflict. Roster order is enrollment order.
func (c *Course) Enroll(studentEmail string) error {
	if !validate.Email(studentEmail) {
		return shared.ErrInvalidStudentEmail
	}
	if c.IsEnrolled(studentEmail) {
		return shared.ErrAlreadyEnrolled
	}
	c.roster = append(c.roster, studentEmail)
	return nil
}

// RemoveStudent removes a student email from the roster. The grade log
// is untouched: orphaned grade entries are retained unless the caller
// explicitly purges them (see PurgeGrades).
func (c *Course) RemoveStudent(studentEmail string) error {
	for i, email := range c.roster {
		if email == studentEmail {
			c.roster = append(c.roster[:i], c.roster[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotEnrolled
}

// AddGrade appends a grade entry for the student. The grade log is an
// append log, not a keyed mapping: a student may accumulate multiple
// entries over time and all are retained.
//
// AddGrade does not check roster membership. That check belongs to the
// Teacher operation at the application layer; it is a collaboration
// contract, not an entity invariant.
func (c *Course) AddGrade(studentEmail string, grade int) error {
	if !validate.Email(studentEmail) {
		return shared.ErrInvalidStudentEmail
	}
	if !validate.Grade(grade) {
		return shared.ErrInvalidGrade
	}
	c.grades = append(c.grades, GradeEntry{StudentEmail: studentEmail, Grade: grade})
	return nil
}

// PurgeGrades drops every grade entry for the given student and returns
// the number of entries removed. Only the grade-purge removal policy
// calls this; the default behavior retains orphaned grades.
func (c *Course) PurgeGrades(studentEmail string) int {
	kept := c.grades[:0]
	purged := 0
	for _, g := range c.grades {
		if g.StudentEmail == studentEmail {
			purged++
			continue
		}
		kept = append(kept, g)
	}
	c.grades = kept
	return purged
}

// IsEnrolled reports whether the student email is on the roster.
func (c *Course) IsEnrolled(studentEmail string) bool {
	for _, email := range c.roster {
		if email == studentEmail {
			return true
		}
	}
	return false
}

// Contents returns a copy of the content list in insertion order.
func (c *Course) Contents() []string {
	out := make([]string, len(c.contents))
	copy(out, c.contents)
	return out
}

// Students returns a copy of the roster in enrollment order.
func (c *Course) Students() []string {
	out := make([]string, len(c.roster))
	copy(out, c.roster)
	return out
}

// Grades returns a copy of the grade log in insertion order.
func (c *Course) Grades() []GradeEntry {
	out := make([]GradeEntry, len(c.grades))
	copy(out, c.grades)
	return out
}

// GradesFor returns a copy of the grade entries for one student, in
// insertion order.
func (c *Course) GradesFor(studentEmail string) []GradeEntry {
	var out []GradeEntry
	for _, g := range c.grades {
		if g.StudentEmail == studentEmail {
			out = append(out, g)
		}
	}
	return out
}

// String returns a representation for logging.
func (c *Course) String() string {
	return fmt.Sprintf("Course{Name: %s, Teacher: %s, Students: %d, Grades: %d}",
		c.Name, c.TeacherEmail, len(c.roster), len(c.grades))
}

// Clone creates a deep copy of the course.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	clone := &Course{
		ID:           c.ID,
		Name:         c.Name,
		TeacherEmail: c.TeacherEmail,
		contents:     make([]string, len(c.contents)),
		roster:       make([]string, len(c.roster)),
		grades:       make([]GradeEntry, len(c.grades)),
	}
	copy(clone.contents, c.contents)
	copy(clone.roster, c.roster)
	copy(clone.grades, c.grades)
	return clone
}

package course

import (
	"iter"

	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

// Registry is the ordered, exclusively-owned collection of courses. It is
// created once at process start with seed data and lives until process
// exit.
//
// Positions are 0-based internally and shift down on deletion; there is
// no index stability guarantee. Access to a stored course goes through a
// Handle, which is invalidated by the next structural mutation of the
// registry and rejects every later access, so a retained handle can never
// alias shifted data.
type Registry struct {
	courses    []*Course
	generation uint64
}

// Listing is one row of the course list as presented to actors.
type Listing struct {
	// DisplayIndex is 1-based, for presentation only.
	DisplayIndex int
	Name         string
	TeacherEmail string
}

// NewRegistry creates an empty course registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a course. The registry takes exclusive ownership of the
// value; the caller's pointer must not be used afterwards. No
// duplicate-name check is performed.
func (r *Registry) Add(c *Course) {
	r.courses = append(r.courses, c.Clone())
	r.generation++
}

// Get returns a handle to the course at the given 0-based index. The
// handle is the only sanctioned channel for reading or mutating a stored
// course, and is valid only until the next structural mutation of the
// registry.
func (r *Registry) Get(index int) (*Handle, error) {
	if index < 0 || index >= len(r.courses) {
		return nil, shared.ErrCourseNotFound
	}
	return &Handle{
		registry:   r,
		course:     r.courses[index],
		generation: r.generation,
	}, nil
}

// Remove deletes the course at the given 0-based index and returns it.
// All higher indices shift down by one, and every handle obtained before
// the removal becomes stale.
func (r *Registry) Remove(index int) (*Course, error) {
	if index < 0 || index >= len(r.courses) {
		return nil, shared.ErrCourseNotFound
	}
	removed := r.courses[index]
	r.courses = append(r.courses[:index], r.courses[index+1:]...)
	r.generation++
	return removed, nil
}

// Size returns the number of courses.
func (r *Registry) Size() int {
	return len(r.courses)
}

// Generation returns a counter bumped on every structural mutation.
// Handles captured before a differing generation are stale.
func (r *Registry) Generation() uint64 {
	return r.generation
}

// List produces a lazy, restartable sequence of course listings in
// insertion order, with 1-based display indices.
func (r *Registry) List() iter.Seq[Listing] {
	return func(yield func(Listing) bool) {
		for i, c := range r.courses {
			l := Listing{
				DisplayIndex: i + 1,
				Name:         c.Name,
				TeacherEmail: c.TeacherEmail,
			}
			if !yield(l) {
				return
			}
		}
	}
}

// TeacherOwns reports whether any course is assigned to the given
// teacher email. Used by the unique-teacher creation policy.
func (r *Registry) TeacherOwns(teacherEmail string) bool {
	for _, c := range r.courses {
		if c.TeacherEmail == teacherEmail {
			return true
		}
	}
	return false
}

// Handle is a registry-mediated reference to a stored course. It carries
// the registry generation at the time it was obtained; every access
// revalidates against the current generation and fails with a stale-handle
// error once the registry has been structurally mutated.
type Handle struct {
	registry   *Registry
	course     *Course
	generation uint64
}

func (h *Handle) guard() error {
	if h.generation != h.registry.generation {
		return shared.ErrStaleCourseHandle
	}
	return nil
}

// ID returns the course's stable surrogate identifier. The ID never
// changes, so it is readable even through a stale handle.
func (h *Handle) ID() string { return h.course.ID }

// Name returns the course name.
func (h *Handle) Name() string { return h.course.Name }

// TeacherEmail returns the assigned teacher's email.
func (h *Handle) TeacherEmail() string { return h.course.TeacherEmail }

// AddContent appends a content item to the course.
func (h *Handle) AddContent(text string) error {
	if err := h.guard(); err != nil {
		return err
	}
	return h.course.AddContent(text)
}

// RemoveContent removes the content item at the given 0-based index.
func (h *Handle) RemoveContent(index int) error {
	if err := h.guard(); err != nil {
		return err
	}
	return h.course.RemoveContent(index)
}

// Enroll adds a student email to the course roster.
func (h *Handle) Enroll(studentEmail string) error {
	if err := h.guard(); err != nil {
		return err
	}
	return h.course.Enroll(studentEmail)
}

// RemoveStudent removes a student email from the course roster.
func (h *Handle) RemoveStudent(studentEmail string) error {
	if err := h.guard(); err != nil {
		return err
	}
	return h.course.RemoveStudent(studentEmail)
}

// AddGrade appends a grade entry for the student.
func (h *Handle) AddGrade(studentEmail string, grade int) error {
	if err := h.guard(); err != nil {
		return err
	}
	return h.course.AddGrade(studentEmail, grade)
}

// PurgeGrades drops every grade entry for the given student and returns
// the number of entries removed.
func (h *Handle) PurgeGrades(studentEmail string) (int, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	return h.course.PurgeGrades(studentEmail), nil
}

// IsEnrolled reports whether the student email is on the roster.
func (h *Handle) IsEnrolled(studentEmail string) (bool, error) {
	if err := h.guard(); err != nil {
		return false, err
	}
	return h.course.IsEnrolled(studentEmail), nil
}

// Contents returns a copy of the course's content list.
func (h *Handle) Contents() ([]string, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	return h.course.Contents(), nil
}

// Students returns a copy of the course roster.
func (h *Handle) Students() ([]string, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	return h.course.Students(), nil
}

// Grades returns a copy of the course's grade log.
func (h *Handle) Grades() ([]GradeEntry, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	return h.course.Grades(), nil
}

// GradesFor returns a copy of the grade entries for one student.
func (h *Handle) GradesFor(studentEmail string) ([]GradeEntry, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	return h.course.GradesFor(studentEmail), nil
}

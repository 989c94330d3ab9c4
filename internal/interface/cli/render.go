package cli

import (
	"fmt"
	"io"

	"github.com/alem-hub/alem-lms/internal/application/query"
	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

func renderCourseList(out io.Writer, listings []query.CourseListingDTO) {
	if len(listings) == 0 {
		fmt.Fprintln(out, "There are no courses available.")
		return
	}
	for _, l := range listings {
		fmt.Fprintf(out, "%d: %s (Teacher: %s)\n", l.DisplayIndex, l.Name, l.TeacherEmail)
	}
}

func renderContents(out io.Writer, contents []string) {
	if len(contents) == 0 {
		fmt.Fprintln(out, "No content yet.")
		return
	}
	for i, c := range contents {
		fmt.Fprintf(out, "%d. %s\n", i+1, c)
	}
}

func renderReport(out io.Writer, r query.CourseReportDTO) {
	fmt.Fprintf(out, "Course: %s (Teacher: %s)\n", r.Name, r.TeacherEmail)
	fmt.Fprintln(out, "Enrolled Students:")
	if len(r.Students) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, s := range r.Students {
		fmt.Fprintf(out, "  %s\n", s)
	}
	fmt.Fprintln(out, "Grades:")
	if len(r.Grades) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, g := range r.Grades {
		fmt.Fprintf(out, "  %s: %d%%\n", g.StudentEmail, g.Grade)
	}
	fmt.Fprintln(out, "----------------------")
}

// renderError maps the domain error taxonomy to the short messages the
// menus print. Business-rule violations are reported, never fatal.
func renderError(out io.Writer, err error) {
	switch {
	case err == nil:
		return
	case shared.IsNotFound(err):
		fmt.Fprintf(out, "Not found: %v\n", err)
	case shared.IsConflict(err):
		fmt.Fprintf(out, "Conflict: %v\n", err)
	case shared.IsValidation(err):
		fmt.Fprintf(out, "Invalid input: %v\n", err)
	case shared.IsAuth(err):
		fmt.Fprintln(out, "Invalid login credentials. Please try again.")
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

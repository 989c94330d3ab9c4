package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alem-hub/alem-lms/internal/application/command"
	"github.com/alem-hub/alem-lms/internal/application/query"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/validate"
)

// Handlers collects the application-layer entry points the menus drive.
type Handlers struct {
	AddCourse     *command.AddCourseHandler
	DeleteCourse  *command.DeleteCourseHandler
	AddContent    *command.AddContentHandler
	RemoveContent *command.RemoveContentHandler
	EnrollStudent *command.EnrollStudentHandler
	RemoveStudent *command.RemoveStudentHandler
	AddGrade      *command.AddGradeHandler
	SelfEnroll    *command.SelfEnrollHandler

	ListCourses   *query.ListCoursesHandler
	CourseContent *query.CourseContentHandler
	CourseRoster  *query.CourseRosterHandler
	Reports       *query.ReportsHandler
	StudentViews  *query.StudentViewsHandler
	Authenticate  *query.AuthenticateHandler
}

// Menu drives the login loop and the role-scoped menus.
type Menu struct {
	prompt  *Prompter
	out     io.Writer
	h       Handlers
	session *Session
}

// NewMenu creates a Menu reading from in and writing to out.
func NewMenu(in io.Reader, out io.Writer, h Handlers) *Menu {
	return &Menu{
		prompt:  NewPrompter(in, out),
		out:     out,
		h:       h,
		session: NewSession(),
	}
}

// Run executes the outer login loop until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nLearning Management System Login")
		fmt.Fprintln(m.out, "================================")

		email, err := m.prompt.Line("Enter your email (or type '0' to exit): ")
		if err != nil {
			return m.finish(err)
		}
		if email == "0" {
			fmt.Fprintln(m.out, "Exiting program...")
			return nil
		}
		password, err := m.prompt.Line("Enter your password: ")
		if err != nil {
			return m.finish(err)
		}

		actor, authErr := m.h.Authenticate.Handle(ctx, email, password)
		if authErr != nil {
			renderError(m.out, authErr)
			continue
		}

		m.session.Login(actor)
		if err := m.runRoleMenu(ctx); err != nil {
			return m.finish(err)
		}
		m.session.Logout()

		again, err := m.prompt.YesNo("Do you want to log in as a different role? (y/n): ")
		if err != nil {
			return m.finish(err)
		}
		if !again {
			fmt.Fprintln(m.out, "Logging out...")
			return nil
		}
	}
}

// finish treats end of input as a normal exit.
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) runRoleMenu(ctx context.Context) error {
	switch m.session.Actor().Role {
	case identity.RoleAdministrator:
		return m.adminMenu(ctx)
	case identity.RoleTeacher:
		return m.teacherMenu(ctx)
	case identity.RoleStudent:
		return m.studentMenu(ctx)
	default:
		return fmt.Errorf("cli: unknown role %q", m.session.Actor().Role)
	}
}

// backoff converts an abandoned prompt into a "back to menu" outcome.
func backoff(err error) error {
	if errors.Is(err, ErrPromptAbandoned) {
		return nil
	}
	return err
}

// selectCourse lists courses and prompts for a 1-based choice, returning
// the 0-based index. ok is false when there are no courses or the prompt
// was abandoned.
func (m *Menu) selectCourse(ctx context.Context, label string) (index int, ok bool, err error) {
	listings := m.h.ListCourses.Handle(ctx)
	renderCourseList(m.out, listings)
	if len(listings) == 0 {
		return 0, false, nil
	}
	n, err := m.prompt.Int(fmt.Sprintf("%s (1-%d): ", label, len(listings)), 1, len(listings))
	if err != nil {
		return 0, false, backoff(err)
	}
	return n - 1, true, nil
}

// ─────────────────────────────────────────────────────────────────────────
// Administrator menus
// ─────────────────────────────────────────────────────────────────────────

func (m *Menu) adminMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nAdmin Menu:")
		fmt.Fprintln(m.out, "1. Manage Courses")
		fmt.Fprintln(m.out, "2. View Reports")
		fmt.Fprintln(m.out, "3. Enroll Student")
		fmt.Fprintln(m.out, "4. Remove Student")
		fmt.Fprintln(m.out, "5. Log Out")

		choice, err := m.prompt.Int("Enter choice (1-5): ", 1, 5)
		if err != nil {
			if errors.Is(err, ErrPromptAbandoned) {
				continue
			}
			return err
		}

		switch choice {
		case 1:
			if err := m.adminManageCourses(ctx); err != nil {
				return err
			}
		case 2:
			reports, err := m.h.Reports.AllCourses(ctx, *m.session.Actor())
			if err != nil {
				renderError(m.out, err)
				continue
			}
			if len(reports) == 0 {
				fmt.Fprintln(m.out, "No courses available to generate reports.")
				continue
			}
			fmt.Fprintln(m.out, "Courses Report:")
			for _, r := range reports {
				renderReport(m.out, r)
			}
		case 3:
			if err := m.adminEnrollStudent(ctx); err != nil {
				return err
			}
		case 4:
			if err := m.adminRemoveStudent(ctx); err != nil {
				return err
			}
		case 5:
			fmt.Fprintln(m.out, "Logging out...")
			return nil
		}
	}
}

func (m *Menu) adminManageCourses(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nManage Courses:")
		fmt.Fprintln(m.out, "1. Add Course")
		fmt.Fprintln(m.out, "2. Delete Course")
		fmt.Fprintln(m.out, "3. Edit Course")
		fmt.Fprintln(m.out, "4. Display Courses")
		fmt.Fprintln(m.out, "5. Back")

		choice, err := m.prompt.Int("Enter choice (1-5): ", 1, 5)
		if err != nil {
			if errors.Is(err, ErrPromptAbandoned) {
				continue
			}
			return err
		}

		switch choice {
		case 1:
			if err := m.adminAddCourse(ctx); err != nil {
				return err
			}
		case 2:
			index, ok, err := m.selectCourse(ctx, "Enter course index to delete")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			delErr := m.h.DeleteCourse.Handle(ctx, command.DeleteCourseCommand{
				Actor:       *m.session.Actor(),
				CourseIndex: index,
			})
			if delErr != nil {
				renderError(m.out, delErr)
				continue
			}
			fmt.Fprintln(m.out, "Course deleted successfully.")
		case 3:
			if err := m.adminEditCourse(ctx); err != nil {
				return err
			}
		case 4:
			renderCourseList(m.out, m.h.ListCourses.Handle(ctx))
		case 5:
			fmt.Fprintln(m.out, "Returning...")
			return nil
		}
	}
}

func (m *Menu) adminAddCourse(ctx context.Context) error {
	name, err := m.prompt.Line("Enter course name: ")
	if err != nil {
		return err
	}
	teacherEmail, err := m.prompt.Email("Enter teacher's email: ")
	if err != nil {
		return backoff(err)
	}

	_, addErr := m.h.AddCourse.Handle(ctx, command.AddCourseCommand{
		Actor:        *m.session.Actor(),
		Name:         name,
		TeacherEmail: teacherEmail,
	})
	if addErr != nil {
		renderError(m.out, addErr)
		return nil
	}
	fmt.Fprintln(m.out, "Course added successfully.")
	return nil
}

func (m *Menu) adminEditCourse(ctx context.Context) error {
	index, ok, err := m.selectCourse(ctx, "Enter course index to edit")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	content, err := m.h.CourseContent.Handle(ctx, index)
	if err != nil {
		renderError(m.out, err)
		return nil
	}
	fmt.Fprintf(m.out, "Editing course: %s\n", content.CourseName)

	edit, err := m.prompt.YesNo("Would you like to edit the course content? (y/n): ")
	if err != nil {
		return err
	}
	if !edit {
		return nil
	}

	choice, err := m.prompt.Int("1. Add content\n2. Remove content\nEnter choice (1-2): ", 1, 2)
	if err != nil {
		return backoff(err)
	}

	switch choice {
	case 1:
		text, err := m.prompt.Line("Enter content: ")
		if err != nil {
			return err
		}
		addErr := m.h.AddContent.Handle(ctx, command.AddContentCommand{
			Actor:       *m.session.Actor(),
			CourseIndex: index,
			Content:     text,
		})
		if addErr != nil {
			renderError(m.out, addErr)
			return nil
		}
		fmt.Fprintln(m.out, "Content added successfully.")
	case 2:
		if len(content.Contents) == 0 {
			fmt.Fprintln(m.out, "There is no content to remove.")
			return nil
		}
		fmt.Fprintln(m.out, "\nCurrent content:")
		renderContents(m.out, content.Contents)
		n, err := m.prompt.Int(
			fmt.Sprintf("Enter content index to remove (1-%d): ", len(content.Contents)),
			1, len(content.Contents))
		if err != nil {
			return backoff(err)
		}
		rmErr := m.h.RemoveContent.Handle(ctx, command.RemoveContentCommand{
			Actor:        *m.session.Actor(),
			CourseIndex:  index,
			ContentIndex: n - 1,
		})
		if rmErr != nil {
			renderError(m.out, rmErr)
			return nil
		}
		fmt.Fprintln(m.out, "Content removed successfully.")
	}
	return nil
}

func (m *Menu) adminEnrollStudent(ctx context.Context) error {
	index, ok, err := m.selectCourse(ctx, "Enter course index to enroll student")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	studentEmail, err := m.prompt.Email("Enter student's email: ")
	if err != nil {
		return backoff(err)
	}
	password, err := m.prompt.Line("Enter password for a new account (ignored if the account exists): ")
	if err != nil {
		return err
	}
	if password == "" {
		password = "changeme"
	}

	result, enrollErr := m.h.EnrollStudent.Handle(ctx, command.EnrollStudentCommand{
		Actor:        *m.session.Actor(),
		CourseIndex:  index,
		StudentEmail: studentEmail,
		Password:     password,
	})
	if enrollErr != nil {
		renderError(m.out, enrollErr)
		return nil
	}
	fmt.Fprintln(m.out, "Student enrolled successfully.")
	if result.AccountCreated {
		fmt.Fprintf(m.out, "A new student account was created for %s.\n", studentEmail)
	}
	return nil
}

func (m *Menu) adminRemoveStudent(ctx context.Context) error {
	index, ok, err := m.selectCourse(ctx, "Enter course index to remove student")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	roster, err := m.h.CourseRoster.Handle(ctx, index)
	if err != nil {
		renderError(m.out, err)
		return nil
	}
	if len(roster.Students) == 0 {
		fmt.Fprintln(m.out, "There is no student here.")
		return nil
	}

	studentEmail, err := m.prompt.Email("Enter student's email to remove: ")
	if err != nil {
		return backoff(err)
	}

	_, rmErr := m.h.RemoveStudent.Handle(ctx, command.RemoveStudentCommand{
		Actor:        *m.session.Actor(),
		CourseIndex:  index,
		StudentEmail: studentEmail,
	})
	if rmErr != nil {
		renderError(m.out, rmErr)
		return nil
	}
	fmt.Fprintln(m.out, "Student removed successfully.")
	return nil
}

// ─────────────────────────────────────────────────────────────────────────
// Teacher menus
// ─────────────────────────────────────────────────────────────────────────

func (m *Menu) teacherMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nTeacher Menu:")
		fmt.Fprintln(m.out, "1. Manage Courses")
		fmt.Fprintln(m.out, "2. View Reports")
		fmt.Fprintln(m.out, "3. Add Grade")
		fmt.Fprintln(m.out, "4. Log Out")

		choice, err := m.prompt.Int("Enter choice (1-4): ", 1, 4)
		if err != nil {
			if errors.Is(err, ErrPromptAbandoned) {
				continue
			}
			return err
		}

		switch choice {
		case 1:
			if err := m.teacherManageCourses(ctx); err != nil {
				return err
			}
		case 2:
			reports, err := m.h.Reports.OwnCourses(ctx, *m.session.Actor())
			if err != nil {
				renderError(m.out, err)
				continue
			}
			fmt.Fprintf(m.out, "Courses Report for %s:\n", m.session.Actor().Email)
			if len(reports) == 0 {
				fmt.Fprintln(m.out, "No courses assigned to you.")
				continue
			}
			for _, r := range reports {
				renderReport(m.out, r)
			}
		case 3:
			if err := m.teacherAddGrade(ctx); err != nil {
				return err
			}
		case 4:
			fmt.Fprintln(m.out, "Logging out...")
			return nil
		}
	}
}

func (m *Menu) teacherManageCourses(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nManage Courses:")
		fmt.Fprintln(m.out, "1. View Course")
		fmt.Fprintln(m.out, "2. Add Content")
		fmt.Fprintln(m.out, "3. Add Grade")
		fmt.Fprintln(m.out, "4. Display Students")
		fmt.Fprintln(m.out, "5. Back")

		choice, err := m.prompt.Int("Enter choice (1-5): ", 1, 5)
		if err != nil {
			if errors.Is(err, ErrPromptAbandoned) {
				continue
			}
			return err
		}

		switch choice {
		case 1:
			index, ok, err := m.selectCourse(ctx, "Enter course index to view")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			content, viewErr := m.h.CourseContent.Handle(ctx, index)
			if viewErr != nil {
				renderError(m.out, viewErr)
				continue
			}
			fmt.Fprintf(m.out, "Viewing course: %s\n", content.CourseName)
			renderContents(m.out, content.Contents)
		case 2:
			index, ok, err := m.selectCourse(ctx, "Enter course index")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			text, err := m.prompt.Line("Enter the content to add: ")
			if err != nil {
				return err
			}
			addErr := m.h.AddContent.Handle(ctx, command.AddContentCommand{
				Actor:       *m.session.Actor(),
				CourseIndex: index,
				Content:     text,
			})
			if addErr != nil {
				renderError(m.out, addErr)
				continue
			}
			fmt.Fprintln(m.out, "Content added to the course.")
		case 3:
			if err := m.teacherAddGrade(ctx); err != nil {
				return err
			}
		case 4:
			index, ok, err := m.selectCourse(ctx, "Enter course index")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			roster, rosterErr := m.h.CourseRoster.Handle(ctx, index)
			if rosterErr != nil {
				renderError(m.out, rosterErr)
				continue
			}
			if len(roster.Students) == 0 {
				fmt.Fprintln(m.out, "No students enrolled.")
				continue
			}
			for _, s := range roster.Students {
				fmt.Fprintln(m.out, s)
			}
		case 5:
			fmt.Fprintln(m.out, "Returning...")
			return nil
		}
	}
}

func (m *Menu) teacherAddGrade(ctx context.Context) error {
	index, ok, err := m.selectCourse(ctx, "Enter course index")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	studentEmail, err := m.prompt.Email("Enter student's email: ")
	if err != nil {
		return backoff(err)
	}
	grade, err := m.prompt.Int(
		fmt.Sprintf("Enter grade (%d-%d): ", validate.MinGrade, validate.MaxGrade),
		validate.MinGrade, validate.MaxGrade)
	if err != nil {
		return backoff(err)
	}

	gradeErr := m.h.AddGrade.Handle(ctx, command.AddGradeCommand{
		Actor:        *m.session.Actor(),
		CourseIndex:  index,
		StudentEmail: studentEmail,
		Grade:        grade,
	})
	if gradeErr != nil {
		renderError(m.out, gradeErr)
		return nil
	}
	fmt.Fprintf(m.out, "Grade added successfully for student: %s\n", studentEmail)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────
// Student menus
// ─────────────────────────────────────────────────────────────────────────

func (m *Menu) studentMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nStudent Menu:")
		fmt.Fprintln(m.out, "1. View Enrolled Courses")
		fmt.Fprintln(m.out, "2. View Grades")
		fmt.Fprintln(m.out, "3. Enroll in a Course")
		fmt.Fprintln(m.out, "4. Log Out")

		choice, err := m.prompt.Int("Enter choice (1-4): ", 1, 4)
		if err != nil {
			if errors.Is(err, ErrPromptAbandoned) {
				continue
			}
			return err
		}

		switch choice {
		case 1:
			courses, viewErr := m.h.StudentViews.EnrolledCourses(ctx, *m.session.Actor())
			if viewErr != nil {
				renderError(m.out, viewErr)
				continue
			}
			if len(courses) == 0 {
				fmt.Fprintln(m.out, "You are not enrolled in any courses.")
				continue
			}
			for _, c := range courses {
				fmt.Fprintf(m.out, "%d: %s (Teacher: %s)\n", c.DisplayIndex, c.Name, c.TeacherEmail)
				renderContents(m.out, c.Contents)
			}
		case 2:
			grades, viewErr := m.h.StudentViews.Grades(ctx, *m.session.Actor())
			if viewErr != nil {
				renderError(m.out, viewErr)
				continue
			}
			if len(grades) == 0 {
				fmt.Fprintln(m.out, "You have no grades yet.")
				continue
			}
			for _, g := range grades {
				fmt.Fprintf(m.out, "Course: %s\n", g.CourseName)
				if len(g.Grades) == 0 {
					fmt.Fprintln(m.out, "  (no grades yet)")
				}
				for _, e := range g.Grades {
					fmt.Fprintf(m.out, "  %s: %d%%\n", e.StudentEmail, e.Grade)
				}
			}
		case 3:
			index, ok, err := m.selectCourse(ctx, "Enter course index")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			enrollErr := m.h.SelfEnroll.Handle(ctx, command.SelfEnrollCommand{
				Actor:       *m.session.Actor(),
				CourseIndex: index,
			})
			if enrollErr != nil {
				renderError(m.out, enrollErr)
				continue
			}
			fmt.Fprintln(m.out, "Successfully enrolled in the course.")
		case 4:
			fmt.Fprintln(m.out, "Logging out...")
			return nil
		}
	}
}

// Package main is the entry point of the LMS: it loads configuration,
// builds the in-memory domain state with seed data, wires the
// application-layer handlers, and runs the text-menu loop.
//
// The architecture follows Clean Architecture / DDD layering:
//   - Domain: course registry, identities, invariants
//   - Application: role-scoped commands and queries
//   - Interface: the text-menu boundary
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alem-hub/alem-lms/config"
	"github.com/alem-hub/alem-lms/internal/application/command"
	"github.com/alem-hub/alem-lms/internal/application/query"
	"github.com/alem-hub/alem-lms/internal/domain/course"
	"github.com/alem-hub/alem-lms/internal/domain/identity"
	"github.com/alem-hub/alem-lms/internal/interface/cli"
	"github.com/alem-hub/alem-lms/internal/messaging"
	"github.com/alem-hub/alem-lms/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, logger.ParseLevel(cfg.App.LogLevel))
	log.Info("starting", logger.String("app", cfg.App.Name))

	dispatcher := messaging.NewDispatcher(log)
	dispatcher.SubscribeAll(messaging.NewAuditHandler(log))

	registry := course.NewRegistry()
	directory := identity.NewDirectory()

	if cfg.App.SeedData {
		// Malformed seed data is the one fatal error in the system.
		if err := seed(registry, directory); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}

	handlers := cli.Handlers{
		AddCourse:     command.NewAddCourseHandler(registry, cfg.Policy, dispatcher, log),
		DeleteCourse:  command.NewDeleteCourseHandler(registry, dispatcher, log),
		AddContent:    command.NewAddContentHandler(registry, dispatcher, log),
		RemoveContent: command.NewRemoveContentHandler(registry, dispatcher, log),
		EnrollStudent: command.NewEnrollStudentHandler(registry, directory, cfg.Policy, dispatcher, log),
		RemoveStudent: command.NewRemoveStudentHandler(registry, cfg.Policy, dispatcher, log),
		AddGrade:      command.NewAddGradeHandler(registry, dispatcher, log),
		SelfEnroll:    command.NewSelfEnrollHandler(registry, dispatcher, log),

		ListCourses:   query.NewListCoursesHandler(registry),
		CourseContent: query.NewCourseContentHandler(registry),
		CourseRoster:  query.NewCourseRosterHandler(registry),
		Reports:       query.NewReportsHandler(registry),
		StudentViews:  query.NewStudentViewsHandler(registry),
		Authenticate:  query.NewAuthenticateHandler(directory, dispatcher, log),
	}

	menu := cli.NewMenu(os.Stdin, os.Stdout, handlers)
	return menu.Run(context.Background())
}

// seed loads the built-in demo courses and accounts.
func seed(registry *course.Registry, directory *identity.Directory) error {
	mathematics, err := course.New("Mathematics", "teacher1@example.com")
	if err != nil {
		return err
	}
	for _, content := range []string{"Introduction to Algebra", "Advanced Calculus"} {
		if err := mathematics.AddContent(content); err != nil {
			return err
		}
	}

	physics, err := course.New("Physics", "teacher2@example.com")
	if err != nil {
		return err
	}
	for _, content := range []string{"Newton's Laws", "Thermodynamics"} {
		if err := physics.AddContent(content); err != nil {
			return err
		}
	}

	registry.Add(mathematics)
	registry.Add(physics)

	accounts := []identity.NewIdentityParams{
		{Username: "admin1", Email: "admin1@example.com", Password: "adminpass", Role: identity.RoleAdministrator},
		{Username: "teacher1", Email: "teacher1@example.com", Password: "teacherpass", Role: identity.RoleTeacher},
		{Username: "teacher2", Email: "teacher2@example.com", Password: "teacherpass", Role: identity.RoleTeacher},
		{Username: "student1", Email: "student1@example.com", Password: "studentpass", Role: identity.RoleStudent},
		{Username: "student2", Email: "student2@example.com", Password: "studentpass", Role: identity.RoleStudent},
	}
	for _, params := range accounts {
		id, err := identity.NewIdentity(params)
		if err != nil {
			return err
		}
		if err := directory.Register(id); err != nil {
			return err
		}
	}
	return nil
}

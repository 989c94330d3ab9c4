// Package shared contains common domain types, errors, and events that are
// used across all domain packages.
package shared

import (
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event records something significant that
// happened in the system; subscribers (audit logging, future
// notifications) react without coupling to the command handlers.
const (
	// Course lifecycle events
	EventCourseCreated EventType = "course.created"
	EventCourseEdited  EventType = "course.edited"
	EventCourseDeleted EventType = "course.deleted"

	// Roster events
	EventStudentEnrolled EventType = "roster.student_enrolled"
	EventStudentRemoved  EventType = "roster.student_removed"

	// Grade events
	EventGradeRecorded EventType = "grades.recorded"

	// Identity events
	EventAccountCreated    EventType = "identity.account_created"
	EventAccountRolledBack EventType = "identity.account_rolled_back"
	EventLoginSucceeded    EventType = "identity.login_succeeded"
	EventLoginFailed       EventType = "identity.login_failed"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for logging.
	Payload() map[string]any
}

// EventHandler processes a published event.
type EventHandler func(event Event)

// EventPublisher publishes domain events to interested subscribers.
type EventPublisher interface {
	Publish(event Event)
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType
	Timestamp   time.Time
	AggregateId string
}

// EventType implements Event.
func (e BaseEvent) EventType() EventType { return e.Type }

// OccurredAt implements Event.
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// AggregateID implements Event.
func (e BaseEvent) AggregateID() string { return e.AggregateId }

// NewBaseEvent creates a new base event stamped with the current time.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// CourseCreatedEvent is emitted when an administrator adds a course.
type CourseCreatedEvent struct {
	BaseEvent
	CourseName   string
	TeacherEmail string
}

// Payload implements Event.
func (e CourseCreatedEvent) Payload() map[string]any {
	return map[string]any{
		"course_name":   e.CourseName,
		"teacher_email": e.TeacherEmail,
	}
}

// CourseEditedEvent is emitted when a course's content list changes.
type CourseEditedEvent struct {
	BaseEvent
	CourseName string
	Change     string // "content_added" or "content_removed"
}

// Payload implements Event.
func (e CourseEditedEvent) Payload() map[string]any {
	return map[string]any{
		"course_name": e.CourseName,
		"change":      e.Change,
	}
}

// CourseDeletedEvent is emitted when an administrator deletes a course.
type CourseDeletedEvent struct {
	BaseEvent
	CourseName string
}

// Payload implements Event.
func (e CourseDeletedEvent) Payload() map[string]any {
	return map[string]any{"course_name": e.CourseName}
}

// StudentEnrolledEvent is emitted when a student joins a course roster.
type StudentEnrolledEvent struct {
	BaseEvent
	CourseName   string
	StudentEmail string
	// AccountCreated reports whether a new student account was created
	// as part of the enrollment (administrator-driven flow).
	AccountCreated bool
}

// Payload implements Event.
func (e StudentEnrolledEvent) Payload() map[string]any {
	return map[string]any{
		"course_name":     e.CourseName,
		"student_email":   e.StudentEmail,
		"account_created": e.AccountCreated,
	}
}

// StudentRemovedEvent is emitted when a student is removed from a roster.
type StudentRemovedEvent struct {
	BaseEvent
	CourseName   string
	StudentEmail string
	// GradesPurged reports whether the student's grade entries were
	// purged along with the roster removal (policy-controlled).
	GradesPurged bool
}

// Payload implements Event.
func (e StudentRemovedEvent) Payload() map[string]any {
	return map[string]any{
		"course_name":   e.CourseName,
		"student_email": e.StudentEmail,
		"grades_purged": e.GradesPurged,
	}
}

// GradeRecordedEvent is emitted when a teacher records a grade.
type GradeRecordedEvent struct {
	BaseEvent
	CourseName   string
	StudentEmail string
	Grade        int
}

// Payload implements Event.
func (e GradeRecordedEvent) Payload() map[string]any {
	return map[string]any{
		"course_name":   e.CourseName,
		"student_email": e.StudentEmail,
		"grade":         e.Grade,
	}
}

// AccountCreatedEvent is emitted when a new identity is registered.
type AccountCreatedEvent struct {
	BaseEvent
	Email string
	Role  string
}

// Payload implements Event.
func (e AccountCreatedEvent) Payload() map[string]any {
	return map[string]any{"email": e.Email, "role": e.Role}
}

// AccountRolledBackEvent is emitted when a freshly created account is
// removed because the enrollment it was created for failed.
type AccountRolledBackEvent struct {
	BaseEvent
	Email string
}

// Payload implements Event.
func (e AccountRolledBackEvent) Payload() map[string]any {
	return map[string]any{"email": e.Email}
}

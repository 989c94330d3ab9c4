// Package shared contains common domain types, errors, and events that are
// used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// Referential errors
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrConflict        = errors.New("conflict")
	ErrStaleHandle     = errors.New("handle invalidated by a structural mutation")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("operation not permitted for this role")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g. "course", "registry", "identity"
	Op      string // Operation that failed, e.g. "Enroll", "AddGrade"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Course domain errors
var (
	ErrCourseNotFound      = NewDomainError("course", "Get", ErrIndexOutOfRange, "invalid course index")
	ErrInvalidCourseName   = NewDomainError("course", "Validate", ErrEmptyValue, "course name must be 1-100 characters")
	ErrInvalidTeacherEmail = NewDomainError("course", "Validate", ErrInvalidFormat, "teacher email is malformed")
	ErrInvalidContent      = NewDomainError("course", "AddContent", ErrValidation, "content cannot be empty or longer than 100 characters")
	ErrContentIndex        = NewDomainError("course", "RemoveContent", ErrIndexOutOfRange, "invalid content index")
	ErrInvalidStudentEmail = NewDomainError("course", "Validate", ErrInvalidFormat, "student email is malformed")
	ErrAlreadyEnrolled     = NewDomainError("course", "Enroll", ErrConflict, "student already enrolled in this course")
	ErrNotEnrolled         = NewDomainError("course", "RemoveStudent", ErrNotFound, "student is not enrolled in this course")
	ErrInvalidGrade        = NewDomainError("course", "AddGrade", ErrValueOutOfRange, "grade must be between 0 and 100")
)

// Identity domain errors
var (
	ErrIdentityNotFound = NewDomainError("identity", "Find", ErrNotFound, "identity not found")
	ErrDuplicateEmail   = NewDomainError("identity", "Register", ErrConflict, "an account with this email already exists")
	ErrInvalidEmail     = NewDomainError("identity", "Validate", ErrInvalidFormat, "email is malformed")
	ErrInvalidUsername  = NewDomainError("identity", "Validate", ErrEmptyValue, "username must be 1-100 characters")
	ErrInvalidPassword  = NewDomainError("identity", "Validate", ErrEmptyValue, "password cannot be empty")
	ErrInvalidRole      = NewDomainError("identity", "Validate", ErrInvalidInput, "unknown role")
	ErrBadCredentials   = NewDomainError("identity", "Authenticate", ErrInvalidCredentials, "no identity matches this email and password")
)

// Registry and role-operation errors
var (
	ErrTeacherAssigned   = NewDomainError("registry", "AddCourse", ErrConflict, "teacher already owns another course")
	ErrStaleCourseHandle = NewDomainError("registry", "Handle", ErrStaleHandle, "course handle invalidated by a structural mutation")
	ErrGradeNotEnrolled  = NewDomainError("teacher", "AddGrade", ErrNotFound, "student is not enrolled in this course")
	ErrNotAuthorized     = NewDomainError("identity", "Authorize", ErrForbidden, "actor role does not permit this operation")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrIndexOutOfRange)
}

// IsConflict checks if the error is a conflict error (duplicate account,
// duplicate enrollment, teacher double-assignment).
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrInvalidFormat)
}

// IsAuth checks if the error is an authentication failure.
func IsAuth(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

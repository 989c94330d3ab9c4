// Package validate holds the pure input validation predicates shared by the
// domain and application layers, together with a configured
// go-playground/validator instance for struct-level validation of
// commands and configuration.
//
// Every predicate is total: it never blocks and never returns an error.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxStringLength is the upper bound for free-form strings (course names,
// content items).
const MaxStringLength = 100

// Grade boundaries.
const (
	MinGrade = 0
	MaxGrade = 100
)

// Email reports whether s has a plausible email shape: an '@' that is not
// the first character, followed somewhere later by a '.', with the '.' not
// in the last position.
//
// The check is deliberately weak. It mirrors the historical behavior of
// the system and does no domain, TLD, or length validation.
func Email(s string) bool {
	at := strings.Index(s, "@")
	dot := strings.LastIndex(s, ".")
	return at > 0 && dot > at && dot < len(s)-1
}

// Grade reports whether g is inside the inclusive [0, 100] range.
func Grade(g int) bool {
	return g >= MinGrade && g <= MaxGrade
}

// Index reports whether i is a valid 0-based index into a collection of
// the given size.
func Index(i, size int) bool {
	return i >= 0 && i < size
}

// NonEmptyString reports whether s is non-empty and at most
// MaxStringLength characters long.
func NonEmptyString(s string) bool {
	return len(s) > 0 && len(s) <= MaxStringLength
}

// IntInRange reports whether v lies in the inclusive [min, max] range.
// The bounded-retry prompt loop belongs to the boundary layer; this is
// the pure check it retries against.
func IntInRange(v, min, max int) bool {
	return v >= min && v <= max
}

// structValidator is the shared validator instance with the LMS custom
// tags registered. validator.Validate is safe for concurrent use.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()

	// lmsemail applies the weak Email shape check instead of the
	// library's RFC-strict "email" tag.
	_ = v.RegisterValidation("lmsemail", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	})

	// grade applies the inclusive [0, 100] range check.
	_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return Grade(int(fl.Field().Int()))
	})

	return v
}

// Struct validates a struct using the shared validator instance,
// honoring the lmsemail and grade custom tags alongside the built-ins.
func Struct(s any) error {
	return structValidator.Struct(s)
}

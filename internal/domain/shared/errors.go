// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// ErrValidation marks a malformed field value rejected at value object construction.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateEntity marks a weak-identity collision on add or set.
	ErrDuplicateEntity = errors.New("duplicate entity")

	// ErrEntityNotFound marks a missing target on set or remove.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrStudentNotFound marks a referential-integrity failure: the referenced student is absent.
	ErrStudentNotFound = errors.New("student not found")

	// ErrNoFieldEdited marks an edit descriptor that carries no changes.
	ErrNoFieldEdited = errors.New("no field edited")

	// ErrInvalidIndex marks an index outside the displayed list.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidCommand marks input the parser cannot turn into a command.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrStorage marks a persistence failure outside the core.
	ErrStorage = errors.New("storage error")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "lesson", "addressbook"
	Op      string // Operation that failed, e.g., "Add", "Set"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message, shown to the user verbatim
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

// NewValidationError creates a validation error for the named value object.
// The constraint is the message shown to the user.
func NewValidationError(valueObject, constraint string) *DomainError {
	return NewDomainError(valueObject, "Validate", ErrValidation, constraint)
}

// Entity errors shared by the collections and the aggregate root.
var (
	ErrDuplicateStudent    = NewDomainError("student", "Add", ErrDuplicateEntity, "This student already exists in the address book")
	ErrStudentAbsent       = NewDomainError("student", "Find", ErrEntityNotFound, "The specified student does not exist in the address book")
	ErrDuplicateLesson     = NewDomainError("lesson", "Add", ErrDuplicateEntity, "This lesson already exists in the address book")
	ErrLessonAbsent        = NewDomainError("lesson", "Find", ErrEntityNotFound, "The specified lesson does not exist in the address book")
	ErrLessonStudentAbsent = NewDomainError("lesson", "Add", ErrStudentNotFound, "The specified student does not exist in the address book")
	ErrDuplicateAssignment = NewDomainError("assignment", "Add", ErrDuplicateEntity, "This student already has an assignment with that name")
	ErrAssignmentAbsent    = NewDomainError("assignment", "Find", ErrEntityNotFound, "The student has no assignment with that name")
)

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDuplicate checks if the error is a duplicate-entity error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEntity)
}

// IsNotFound checks if the error is an "entity not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntityNotFound)
}

// IsStudentNotFound checks if the error is a referential-integrity failure.
func IsStudentNotFound(err error) bool {
	return errors.Is(err, ErrStudentNotFound)
}

// IsNoFieldEdited checks if the error reports an empty edit.
func IsNoFieldEdited(err error) bool {
	return errors.Is(err, ErrNoFieldEdited)
}

// UserMessage returns the text to show for err. Domain errors surface their
// Message verbatim; anything else falls back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return err.Error()
}

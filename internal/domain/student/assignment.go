package student

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// Assignment is a piece of work owned by exactly one student. Its name identifies it
// within that student's assignment set; two students may each own an assignment with
// the same name.
//
// Assignment is a value: every With* method returns a modified copy.
type Assignment struct {
	name      shared.AssignmentName
	dueDate   shared.Date
	completed bool
}

// NewAssignment creates an assignment with no due date that is not completed.
func NewAssignment(name shared.AssignmentName) (Assignment, error) {
	if name.IsZero() {
		return Assignment{}, shared.NewValidationError("assignment", shared.AssignmentNameConstraints)
	}
	return Assignment{name: name}, nil
}

// Name returns the assignment name.
func (a Assignment) Name() shared.AssignmentName { return a.name }

// DueDate returns the due date and whether one is set.
func (a Assignment) DueDate() (shared.Date, bool) {
	return a.dueDate, !a.dueDate.IsZero()
}

// IsCompleted reports whether the assignment was marked done.
func (a Assignment) IsCompleted() bool { return a.completed }

// WithName returns a copy renamed to name.
func (a Assignment) WithName(name shared.AssignmentName) Assignment {
	a.name = name
	return a
}

// WithDueDate returns a copy due on d.
func (a Assignment) WithDueDate(d shared.Date) Assignment {
	a.dueDate = d
	return a
}

// WithCompleted returns a copy with the completion flag set to done.
func (a Assignment) WithCompleted(done bool) Assignment {
	a.completed = done
	return a
}

// IsSameAssignment is the weak identity: same name.
func (a Assignment) IsSameAssignment(other Assignment) bool {
	return a.name == other.name
}

// Equal compares every field.
func (a Assignment) Equal(other Assignment) bool {
	return a == other
}

// String renders the assignment for display.
func (a Assignment) String() string {
	s := a.name.String()
	if d, ok := a.DueDate(); ok {
		s = fmt.Sprintf("%s (due %s)", s, d)
	}
	if a.completed {
		s += " [done]"
	}
	return s
}

package command

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGNMENT COMMANDS
// Assignments live inside a student. Every change builds a new student and
// replaces the old one in the address book.
// ══════════════════════════════════════════════════════════════════════════════

// Command words.
const (
	AddAssignmentWord    = "add_assignment"
	DeleteAssignmentWord = "delete_assignment"
	MarkAssignmentWord   = "mark_assignment"
	UnmarkAssignmentWord = "unmark_assignment"
)

// AddAssignment gives the student at Index a new assignment.
type AddAssignment struct {
	Index      shared.Index
	Assignment student.Assignment
}

// NewAddAssignment creates the command.
func NewAddAssignment(index shared.Index, a student.Assignment) AddAssignment {
	return AddAssignment{Index: index, Assignment: a}
}

// Execute implements Command.
func (c AddAssignment) Execute(m model.Model) (*Result, error) {
	target, err := studentAt(m, c.Index)
	if err != nil {
		return nil, err
	}
	edited, err := target.WithAssignment(c.Assignment)
	if err != nil {
		return nil, err
	}
	if err := m.SetStudent(target, edited); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf("New assignment added to %s: %s", edited.Name(), c.Assignment),
		RefreshView: true,
	}, nil
}

// DeleteAssignment removes the named assignment from the student at Index.
type DeleteAssignment struct {
	Index shared.Index
	Name  shared.AssignmentName
}

// NewDeleteAssignment creates the command.
func NewDeleteAssignment(index shared.Index, name shared.AssignmentName) DeleteAssignment {
	return DeleteAssignment{Index: index, Name: name}
}

// Execute implements Command.
func (c DeleteAssignment) Execute(m model.Model) (*Result, error) {
	target, err := studentAt(m, c.Index)
	if err != nil {
		return nil, err
	}
	edited, err := target.WithoutAssignment(c.Name)
	if err != nil {
		return nil, err
	}
	if err := m.SetStudent(target, edited); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf("Deleted assignment of %s: %s", edited.Name(), c.Name),
		RefreshView: true,
	}, nil
}

// MarkAssignment sets the completion flag of the named assignment of the student
// at Index.
type MarkAssignment struct {
	Index     shared.Index
	Name      shared.AssignmentName
	Completed bool
}

// NewMarkAssignment creates a command marking the assignment as done.
func NewMarkAssignment(index shared.Index, name shared.AssignmentName) MarkAssignment {
	return MarkAssignment{Index: index, Name: name, Completed: true}
}

// NewUnmarkAssignment creates a command marking the assignment as not done.
func NewUnmarkAssignment(index shared.Index, name shared.AssignmentName) MarkAssignment {
	return MarkAssignment{Index: index, Name: name}
}

// Execute implements Command. Marking an assignment that already has the
// requested state is accepted and leaves the data unchanged.
func (c MarkAssignment) Execute(m model.Model) (*Result, error) {
	target, err := studentAt(m, c.Index)
	if err != nil {
		return nil, err
	}
	a, ok := target.Assignment(c.Name)
	if !ok {
		return nil, shared.ErrAssignmentAbsent
	}

	state := "not done"
	if c.Completed {
		state = "done"
	}
	feedback := fmt.Sprintf("Marked assignment of %s as %s: %s", target.Name(), state, c.Name)
	if a.IsCompleted() == c.Completed {
		return &Result{Feedback: feedback}, nil
	}

	edited, err := target.ReplaceAssignment(c.Name, a.WithCompleted(c.Completed))
	if err != nil {
		return nil, err
	}
	if err := m.SetStudent(target, edited); err != nil {
		return nil, err
	}
	return &Result{Feedback: feedback, RefreshView: true}, nil
}

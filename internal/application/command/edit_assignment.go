package command

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// EDIT ASSIGNMENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// EditAssignmentWord is the command word.
const EditAssignmentWord = "edit_assignment"

// EditAssignmentDescriptor is a sparse patch: nil fields are left unchanged,
// never cleared.
type EditAssignmentDescriptor struct {
	NewName *shared.AssignmentName
	DueDate *shared.Date
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditAssignmentDescriptor) IsAnyFieldEdited() bool {
	return d.NewName != nil || d.DueDate != nil
}

func (d EditAssignmentDescriptor) apply(a student.Assignment) student.Assignment {
	if d.NewName != nil {
		a = a.WithName(*d.NewName)
	}
	if d.DueDate != nil {
		a = a.WithDueDate(*d.DueDate)
	}
	return a
}

// EditAssignment edits the named assignment of the student at Index in the
// displayed list.
type EditAssignment struct {
	Index      shared.Index
	Name       shared.AssignmentName
	Descriptor EditAssignmentDescriptor
}

// NewEditAssignment creates the command.
func NewEditAssignment(index shared.Index, name shared.AssignmentName, d EditAssignmentDescriptor) EditAssignment {
	return EditAssignment{Index: index, Name: name, Descriptor: d}
}

// Execute implements Command.
func (c EditAssignment) Execute(m model.Model) (*Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return nil, noFieldEdited("assignment")
	}
	target, err := studentAt(m, c.Index)
	if err != nil {
		return nil, err
	}
	original, ok := target.Assignment(c.Name)
	if !ok {
		return nil, shared.ErrAssignmentAbsent
	}
	edited := c.Descriptor.apply(original)
	updated, err := target.ReplaceAssignment(c.Name, edited)
	if err != nil {
		return nil, err
	}
	if err := m.SetStudent(target, updated); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf("Edited assignment of %s: %s", updated.Name(), edited),
		RefreshView: true,
	}, nil
}

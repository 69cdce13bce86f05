package command

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// EDIT STUDENT COMMAND
// Replaces a displayed student with an edited copy. A new name is carried
// into the student's lessons by the address book.
// ══════════════════════════════════════════════════════════════════════════════

// EditStudentWord is the command word.
const EditStudentWord = "edit_student"

// EditStudentDescriptor is a sparse patch: nil fields are left unchanged.
type EditStudentDescriptor struct {
	Name    *shared.Name
	Phone   *shared.Phone
	Email   *shared.Email
	Address *shared.Address
	Subject *shared.Subject

	// Tags replaces the whole tag set when non-nil. An empty non-nil slice
	// clears it.
	Tags []shared.Tag
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditStudentDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil ||
		d.Address != nil || d.Subject != nil || d.Tags != nil
}

// apply builds the edited student. Assignments are kept.
func (d EditStudentDescriptor) apply(s *student.Student) (*student.Student, error) {
	p := s.Params()
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Phone != nil {
		p.Phone = *d.Phone
	}
	if d.Email != nil {
		p.Email = *d.Email
	}
	if d.Address != nil {
		p.Address = *d.Address
	}
	if d.Subject != nil {
		p.Subject = *d.Subject
	}
	if d.Tags != nil {
		p.Tags = d.Tags
	}
	return student.NewStudent(p)
}

// EditStudent edits the student at Index in the displayed list.
type EditStudent struct {
	Index      shared.Index
	Descriptor EditStudentDescriptor
}

// NewEditStudent creates the command.
func NewEditStudent(index shared.Index, d EditStudentDescriptor) EditStudent {
	return EditStudent{Index: index, Descriptor: d}
}

// Execute implements Command.
func (c EditStudent) Execute(m model.Model) (*Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return nil, noFieldEdited("student")
	}
	target, err := studentAt(m, c.Index)
	if err != nil {
		return nil, err
	}
	edited, err := c.Descriptor.apply(target)
	if err != nil {
		return nil, err
	}
	if !target.IsSameStudent(edited) && m.HasStudent(edited) {
		return nil, shared.ErrDuplicateStudent
	}
	if err := m.SetStudent(target, edited); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf("Edited Student: %s", edited),
		RefreshView: true,
	}, nil
}

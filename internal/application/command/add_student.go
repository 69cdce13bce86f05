package command

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD STUDENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// AddStudentWord is the command word.
const AddStudentWord = "add_student"

// AddStudent adds a new student.
type AddStudent struct {
	Student *student.Student
}

// NewAddStudent creates the command.
func NewAddStudent(s *student.Student) AddStudent {
	return AddStudent{Student: s}
}

// Execute implements Command.
func (c AddStudent) Execute(m model.Model) (*Result, error) {
	if c.Student == nil {
		return nil, shared.NewValidationError("student", "Student must not be empty")
	}
	if m.HasStudent(c.Student) {
		return nil, shared.ErrDuplicateStudent
	}
	if err := m.AddStudent(c.Student); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf("New student added: %s", c.Student),
		RefreshView: true,
	}, nil
}

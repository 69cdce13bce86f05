package command

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// DeleteStudentWord is the command word.
const DeleteStudentWord = "delete_student"

// DeleteStudent removes the student at Index in the displayed list together
// with all of the student's lessons.
type DeleteStudent struct {
	Index shared.Index
}

// NewDeleteStudent creates the command.
func NewDeleteStudent(index shared.Index) DeleteStudent {
	return DeleteStudent{Index: index}
}

// Execute implements Command.
func (c DeleteStudent) Execute(m model.Model) (*Result, error) {
	target, err := studentAt(m, c.Index)
	if err != nil {
		return nil, err
	}
	if err := m.DeleteStudent(target); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf("Deleted Student: %s", target),
		RefreshView: true,
	}, nil
}

package command

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// DeleteLessonWord is the command word.
const DeleteLessonWord = "delete_lesson"

// DeleteLesson removes the lesson at Index in the displayed lessons.
type DeleteLesson struct {
	Index shared.Index
}

// NewDeleteLesson creates the command.
func NewDeleteLesson(index shared.Index) DeleteLesson {
	return DeleteLesson{Index: index}
}

// Execute implements Command.
func (c DeleteLesson) Execute(m model.Model) (*Result, error) {
	target, err := lessonAt(m, c.Index)
	if err != nil {
		return nil, err
	}
	if err := m.DeleteLesson(target); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf("Deleted Lesson: %s", target),
		RefreshView: true,
	}, nil
}

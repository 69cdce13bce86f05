package command

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD LESSON COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// AddLessonWord is the command word.
const AddLessonWord = "add_lesson"

// MessageLessonAdded is the add_lesson feedback.
const MessageLessonAdded = "New lesson added: %s"

// AddLesson books a lesson with an existing student.
type AddLesson struct {
	Lesson lesson.Lesson
}

// NewAddLesson creates the command.
func NewAddLesson(l lesson.Lesson) AddLesson {
	return AddLesson{Lesson: l}
}

// Execute implements Command. A duplicate lesson is reported before a missing
// student.
func (c AddLesson) Execute(m model.Model) (*Result, error) {
	if m.HasLesson(c.Lesson) {
		return nil, shared.ErrDuplicateLesson
	}
	if !m.HasStudentNamed(c.Lesson.StudentName()) {
		return nil, shared.ErrLessonStudentAbsent
	}
	if err := m.AddLesson(c.Lesson); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf(MessageLessonAdded, c.Lesson),
		RefreshView: true,
	}, nil
}

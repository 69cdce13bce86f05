package command

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// EditLessonWord is the command word.
const EditLessonWord = "edit_lesson"

// EditLessonDescriptor is a sparse patch: nil fields are left unchanged.
type EditLessonDescriptor struct {
	StudentName *shared.Name
	Date        *shared.Date
	Time        *shared.Time
	Subject     *shared.Subject
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditLessonDescriptor) IsAnyFieldEdited() bool {
	return d.StudentName != nil || d.Date != nil || d.Time != nil || d.Subject != nil
}

func (d EditLessonDescriptor) apply(l lesson.Lesson) (lesson.Lesson, error) {
	p := l.Params()
	if d.StudentName != nil {
		p.StudentName = *d.StudentName
	}
	if d.Date != nil {
		p.Date = *d.Date
	}
	if d.Time != nil {
		p.Time = *d.Time
	}
	if d.Subject != nil {
		p.Subject = *d.Subject
	}
	return lesson.NewLesson(p)
}

// EditLesson edits the lesson at Index in the displayed lessons. The student
// the edited lesson refers to must exist.
type EditLesson struct {
	Index      shared.Index
	Descriptor EditLessonDescriptor
}

// NewEditLesson creates the command.
func NewEditLesson(index shared.Index, d EditLessonDescriptor) EditLesson {
	return EditLesson{Index: index, Descriptor: d}
}

// Execute implements Command.
func (c EditLesson) Execute(m model.Model) (*Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return nil, noFieldEdited("lesson")
	}
	target, err := lessonAt(m, c.Index)
	if err != nil {
		return nil, err
	}
	edited, err := c.Descriptor.apply(target)
	if err != nil {
		return nil, err
	}
	if !target.Equal(edited) && m.HasLesson(edited) {
		return nil, shared.ErrDuplicateLesson
	}
	if !m.HasStudentNamed(edited.StudentName()) {
		return nil, shared.ErrLessonStudentAbsent
	}
	if err := m.SetLesson(target, edited); err != nil {
		return nil, err
	}
	return &Result{
		Feedback:    fmt.Sprintf("Edited Lesson: %s", edited),
		RefreshView: true,
	}, nil
}

// Package command contains write operations (CQRS - Commands).
//
// A command is a small value carrying already validated arguments. Execute
// checks every precondition against the model first and then applies at most
// one mutation, so a command either applies fully or is rejected with the model
// untouched.
package command

import (
	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// Command is a parsed user command.
type Command interface {
	// Execute runs the command against m. A returned error means the command
	// was rejected and m was not changed.
	Execute(m model.Model) (*Result, error)
}

// Result is what an applied command reports back to the display layer.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string

	// RefreshView asks the display to re-render the filtered lists.
	RefreshView bool

	// ShowHelp asks the display to show the help text.
	ShowHelp bool

	// Exit asks the application to shut down.
	Exit bool
}

// Messages shared by several commands.
const (
	MessageInvalidStudentIndex = "The student index provided is invalid"
	MessageInvalidLessonIndex  = "The lesson index provided is invalid"
	MessageStudentsListed      = "%d students listed!"
	MessageLessonsListed       = "%d lessons listed!"
)

// studentAt resolves index against the displayed students, not the full list.
func studentAt(m model.Model, index shared.Index) (*student.Student, error) {
	s, err := m.FilteredStudents().Get(index)
	if err != nil {
		return nil, shared.WrapError("student", "Resolve", shared.ErrInvalidIndex, MessageInvalidStudentIndex, err)
	}
	return s, nil
}

// lessonAt resolves index against the displayed lessons.
func lessonAt(m model.Model, index shared.Index) (lesson.Lesson, error) {
	l, err := m.FilteredLessons().Get(index)
	if err != nil {
		return lesson.Lesson{}, shared.WrapError("lesson", "Resolve", shared.ErrInvalidIndex, MessageInvalidLessonIndex, err)
	}
	return l, nil
}

func noFieldEdited(domain string) error {
	return shared.NewDomainError(domain, "Edit", shared.ErrNoFieldEdited, "At least one field to edit must be provided.")
}

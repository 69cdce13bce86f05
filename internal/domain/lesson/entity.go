// Package lesson contains the lesson entity of the tutor's address book.
package lesson

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// Lesson is a scheduled session with one student.
//
// The student is referenced by name only. A lesson never holds a pointer to the
// student: the address book resolves the name against its current students.
type Lesson struct {
	studentName shared.Name
	date        shared.Date
	time        shared.Time
	subject     shared.Subject
}

// NewLessonParams contains the parameters for creating a lesson.
type NewLessonParams struct {
	StudentName shared.Name
	Date        shared.Date
	Time        shared.Time
	Subject     shared.Subject
}

// NewLesson creates a lesson, checking that every field is present.
func NewLesson(params NewLessonParams) (Lesson, error) {
	switch {
	case params.StudentName.IsZero():
		return Lesson{}, shared.NewValidationError("lesson", "Student name is required")
	case params.Date.IsZero():
		return Lesson{}, shared.NewValidationError("lesson", "Date is required")
	case params.Time.IsZero():
		return Lesson{}, shared.NewValidationError("lesson", "Time is required")
	case params.Subject.IsZero():
		return Lesson{}, shared.NewValidationError("lesson", "Subject is required")
	}
	return Lesson{
		studentName: params.StudentName,
		date:        params.Date,
		time:        params.Time,
		subject:     params.Subject,
	}, nil
}

// Params returns the lesson's fields.
func (l Lesson) Params() NewLessonParams {
	return NewLessonParams{
		StudentName: l.studentName,
		Date:        l.date,
		Time:        l.time,
		Subject:     l.subject,
	}
}

// StudentName returns the name of the student the lesson is with.
func (l Lesson) StudentName() shared.Name { return l.studentName }

// Date returns the lesson day.
func (l Lesson) Date() shared.Date { return l.date }

// Time returns the lesson start time.
func (l Lesson) Time() shared.Time { return l.time }

// Subject returns the lesson subject.
func (l Lesson) Subject() shared.Subject { return l.subject }

// WithStudentName returns a copy referencing name.
func (l Lesson) WithStudentName(name shared.Name) Lesson {
	l.studentName = name
	return l
}

// Equal compares every field. Duplicate lessons are detected with Equal.
func (l Lesson) Equal(other Lesson) bool {
	return l == other
}

// IsSameSlot reports whether both lessons book the same student at the same
// date and time, whatever the subject.
func (l Lesson) IsSameSlot(other Lesson) bool {
	return l.studentName == other.studentName && l.date == other.date && l.time == other.time
}

// Before orders lessons chronologically.
func (l Lesson) Before(other Lesson) bool {
	if l.date != other.date {
		return l.date.Before(other.date)
	}
	return l.time.Before(other.time)
}

// String renders the lesson for logs and messages.
func (l Lesson) String() string {
	return fmt.Sprintf("%s; Date: %s; Time: %s; Subject: %s", l.studentName, l.date, l.time, l.subject)
}

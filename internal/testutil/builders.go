// Package testutil builds students, lessons and address books for tests.
// Builders panic on invalid input: a bad fixture is a bug in the test.
package testutil

import (
	"fmt"

	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("testutil: invalid fixture: %v", err))
	}
	return v
}

// Name, Date, Time and the others construct value objects or panic.
func Name(raw string) shared.Name                     { return must(shared.NewName(raw)) }
func Phone(raw string) shared.Phone                   { return must(shared.NewPhone(raw)) }
func Email(raw string) shared.Email                   { return must(shared.NewEmail(raw)) }
func Address(raw string) shared.Address               { return must(shared.NewAddress(raw)) }
func Subject(raw string) shared.Subject               { return must(shared.NewSubject(raw)) }
func Tag(raw string) shared.Tag                       { return must(shared.NewTag(raw)) }
func AssignmentName(raw string) shared.AssignmentName { return must(shared.NewAssignmentName(raw)) }
func Date(raw string) shared.Date                     { return must(shared.NewDate(raw)) }
func Time(raw string) shared.Time                     { return must(shared.NewTime(raw)) }
func Index(oneBased int) shared.Index                 { return must(shared.NewIndex(oneBased)) }

// Assignment builds a pending assignment without a due date.
func Assignment(name string) student.Assignment {
	return must(student.NewAssignment(AssignmentName(name)))
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT BUILDER
// ══════════════════════════════════════════════════════════════════════════════

// Defaults used by NewStudentBuilder.
const (
	DefaultName    = "Amy Bee"
	DefaultPhone   = "85355255"
	DefaultEmail   = "amy@gmail.com"
	DefaultAddress = "123, Jurong West Ave 6, #08-111"
	DefaultSubject = "Mathematics"
)

// StudentBuilder assembles a student field by field.
type StudentBuilder struct {
	params student.NewStudentParams
}

// NewStudentBuilder starts from the default student.
func NewStudentBuilder() *StudentBuilder {
	return &StudentBuilder{params: student.NewStudentParams{
		Name:    Name(DefaultName),
		Phone:   Phone(DefaultPhone),
		Email:   Email(DefaultEmail),
		Address: Address(DefaultAddress),
		Subject: Subject(DefaultSubject),
	}}
}

// StudentBuilderFrom starts from the fields of s.
func StudentBuilderFrom(s *student.Student) *StudentBuilder {
	return &StudentBuilder{params: s.Params()}
}

func (b *StudentBuilder) WithName(v string) *StudentBuilder {
	b.params.Name = Name(v)
	return b
}

func (b *StudentBuilder) WithPhone(v string) *StudentBuilder {
	b.params.Phone = Phone(v)
	return b
}

func (b *StudentBuilder) WithEmail(v string) *StudentBuilder {
	b.params.Email = Email(v)
	return b
}

func (b *StudentBuilder) WithAddress(v string) *StudentBuilder {
	b.params.Address = Address(v)
	return b
}

func (b *StudentBuilder) WithSubject(v string) *StudentBuilder {
	b.params.Subject = Subject(v)
	return b
}

// WithTags replaces the tags.
func (b *StudentBuilder) WithTags(tags ...string) *StudentBuilder {
	b.params.Tags = nil
	for _, t := range tags {
		b.params.Tags = append(b.params.Tags, Tag(t))
	}
	return b
}

// WithAssignments replaces the assignments.
func (b *StudentBuilder) WithAssignments(as ...student.Assignment) *StudentBuilder {
	b.params.Assignments = as
	return b
}

// Build creates the student.
func (b *StudentBuilder) Build() *student.Student {
	return must(student.NewStudent(b.params))
}

// ══════════════════════════════════════════════════════════════════════════════
// LESSON BUILDER
// ══════════════════════════════════════════════════════════════════════════════

// LessonBuilder assembles a lesson field by field.
type LessonBuilder struct {
	params lesson.NewLessonParams
}

// NewLessonBuilder starts from a lesson with the default student.
func NewLessonBuilder() *LessonBuilder {
	return &LessonBuilder{params: lesson.NewLessonParams{
		StudentName: Name(DefaultName),
		Date:        Date("15-03-2025"),
		Time:        Time("14:00"),
		Subject:     Subject(DefaultSubject),
	}}
}

func (b *LessonBuilder) WithStudent(v string) *LessonBuilder {
	b.params.StudentName = Name(v)
	return b
}

func (b *LessonBuilder) WithDate(v string) *LessonBuilder {
	b.params.Date = Date(v)
	return b
}

func (b *LessonBuilder) WithTime(v string) *LessonBuilder {
	b.params.Time = Time(v)
	return b
}

func (b *LessonBuilder) WithSubject(v string) *LessonBuilder {
	b.params.Subject = Subject(v)
	return b
}

// Build creates the lesson.
func (b *LessonBuilder) Build() lesson.Lesson {
	return must(lesson.NewLesson(b.params))
}

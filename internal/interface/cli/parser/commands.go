package parser

import (
	"strings"

	"github.com/tutorhub/tutorhub/internal/application/command"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

func parseAddStudent(args string) (command.Command, error) {
	word := command.AddStudentWord
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixSubject, PrefixTag)
	if !m.HasAll(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixSubject) || m.Preamble() != "" {
		return nil, invalidFormat(word)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixSubject); err != nil {
		return nil, err
	}

	var (
		p   student.NewStudentParams
		err error
	)
	if p.Name, err = required(m, PrefixName, shared.NewName); err != nil {
		return nil, err
	}
	if p.Phone, err = required(m, PrefixPhone, shared.NewPhone); err != nil {
		return nil, err
	}
	if p.Email, err = required(m, PrefixEmail, shared.NewEmail); err != nil {
		return nil, err
	}
	if p.Address, err = required(m, PrefixAddress, shared.NewAddress); err != nil {
		return nil, err
	}
	if p.Subject, err = required(m, PrefixSubject, shared.NewSubject); err != nil {
		return nil, err
	}
	if p.Tags, err = parseTags(m.AllValues(PrefixTag)); err != nil {
		return nil, err
	}

	s, err := student.NewStudent(p)
	if err != nil {
		return nil, err
	}
	return command.NewAddStudent(s), nil
}

func parseEditStudent(args string) (command.Command, error) {
	word := command.EditStudentWord
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixSubject, PrefixTag)
	index, err := shared.ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormatWrap(word, err)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixSubject); err != nil {
		return nil, err
	}

	var d command.EditStudentDescriptor
	if d.Name, err = optional(m, PrefixName, shared.NewName); err != nil {
		return nil, err
	}
	if d.Phone, err = optional(m, PrefixPhone, shared.NewPhone); err != nil {
		return nil, err
	}
	if d.Email, err = optional(m, PrefixEmail, shared.NewEmail); err != nil {
		return nil, err
	}
	if d.Address, err = optional(m, PrefixAddress, shared.NewAddress); err != nil {
		return nil, err
	}
	if d.Subject, err = optional(m, PrefixSubject, shared.NewSubject); err != nil {
		return nil, err
	}
	if d.Tags, err = parseTagsForEdit(m); err != nil {
		return nil, err
	}
	if !d.IsAnyFieldEdited() {
		return nil, noFieldEdited()
	}
	return command.NewEditStudent(index, d), nil
}

func parseDeleteStudent(args string) (command.Command, error) {
	index, err := shared.ParseIndex(args)
	if err != nil {
		return nil, invalidFormatWrap(command.DeleteStudentWord, err)
	}
	return command.NewDeleteStudent(index), nil
}

func parseFindStudents(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindStudentsWord)
	}
	return command.NewFindStudents(keywords), nil
}

func parseFilterStudents(args string) (command.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(command.FilterStudentsWord)
	}
	c, err := command.NewFilterStudents(args)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// LESSON COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

func parseAddLesson(args string) (command.Command, error) {
	word := command.AddLessonWord
	m := Tokenize(args, PrefixName, PrefixDate, PrefixTime, PrefixSubject)
	if !m.HasAll(PrefixName, PrefixDate, PrefixTime, PrefixSubject) || m.Preamble() != "" {
		return nil, invalidFormat(word)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixDate, PrefixTime, PrefixSubject); err != nil {
		return nil, err
	}

	var (
		p   lesson.NewLessonParams
		err error
	)
	if p.StudentName, err = required(m, PrefixName, shared.NewName); err != nil {
		return nil, err
	}
	if p.Date, err = required(m, PrefixDate, shared.NewDate); err != nil {
		return nil, err
	}
	if p.Time, err = required(m, PrefixTime, shared.NewTime); err != nil {
		return nil, err
	}
	if p.Subject, err = required(m, PrefixSubject, shared.NewSubject); err != nil {
		return nil, err
	}

	l, err := lesson.NewLesson(p)
	if err != nil {
		return nil, err
	}
	return command.NewAddLesson(l), nil
}

func parseEditLesson(args string) (command.Command, error) {
	word := command.EditLessonWord
	m := Tokenize(args, PrefixName, PrefixDate, PrefixTime, PrefixSubject)
	index, err := shared.ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormatWrap(word, err)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixDate, PrefixTime, PrefixSubject); err != nil {
		return nil, err
	}

	var d command.EditLessonDescriptor
	if d.StudentName, err = optional(m, PrefixName, shared.NewName); err != nil {
		return nil, err
	}
	if d.Date, err = optional(m, PrefixDate, shared.NewDate); err != nil {
		return nil, err
	}
	if d.Time, err = optional(m, PrefixTime, shared.NewTime); err != nil {
		return nil, err
	}
	if d.Subject, err = optional(m, PrefixSubject, shared.NewSubject); err != nil {
		return nil, err
	}
	if !d.IsAnyFieldEdited() {
		return nil, noFieldEdited()
	}
	return command.NewEditLesson(index, d), nil
}

func parseDeleteLesson(args string) (command.Command, error) {
	index, err := shared.ParseIndex(args)
	if err != nil {
		return nil, invalidFormatWrap(command.DeleteLessonWord, err)
	}
	return command.NewDeleteLesson(index), nil
}

func parseListLessons(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixDate)
	if m.Preamble() != "" {
		return nil, invalidFormat(command.ListLessonsWord)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixDate); err != nil {
		return nil, err
	}

	var c command.ListLessons
	name, err := optional(m, PrefixName, shared.NewName)
	if err != nil {
		return nil, err
	}
	if name != nil {
		c.Student = *name
	}
	date, err := optional(m, PrefixDate, shared.NewDate)
	if err != nil {
		return nil, err
	}
	if date != nil {
		c.Date = *date
	}
	return c, nil
}

func parseFilterLessons(args string) (command.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(command.FilterLessonsWord)
	}
	c, err := command.NewFilterLessons(args)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGNMENT COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

// indexAndAssignment parses "INDEX as/NAME" plus the extra prefixes, all of
// which are single-valued.
func indexAndAssignment(word, args string, extra ...Prefix) (shared.Index, shared.AssignmentName, ArgumentMultimap, error) {
	prefixes := append([]Prefix{PrefixAssignment}, extra...)
	m := Tokenize(args, prefixes...)

	index, err := shared.ParseIndex(m.Preamble())
	if err != nil {
		return shared.Index{}, shared.AssignmentName{}, m, invalidFormatWrap(word, err)
	}
	if !m.Has(PrefixAssignment) {
		return shared.Index{}, shared.AssignmentName{}, m, invalidFormat(word)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(prefixes...); err != nil {
		return shared.Index{}, shared.AssignmentName{}, m, err
	}
	name, err := required(m, PrefixAssignment, shared.NewAssignmentName)
	if err != nil {
		return shared.Index{}, shared.AssignmentName{}, m, err
	}
	return index, name, m, nil
}

func parseAddAssignment(args string) (command.Command, error) {
	index, name, m, err := indexAndAssignment(command.AddAssignmentWord, args, PrefixDate)
	if err != nil {
		return nil, err
	}
	a, err := student.NewAssignment(name)
	if err != nil {
		return nil, err
	}
	due, err := optional(m, PrefixDate, shared.NewDate)
	if err != nil {
		return nil, err
	}
	if due != nil {
		a = a.WithDueDate(*due)
	}
	return command.NewAddAssignment(index, a), nil
}

func parseEditAssignment(args string) (command.Command, error) {
	index, name, m, err := indexAndAssignment(command.EditAssignmentWord, args, PrefixNewAssignment, PrefixDate)
	if err != nil {
		return nil, err
	}

	var d command.EditAssignmentDescriptor
	if d.NewName, err = optional(m, PrefixNewAssignment, shared.NewAssignmentName); err != nil {
		return nil, err
	}
	if d.DueDate, err = optional(m, PrefixDate, shared.NewDate); err != nil {
		return nil, err
	}
	if !d.IsAnyFieldEdited() {
		return nil, noFieldEdited()
	}
	return command.NewEditAssignment(index, name, d), nil
}

func parseDeleteAssignment(args string) (command.Command, error) {
	index, name, _, err := indexAndAssignment(command.DeleteAssignmentWord, args)
	if err != nil {
		return nil, err
	}
	return command.NewDeleteAssignment(index, name), nil
}

func parseMarkAssignment(done bool) parseFunc {
	word := command.UnmarkAssignmentWord
	if done {
		word = command.MarkAssignmentWord
	}
	return func(args string) (command.Command, error) {
		index, name, _, err := indexAndAssignment(word, args)
		if err != nil {
			return nil, err
		}
		if done {
			return command.NewMarkAssignment(index, name), nil
		}
		return command.NewUnmarkAssignment(index, name), nil
	}
}

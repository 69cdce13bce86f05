// Package parser turns command lines into fully validated commands. Every raw
// string is converted into its value object here, so commands only ever see
// valid values.
package parser

import (
	"fmt"
	"strings"

	"github.com/tutorhub/tutorhub/internal/application/command"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// MessageUnknownCommand is returned for an unrecognised command word.
const MessageUnknownCommand = "Unknown command"

type parseFunc func(args string) (command.Command, error)

// Parser parses command lines.
type Parser struct {
	commands map[string]parseFunc
}

// New creates a Parser that knows every command.
func New() *Parser {
	return &Parser{commands: map[string]parseFunc{
		command.AddStudentWord:       parseAddStudent,
		command.EditStudentWord:      parseEditStudent,
		command.DeleteStudentWord:    parseDeleteStudent,
		command.ListStudentsWord:     noArgs(command.ListStudents{}),
		command.FindStudentsWord:     parseFindStudents,
		command.FilterStudentsWord:   parseFilterStudents,
		command.ClearWord:            noArgs(command.Clear{}),
		command.AddLessonWord:        parseAddLesson,
		command.EditLessonWord:       parseEditLesson,
		command.DeleteLessonWord:     parseDeleteLesson,
		command.ListLessonsWord:      parseListLessons,
		command.FilterLessonsWord:    parseFilterLessons,
		command.AddAssignmentWord:    parseAddAssignment,
		command.EditAssignmentWord:   parseEditAssignment,
		command.DeleteAssignmentWord: parseDeleteAssignment,
		command.MarkAssignmentWord:   parseMarkAssignment(true),
		command.UnmarkAssignmentWord: parseMarkAssignment(false),
		command.HelpWord:             noArgs(command.Help{}),
		command.ExitWord:             noArgs(command.Exit{}),
	}}
}

// Parse parses one command line. Command words are case-sensitive.
func (p *Parser) Parse(line string) (command.Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, invalidFormat(command.HelpWord)
	}
	word, args := trimmed, ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		word, args = trimmed[:i], trimmed[i:]
	}
	parse, ok := p.commands[word]
	if !ok {
		return nil, shared.NewDomainError("parser", "Parse", shared.ErrInvalidCommand, MessageUnknownCommand)
	}
	return parse(args)
}

// noArgs ignores any arguments, as the shell did for these commands.
func noArgs(c command.Command) parseFunc {
	return func(string) (command.Command, error) { return c, nil }
}

// invalidFormat reports input that does not match word's syntax.
func invalidFormat(word string) error {
	return shared.NewDomainError("parser", "Parse", shared.ErrInvalidCommand,
		fmt.Sprintf("Invalid command format! \n%s", command.Usage[word]))
}

func invalidFormatWrap(word string, err error) error {
	return shared.WrapError("parser", "Parse", shared.ErrInvalidCommand,
		fmt.Sprintf("Invalid command format! \n%s", command.Usage[word]), err)
}

func noFieldEdited() error {
	return shared.NewDomainError("parser", "Parse", shared.ErrNoFieldEdited, "At least one field to edit must be provided.")
}

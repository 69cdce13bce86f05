package command

import (
	"fmt"
	"strings"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/application/query"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT VIEW COMMANDS
// These only change which students are displayed. They never mutate data.
// ══════════════════════════════════════════════════════════════════════════════

// Command words.
const (
	ListStudentsWord   = "list_students"
	FindStudentsWord   = "find_students"
	FilterStudentsWord = "filter_students"
)

// MessageListedAllStudents is the list_students feedback.
const MessageListedAllStudents = "Listed all students"

// ListStudents clears the student filter.
type ListStudents struct{}

// Execute implements Command. It always succeeds.
func (ListStudents) Execute(m model.Model) (*Result, error) {
	m.UpdateStudentFilter(model.ShowAllStudents)
	return &Result{Feedback: MessageListedAllStudents, RefreshView: true}, nil
}

// FindStudents shows the students whose name contains any keyword.
type FindStudents struct {
	Keywords []string
}

// NewFindStudents creates the command.
func NewFindStudents(keywords []string) FindStudents {
	return FindStudents{Keywords: append([]string(nil), keywords...)}
}

// Execute implements Command.
func (c FindStudents) Execute(m model.Model) (*Result, error) {
	if len(c.Keywords) == 0 {
		return nil, shared.NewValidationError("find", "At least one keyword is required")
	}
	m.UpdateStudentFilter(query.NameContainsKeywords(c.Keywords))
	return &Result{
		Feedback:    fmt.Sprintf(MessageStudentsListed, m.FilteredStudents().Len()),
		RefreshView: true,
	}, nil
}

// FilterStudents shows the students matching a compiled expression.
type FilterStudents struct {
	Source    string
	Predicate model.StudentPredicate
}

// NewFilterStudents compiles src and creates the command.
func NewFilterStudents(src string) (FilterStudents, error) {
	p, err := query.StudentExpression(src)
	if err != nil {
		return FilterStudents{}, err
	}
	return FilterStudents{Source: strings.TrimSpace(src), Predicate: p}, nil
}

// Execute implements Command.
func (c FilterStudents) Execute(m model.Model) (*Result, error) {
	if c.Predicate == nil {
		return nil, shared.NewValidationError("expression", "Filter expression must not be blank")
	}
	m.UpdateStudentFilter(c.Predicate)
	return &Result{
		Feedback:    fmt.Sprintf(MessageStudentsListed, m.FilteredStudents().Len()),
		RefreshView: true,
	}, nil
}

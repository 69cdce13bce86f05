package command

import (
	"fmt"
	"strings"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/application/query"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// Command words.
const (
	ListLessonsWord   = "list_lessons"
	FilterLessonsWord = "filter_lessons"
)

// ListLessons shows lessons, optionally only those of one student or on one day.
// Zero fields do not restrict the view.
type ListLessons struct {
	Student shared.Name
	Date    shared.Date
}

// Execute implements Command. Naming a student that does not exist is rejected.
func (c ListLessons) Execute(m model.Model) (*Result, error) {
	var filters []model.LessonPredicate
	if !c.Student.IsZero() {
		if !m.HasStudentNamed(c.Student) {
			return nil, shared.ErrLessonStudentAbsent
		}
		filters = append(filters, query.LessonsOfStudent(c.Student))
	}
	if !c.Date.IsZero() {
		filters = append(filters, query.LessonsOnDate(c.Date))
	}

	if len(filters) == 0 {
		m.UpdateLessonFilter(model.ShowAllLessons)
	} else {
		m.UpdateLessonFilter(query.AndLessons(filters...))
	}
	return &Result{
		Feedback:    fmt.Sprintf(MessageLessonsListed, m.FilteredLessons().Len()),
		RefreshView: true,
	}, nil
}

// FilterLessons shows the lessons matching a compiled expression.
type FilterLessons struct {
	Source    string
	Predicate model.LessonPredicate
}

// NewFilterLessons compiles src and creates the command.
func NewFilterLessons(src string) (FilterLessons, error) {
	p, err := query.LessonExpression(src)
	if err != nil {
		return FilterLessons{}, err
	}
	return FilterLessons{Source: strings.TrimSpace(src), Predicate: p}, nil
}

// Execute implements Command.
func (c FilterLessons) Execute(m model.Model) (*Result, error) {
	if c.Predicate == nil {
		return nil, shared.NewValidationError("expression", "Filter expression must not be blank")
	}
	m.UpdateLessonFilter(c.Predicate)
	return &Result{
		Feedback:    fmt.Sprintf(MessageLessonsListed, m.FilteredLessons().Len()),
		RefreshView: true,
	}, nil
}

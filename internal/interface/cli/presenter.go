package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tutorhub/tutorhub/internal/application/command"
	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// Presenter renders command outcomes and the displayed lists as plain text.
type Presenter struct {
	out io.Writer
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Result prints the feedback of an applied command and, when asked to, the
// displayed lists.
func (p *Presenter) Result(res *command.Result, m model.Model) {
	if res == nil {
		return
	}
	fmt.Fprintln(p.out, res.Feedback)
	if res.RefreshView && !res.ShowHelp {
		p.Students(m.FilteredStudents())
		p.Lessons(m.FilteredLessons())
	}
}

// Error prints the user-facing message of err.
func (p *Presenter) Error(err error) {
	fmt.Fprintln(p.out, shared.UserMessage(err))
}

// Students prints the displayed students with their one-based indexes.
func (p *Presenter) Students(students addressbook.View[*student.Student]) {
	fmt.Fprintf(p.out, "Students (%d):\n", students.Len())
	for i, s := range students.All() {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, formatStudent(s))
	}
}

// Lessons prints the displayed lessons with their one-based indexes.
func (p *Presenter) Lessons(lessons addressbook.View[lesson.Lesson]) {
	fmt.Fprintf(p.out, "Lessons (%d):\n", lessons.Len())
	for i, l := range lessons.All() {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, formatLesson(l))
	}
}

// Line prints a plain message.
func (p *Presenter) Line(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Prompt prints the input prompt.
func (p *Presenter) Prompt() {
	fmt.Fprint(p.out, "> ")
}

func formatStudent(s *student.Student) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s | %s | %s", s.Name(), s.Subject(), s.Phone(), s.Email(), s.Address())
	if tags := s.Tags(); len(tags) > 0 {
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = "#" + t.String()
		}
		fmt.Fprintf(&b, " %s", strings.Join(names, " "))
	}
	for _, a := range s.Assignments() {
		mark := " "
		if a.IsCompleted() {
			mark = "x"
		}
		fmt.Fprintf(&b, "\n       [%s] %s", mark, a.Name())
		if due, ok := a.DueDate(); ok {
			fmt.Fprintf(&b, " (due %s)", due)
		}
	}
	return b.String()
}

func formatLesson(l lesson.Lesson) string {
	return fmt.Sprintf("%s %s  %s  %s", l.Date(), l.Time(), l.StudentName(), l.Subject())
}

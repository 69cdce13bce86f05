package query

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// ═══════════════════════════════════════════════════════════════════════════════
// EXPRESSION FILTERS
// User-written boolean expressions, compiled once and evaluated per entity.
// ═══════════════════════════════════════════════════════════════════════════════

// StudentExpressionHelp lists the variables a student expression can use.
const StudentExpressionHelp = "Variables: name, phone, email, address, subject (strings), " +
	"tags, assignments (lists of strings), pending (number of unfinished assignments). " +
	`Example: subject contains "Math" and pending > 0`

// LessonExpressionHelp lists the variables a lesson expression can use.
const LessonExpressionHelp = "Variables: student, subject, time (HH:mm), date (yyyy-MM-dd, compares in order). " +
	`Example: date >= "2024-03-01" and time < "12:00"`

// StudentExpression compiles src into a student predicate. Unknown variables and
// non-boolean results are rejected at compile time. An evaluation error drops
// the student from the view.
func StudentExpression(src string) (model.StudentPredicate, error) {
	program, err := compile(src, studentEnv(nil))
	if err != nil {
		return nil, err
	}
	return func(s *student.Student) bool {
		return evaluate(program, studentEnv(s))
	}, nil
}

// LessonExpression compiles src into a lesson predicate.
func LessonExpression(src string) (model.LessonPredicate, error) {
	program, err := compile(src, lessonEnv(lesson.Lesson{}))
	if err != nil {
		return nil, err
	}
	return func(l lesson.Lesson) bool {
		return evaluate(program, lessonEnv(l))
	}, nil
}

func compile(src string, env map[string]interface{}) (*vm.Program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, shared.NewValidationError("expression", "Filter expression must not be blank")
	}
	program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, shared.WrapError("expression", "Compile", shared.ErrValidation,
			fmt.Sprintf("Invalid filter expression: %v", err), err)
	}
	return program, nil
}

func evaluate(program *vm.Program, env map[string]interface{}) bool {
	out, err := expr.Run(program, env)
	if err != nil {
		slog.Debug("filter expression failed", "error", err)
		return false
	}
	keep, ok := out.(bool)
	return ok && keep
}

// studentEnv exposes s to expressions. A nil s yields a typed zero environment
// for compile-time checks.
func studentEnv(s *student.Student) map[string]interface{} {
	env := map[string]interface{}{
		"name":        "",
		"phone":       "",
		"email":       "",
		"address":     "",
		"subject":     "",
		"tags":        []string{},
		"assignments": []string{},
		"pending":     0,
	}
	if s == nil {
		return env
	}
	tags := make([]string, 0, len(s.Tags()))
	for _, t := range s.Tags() {
		tags = append(tags, t.String())
	}
	assignments := make([]string, 0, len(s.Assignments()))
	for _, a := range s.Assignments() {
		assignments = append(assignments, a.Name().String())
	}
	env["name"] = s.Name().String()
	env["phone"] = s.Phone().String()
	env["email"] = s.Email().String()
	env["address"] = s.Address().String()
	env["subject"] = s.Subject().String()
	env["tags"] = tags
	env["assignments"] = assignments
	env["pending"] = s.PendingAssignments()
	return env
}

func lessonEnv(l lesson.Lesson) map[string]interface{} {
	date := ""
	if !l.Date().IsZero() {
		date = l.Date().Time().Format("2006-01-02")
	}
	return map[string]interface{}{
		"student": l.StudentName().String(),
		"subject": l.Subject().String(),
		"time":    l.Time().String(),
		"date":    date,
	}
}

// Package query provides the predicates the display filters are built from.
// Every predicate is pure: it only reads the entity it is given.
package query

import (
	"strings"

	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// ═══════════════════════════════════════════════════════════════════════════════
// STUDENT PREDICATES
// ═══════════════════════════════════════════════════════════════════════════════

// NameContainsKeywords keeps students whose name contains any of the keywords as a
// whole word, ignoring case.
func NameContainsKeywords(keywords []string) model.StudentPredicate {
	wanted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			wanted = append(wanted, k)
		}
	}
	return func(s *student.Student) bool {
		for _, word := range strings.Fields(s.Name().String()) {
			for _, k := range wanted {
				if strings.EqualFold(word, k) {
					return true
				}
			}
		}
		return false
	}
}

// SubjectContains keeps students whose subject contains keyword, ignoring case.
func SubjectContains(keyword string) model.StudentPredicate {
	k := strings.ToLower(strings.TrimSpace(keyword))
	return func(s *student.Student) bool {
		return strings.Contains(strings.ToLower(s.Subject().String()), k)
	}
}

// HasTag keeps students carrying tag.
func HasTag(tag shared.Tag) model.StudentPredicate {
	return func(s *student.Student) bool {
		for _, t := range s.Tags() {
			if t == tag {
				return true
			}
		}
		return false
	}
}

// AndStudents keeps students every predicate keeps.
func AndStudents(predicates ...model.StudentPredicate) model.StudentPredicate {
	return func(s *student.Student) bool {
		for _, p := range predicates {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// OrStudents keeps students at least one predicate keeps.
func OrStudents(predicates ...model.StudentPredicate) model.StudentPredicate {
	return func(s *student.Student) bool {
		for _, p := range predicates {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// NotStudent inverts p.
func NotStudent(p model.StudentPredicate) model.StudentPredicate {
	return func(s *student.Student) bool { return !p(s) }
}

// ═══════════════════════════════════════════════════════════════════════════════
// LESSON PREDICATES
// ═══════════════════════════════════════════════════════════════════════════════

// LessonsOfStudent keeps the lessons booked with the named student.
func LessonsOfStudent(name shared.Name) model.LessonPredicate {
	return func(l lesson.Lesson) bool { return l.StudentName() == name }
}

// LessonsOnDate keeps the lessons held on date.
func LessonsOnDate(date shared.Date) model.LessonPredicate {
	return func(l lesson.Lesson) bool { return l.Date() == date }
}

// AndLessons keeps lessons every predicate keeps.
func AndLessons(predicates ...model.LessonPredicate) model.LessonPredicate {
	return func(l lesson.Lesson) bool {
		for _, p := range predicates {
			if !p(l) {
				return false
			}
		}
		return true
	}
}

// OrLessons keeps lessons at least one predicate keeps.
func OrLessons(predicates ...model.LessonPredicate) model.LessonPredicate {
	return func(l lesson.Lesson) bool {
		for _, p := range predicates {
			if p(l) {
				return true
			}
		}
		return false
	}
}

// NotLesson inverts p.
func NotLesson(p model.LessonPredicate) model.LessonPredicate {
	return func(l lesson.Lesson) bool { return !p(l) }
}

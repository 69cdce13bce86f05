// Package addressbook contains the aggregate root of the tutor's records: the
// students, their lessons and, inside each student, their assignments.
//
// AddressBook is the unit of consistency. It is the only place that mutates the
// collections, and every mutation checks uniqueness and referential integrity
// before changing anything: an operation either applies fully or returns an error
// with the previous state intact.
package addressbook

import (
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// ReadOnly is a read-only snapshot of an address book. Persistence serializes it
// and the display layer reads from it.
type ReadOnly interface {
	Students() View[*student.Student]
	Lessons() View[lesson.Lesson]
}

// Snapshot is an immutable ReadOnly value.
type Snapshot struct {
	students View[*student.Student]
	lessons  View[lesson.Lesson]
}

// NewSnapshot builds a snapshot from loose parts. It performs no validation; pass it
// to FromSnapshot to obtain a checked AddressBook.
func NewSnapshot(students []*student.Student, lessons []lesson.Lesson) Snapshot {
	return Snapshot{students: ViewOf(students...), lessons: ViewOf(lessons...)}
}

// Students implements ReadOnly.
func (s Snapshot) Students() View[*student.Student] { return s.students }

// Lessons implements ReadOnly.
func (s Snapshot) Lessons() View[lesson.Lesson] { return s.lessons }

// ══════════════════════════════════════════════════════════════════════════════
// AGGREGATE ROOT
// ══════════════════════════════════════════════════════════════════════════════

// AddressBook composes the unique student and lesson collections.
//
// Students collide by name (IsSameStudent). Lessons collide only when every field
// matches (Lesson.Equal). A lesson may only reference a student that currently
// exists. Removing a student removes its lessons; renaming a student renames the
// reference in its lessons. Both cascades happen in the same step as the student
// change.
type AddressBook struct {
	students *UniqueList[*student.Student]
	lessons  *UniqueList[lesson.Lesson]
	version  uint64
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{
		students: NewUniqueList(sameStudent, shared.ErrStudentAbsent, shared.ErrDuplicateStudent),
		lessons:  NewUniqueList(sameLesson, shared.ErrLessonAbsent, shared.ErrDuplicateLesson),
	}
}

func sameStudent(a, b *student.Student) bool { return a.IsSameStudent(b) }

func sameLesson(a, b lesson.Lesson) bool { return a.Equal(b) }

// FromSnapshot reconstructs an address book from src, re-running every check.
func FromSnapshot(src ReadOnly) (*AddressBook, error) {
	b := New()
	if err := b.ResetData(src); err != nil {
		return nil, err
	}
	b.version = 0
	return b, nil
}

// ResetData replaces all content with the content of src. The data is checked as
// a whole first; on failure the book is unchanged.
func (b *AddressBook) ResetData(src ReadOnly) error {
	students := src.Students().Slice()
	lessons := src.Lessons().Slice()

	for _, s := range students {
		if s == nil {
			return shared.NewValidationError("addressbook", "Student entries must not be empty")
		}
	}
	if err := checkUnique(students, sameStudent, shared.ErrDuplicateStudent); err != nil {
		return err
	}
	if err := checkUnique(lessons, sameLesson, shared.ErrDuplicateLesson); err != nil {
		return err
	}
	names := make(map[shared.Name]struct{}, len(students))
	for _, s := range students {
		names[s.Name()] = struct{}{}
	}
	for _, l := range lessons {
		if _, ok := names[l.StudentName()]; !ok {
			return shared.NewDomainError("addressbook", "ResetData", shared.ErrStudentNotFound,
				"Lesson references a student that does not exist: "+l.StudentName().String())
		}
	}

	// Both lists were checked above, so neither call can fail.
	_ = b.students.ReplaceAll(students)
	_ = b.lessons.ReplaceAll(lessons)
	b.version++
	return nil
}

// Version increases by one with every applied mutation.
func (b *AddressBook) Version() uint64 { return b.version }

// Students implements ReadOnly.
func (b *AddressBook) Students() View[*student.Student] { return b.students.View() }

// Lessons implements ReadOnly.
func (b *AddressBook) Lessons() View[lesson.Lesson] { return b.lessons.View() }

// Snapshot returns an immutable copy of the current content.
func (b *AddressBook) Snapshot() Snapshot {
	return Snapshot{students: b.students.View(), lessons: b.lessons.View()}
}

// ─────────────────────────────────────────────────────────────────────────────
// Students
// ─────────────────────────────────────────────────────────────────────────────

// HasStudent reports whether a student with the same name as s exists.
func (b *AddressBook) HasStudent(s *student.Student) bool {
	return s != nil && b.students.Contains(s)
}

// HasStudentNamed reports whether a student called name exists.
func (b *AddressBook) HasStudentNamed(name shared.Name) bool {
	_, ok := b.StudentNamed(name)
	return ok
}

// StudentNamed looks a student up by name.
func (b *AddressBook) StudentNamed(name shared.Name) (*student.Student, bool) {
	for _, s := range b.students.items {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// AddStudent adds s. Fails if a student with the same name exists.
func (b *AddressBook) AddStudent(s *student.Student) error {
	if s == nil {
		return shared.NewValidationError("student", "Student must not be empty")
	}
	if err := b.students.Add(s); err != nil {
		return err
	}
	b.version++
	return nil
}

// SetStudent replaces target with edited. If the name changes, every lesson of
// target is moved to the new name in the same step.
func (b *AddressBook) SetStudent(target, edited *student.Student) error {
	if target == nil || edited == nil {
		return shared.NewValidationError("student", "Student must not be empty")
	}
	if !b.students.Contains(target) {
		return shared.ErrStudentAbsent
	}

	renamed := target.Name() != edited.Name()
	if renamed && b.HasStudentNamed(edited.Name()) {
		return shared.ErrDuplicateStudent
	}
	var lessons []lesson.Lesson
	if renamed {
		lessons = b.lessons.View().Slice()
		for i, l := range lessons {
			if l.StudentName() == target.Name() {
				lessons[i] = l.WithStudentName(edited.Name())
			}
		}
		if err := checkUnique(lessons, sameLesson, shared.ErrDuplicateLesson); err != nil {
			return err
		}
	}

	if err := b.students.Set(target, edited); err != nil {
		return err
	}
	if renamed {
		_ = b.lessons.ReplaceAll(lessons)
	}
	b.version++
	return nil
}

// RemoveStudent removes s together with all of its lessons.
func (b *AddressBook) RemoveStudent(s *student.Student) error {
	if s == nil {
		return shared.ErrStudentAbsent
	}
	if err := b.students.Remove(s); err != nil {
		return err
	}
	kept := b.lessons.View().Filter(func(l lesson.Lesson) bool {
		return l.StudentName() != s.Name()
	})
	_ = b.lessons.ReplaceAll(kept.Slice())
	b.version++
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Lessons
// ─────────────────────────────────────────────────────────────────────────────

// HasLesson reports whether a lesson equal to l exists.
func (b *AddressBook) HasLesson(l lesson.Lesson) bool {
	return b.lessons.Contains(l)
}

// AddLesson adds l. Fails if an equal lesson exists or its student does not.
func (b *AddressBook) AddLesson(l lesson.Lesson) error {
	if b.lessons.Contains(l) {
		return shared.ErrDuplicateLesson
	}
	if !b.HasStudentNamed(l.StudentName()) {
		return shared.ErrLessonStudentAbsent
	}
	if err := b.lessons.Add(l); err != nil {
		return err
	}
	b.version++
	return nil
}

// RemoveLesson removes the lesson equal to l.
func (b *AddressBook) RemoveLesson(l lesson.Lesson) error {
	if err := b.lessons.Remove(l); err != nil {
		return err
	}
	b.version++
	return nil
}

// SetLesson replaces target with edited. The student edited refers to must exist.
func (b *AddressBook) SetLesson(target, edited lesson.Lesson) error {
	if !b.lessons.Contains(target) {
		return shared.ErrLessonAbsent
	}
	if !b.HasStudentNamed(edited.StudentName()) {
		return shared.ErrLessonStudentAbsent
	}
	if err := b.lessons.Set(target, edited); err != nil {
		return err
	}
	b.version++
	return nil
}

// LessonsOf returns the lessons booked with the named student.
func (b *AddressBook) LessonsOf(name shared.Name) []lesson.Lesson {
	return b.lessons.View().Filter(func(l lesson.Lesson) bool {
		return l.StudentName() == name
	}).Slice()
}

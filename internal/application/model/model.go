// Package model is the facade commands operate on: the address book's mutation
// surface plus the filtered views the display layer shows.
package model

import (
	"sync"

	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/prefs"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// StudentPredicate selects students for the displayed list.
type StudentPredicate func(*student.Student) bool

// LessonPredicate selects lessons for the displayed list.
type LessonPredicate func(lesson.Lesson) bool

// ShowAllStudents keeps every student.
func ShowAllStudents(*student.Student) bool { return true }

// ShowAllLessons keeps every lesson.
func ShowAllLessons(lesson.Lesson) bool { return true }

// Model is the contract commands execute against.
type Model interface {
	// AddressBook returns a read-only snapshot of the full data.
	AddressBook() addressbook.ReadOnly

	// SetAddressBook replaces all data with src after checking it.
	SetAddressBook(src addressbook.ReadOnly) error

	// Version changes whenever the data changes.
	Version() uint64

	HasStudent(s *student.Student) bool
	HasStudentNamed(name shared.Name) bool
	StudentNamed(name shared.Name) (*student.Student, bool)
	AddStudent(s *student.Student) error
	SetStudent(target, edited *student.Student) error
	DeleteStudent(s *student.Student) error

	HasLesson(l lesson.Lesson) bool
	AddLesson(l lesson.Lesson) error
	SetLesson(target, edited lesson.Lesson) error
	DeleteLesson(l lesson.Lesson) error

	// FilteredStudents returns the students currently displayed.
	FilteredStudents() addressbook.View[*student.Student]

	// FilteredLessons returns the lessons currently displayed.
	FilteredLessons() addressbook.View[lesson.Lesson]

	// UpdateStudentFilter changes which students are displayed. A nil predicate
	// shows all of them.
	UpdateStudentFilter(p StudentPredicate)

	// UpdateLessonFilter changes which lessons are displayed. A nil predicate
	// shows all of them.
	UpdateLessonFilter(p LessonPredicate)

	UserPrefs() prefs.UserPrefs
	SetUserPrefs(p prefs.UserPrefs) error
}

// Manager implements Model over an AddressBook.
//
// Every method holds one mutex for its whole duration, so each check-then-mutate
// sequence of the address book runs as a unit even if callers are concurrent.
type Manager struct {
	mu            sync.Mutex
	book          *addressbook.AddressBook
	studentFilter StudentPredicate
	lessonFilter  LessonPredicate
	userPrefs     prefs.UserPrefs
}

// NewManager creates a Manager over book. A nil book starts empty.
func NewManager(book *addressbook.AddressBook, p prefs.UserPrefs) *Manager {
	if book == nil {
		book = addressbook.New()
	}
	return &Manager{
		book:          book,
		studentFilter: ShowAllStudents,
		lessonFilter:  ShowAllLessons,
		userPrefs:     p,
	}
}

// AddressBook implements Model.
func (m *Manager) AddressBook() addressbook.ReadOnly {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Snapshot()
}

// SetAddressBook implements Model.
func (m *Manager) SetAddressBook(src addressbook.ReadOnly) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.ResetData(src)
}

// Version implements Model.
func (m *Manager) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Version()
}

// ─────────────────────────────────────────────────────────────────────────────
// Students
// ─────────────────────────────────────────────────────────────────────────────

// HasStudent implements Model.
func (m *Manager) HasStudent(s *student.Student) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.HasStudent(s)
}

// HasStudentNamed implements Model.
func (m *Manager) HasStudentNamed(name shared.Name) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.HasStudentNamed(name)
}

// StudentNamed implements Model.
func (m *Manager) StudentNamed(name shared.Name) (*student.Student, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.StudentNamed(name)
}

// AddStudent implements Model. The displayed list is reset so the new student
// is visible.
func (m *Manager) AddStudent(s *student.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.book.AddStudent(s); err != nil {
		return err
	}
	m.studentFilter = ShowAllStudents
	return nil
}

// SetStudent implements Model.
func (m *Manager) SetStudent(target, edited *student.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.SetStudent(target, edited)
}

// DeleteStudent implements Model.
func (m *Manager) DeleteStudent(s *student.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.RemoveStudent(s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lessons
// ─────────────────────────────────────────────────────────────────────────────

// HasLesson implements Model.
func (m *Manager) HasLesson(l lesson.Lesson) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.HasLesson(l)
}

// AddLesson implements Model. The displayed lessons are reset so the new lesson
// is visible.
func (m *Manager) AddLesson(l lesson.Lesson) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.book.AddLesson(l); err != nil {
		return err
	}
	m.lessonFilter = ShowAllLessons
	return nil
}

// SetLesson implements Model.
func (m *Manager) SetLesson(target, edited lesson.Lesson) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.SetLesson(target, edited)
}

// DeleteLesson implements Model.
func (m *Manager) DeleteLesson(l lesson.Lesson) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.RemoveLesson(l)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtered views
// ─────────────────────────────────────────────────────────────────────────────

// FilteredStudents implements Model.
func (m *Manager) FilteredStudents() addressbook.View[*student.Student] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Students().Filter(m.studentFilter)
}

// FilteredLessons implements Model.
func (m *Manager) FilteredLessons() addressbook.View[lesson.Lesson] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Lessons().Filter(m.lessonFilter)
}

// UpdateStudentFilter implements Model.
func (m *Manager) UpdateStudentFilter(p StudentPredicate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p == nil {
		p = ShowAllStudents
	}
	m.studentFilter = p
}

// UpdateLessonFilter implements Model.
func (m *Manager) UpdateLessonFilter(p LessonPredicate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p == nil {
		p = ShowAllLessons
	}
	m.lessonFilter = p
}

// ─────────────────────────────────────────────────────────────────────────────
// Preferences
// ─────────────────────────────────────────────────────────────────────────────

// UserPrefs implements Model.
func (m *Manager) UserPrefs() prefs.UserPrefs {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userPrefs
}

// SetUserPrefs implements Model.
func (m *Manager) SetUserPrefs(p prefs.UserPrefs) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userPrefs = p
	return nil
}

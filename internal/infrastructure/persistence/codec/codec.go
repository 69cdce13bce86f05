// Package codec converts address books to and from the flat records shared by
// every storage backend. Decoding goes back through the value object
// constructors, so stored data is checked exactly like user input.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/tidwall/gjson"

	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// SchemaVersion is the version of the document layout written by this
// package. Documents with a different major version are refused.
var SchemaVersion = semver.MustParse("1.0.0")

// ══════════════════════════════════════════════════════════════════════════════
// RECORDS
// ══════════════════════════════════════════════════════════════════════════════

// Document is the stored shape of a whole address book.
type Document struct {
	SchemaVersion string          `json:"schemaVersion"`
	Students      []StudentRecord `json:"students"`
	Lessons       []LessonRecord  `json:"lessons"`
}

// StudentRecord is the stored shape of a student.
type StudentRecord struct {
	Name        string             `json:"name"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email"`
	Address     string             `json:"address"`
	Subject     string             `json:"subject"`
	Tags        []string           `json:"tags"`
	Assignments []AssignmentRecord `json:"assignments"`
}

// AssignmentRecord is the stored shape of an assignment. An empty DueDate
// means the assignment has none.
type AssignmentRecord struct {
	Name      string `json:"name"`
	DueDate   string `json:"dueDate,omitempty"`
	Completed bool   `json:"completed"`
}

// LessonRecord is the stored shape of a lesson.
type LessonRecord struct {
	StudentName string `json:"studentName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Subject     string `json:"subject"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Domain -> records
// ─────────────────────────────────────────────────────────────────────────────

// FromBook flattens src into a Document stamped with SchemaVersion.
func FromBook(src addressbook.ReadOnly) Document {
	out := Document{
		SchemaVersion: SchemaVersion.String(),
		Students:      make([]StudentRecord, 0, src.Students().Len()),
		Lessons:       make([]LessonRecord, 0, src.Lessons().Len()),
	}
	for _, s := range src.Students().All() {
		out.Students = append(out.Students, FromStudent(s))
	}
	for _, l := range src.Lessons().All() {
		out.Lessons = append(out.Lessons, FromLesson(l))
	}
	return out
}

// FromStudent flattens one student.
func FromStudent(s *student.Student) StudentRecord {
	rec := StudentRecord{
		Name:        s.Name().String(),
		Phone:       s.Phone().String(),
		Email:       s.Email().String(),
		Address:     s.Address().String(),
		Subject:     s.Subject().String(),
		Tags:        make([]string, 0),
		Assignments: make([]AssignmentRecord, 0),
	}
	for _, t := range s.Tags() {
		rec.Tags = append(rec.Tags, t.String())
	}
	for _, a := range s.Assignments() {
		ar := AssignmentRecord{Name: a.Name().String(), Completed: a.IsCompleted()}
		if due, ok := a.DueDate(); ok {
			ar.DueDate = due.String()
		}
		rec.Assignments = append(rec.Assignments, ar)
	}
	return rec
}

// FromLesson flattens one lesson.
func FromLesson(l lesson.Lesson) LessonRecord {
	return LessonRecord{
		StudentName: l.StudentName().String(),
		Date:        l.Date().String(),
		Time:        l.Time().String(),
		Subject:     l.Subject().String(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Records -> domain
// ─────────────────────────────────────────────────────────────────────────────

// ToAddressBook rebuilds an address book, validating every field and the
// uniqueness of students and lessons.
func (d Document) ToAddressBook() (*addressbook.AddressBook, error) {
	students := make([]*student.Student, 0, len(d.Students))
	for i, rec := range d.Students {
		s, err := rec.ToStudent()
		if err != nil {
			return nil, fmt.Errorf("student %d: %w", i+1, err)
		}
		students = append(students, s)
	}
	lessons := make([]lesson.Lesson, 0, len(d.Lessons))
	for i, rec := range d.Lessons {
		l, err := rec.ToLesson()
		if err != nil {
			return nil, fmt.Errorf("lesson %d: %w", i+1, err)
		}
		lessons = append(lessons, l)
	}
	return addressbook.FromSnapshot(addressbook.NewSnapshot(students, lessons))
}

// ToStudent rebuilds a student.
func (r StudentRecord) ToStudent() (*student.Student, error) {
	var (
		p   student.NewStudentParams
		err error
	)
	if p.Name, err = shared.NewName(r.Name); err != nil {
		return nil, err
	}
	if p.Phone, err = shared.NewPhone(r.Phone); err != nil {
		return nil, err
	}
	if p.Email, err = shared.NewEmail(r.Email); err != nil {
		return nil, err
	}
	if p.Address, err = shared.NewAddress(r.Address); err != nil {
		return nil, err
	}
	if p.Subject, err = shared.NewSubject(r.Subject); err != nil {
		return nil, err
	}
	for _, raw := range r.Tags {
		t, err := shared.NewTag(raw)
		if err != nil {
			return nil, err
		}
		p.Tags = append(p.Tags, t)
	}
	for _, ar := range r.Assignments {
		a, err := ar.ToAssignment()
		if err != nil {
			return nil, err
		}
		p.Assignments = append(p.Assignments, a)
	}
	return student.NewStudent(p)
}

// ToAssignment rebuilds an assignment.
func (r AssignmentRecord) ToAssignment() (student.Assignment, error) {
	name, err := shared.NewAssignmentName(r.Name)
	if err != nil {
		return student.Assignment{}, err
	}
	a, err := student.NewAssignment(name)
	if err != nil {
		return student.Assignment{}, err
	}
	if r.DueDate != "" {
		due, err := shared.NewDate(r.DueDate)
		if err != nil {
			return student.Assignment{}, err
		}
		a = a.WithDueDate(due)
	}
	return a.WithCompleted(r.Completed), nil
}

// ToLesson rebuilds a lesson.
func (r LessonRecord) ToLesson() (lesson.Lesson, error) {
	var (
		p   lesson.NewLessonParams
		err error
	)
	if p.StudentName, err = shared.NewName(r.StudentName); err != nil {
		return lesson.Lesson{}, err
	}
	if p.Date, err = shared.NewDate(r.Date); err != nil {
		return lesson.Lesson{}, err
	}
	if p.Time, err = shared.NewTime(r.Time); err != nil {
		return lesson.Lesson{}, err
	}
	if p.Subject, err = shared.NewSubject(r.Subject); err != nil {
		return lesson.Lesson{}, err
	}
	return lesson.NewLesson(p)
}

// ══════════════════════════════════════════════════════════════════════════════
// JSON ENCODING
// ══════════════════════════════════════════════════════════════════════════════

// Marshal encodes src as indented JSON followed by a newline.
func Marshal(src addressbook.ReadOnly) ([]byte, error) {
	data, err := json.MarshalIndent(FromBook(src), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Unmarshal decodes and validates a JSON document. Errors describe what is
// wrong with the document in terms a user can act on.
func Unmarshal(data []byte) (*addressbook.AddressBook, error) {
	if err := Probe(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, shared.WrapError("codec", "Unmarshal", shared.ErrValidation,
			"Data is not in the correct format", err)
	}
	book, err := doc.ToAddressBook()
	if err != nil {
		return nil, shared.WrapError("codec", "Unmarshal", shared.ErrValidation,
			"Data contains invalid entries: "+shared.UserMessage(err), err)
	}
	return book, nil
}

// Probe checks a raw document before it is decoded: well-formed JSON, a
// supported schema version and list-shaped collections.
func Probe(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 || !gjson.ValidBytes(data) {
		return invalid("Data is not valid JSON")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return invalid("Data is not in the correct format")
	}

	fields := gjson.GetManyBytes(data, "schemaVersion", "students", "lessons")
	if fields[0].Exists() {
		v, err := semver.ParseTolerant(fields[0].String())
		if err != nil {
			return invalid("Data has an invalid schema version")
		}
		if v.Major != SchemaVersion.Major {
			return invalid(fmt.Sprintf("Data schema %s is not supported (expected %d.x)", v, SchemaVersion.Major))
		}
	}
	for i, name := range []string{"students", "lessons"} {
		if fields[i+1].Exists() && !fields[i+1].IsArray() {
			return invalid(fmt.Sprintf("Data field %q must be a list", name))
		}
	}
	return nil
}

func invalid(message string) error {
	return shared.NewDomainError("codec", "Probe", shared.ErrValidation, message)
}

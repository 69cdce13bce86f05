// Package student contains the student aggregate of the tutor's address book.
// This is the core of the business logic - no external dependencies here.
package student

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student is a person the tutor teaches. A Student never changes after
// construction: every edit builds a new Student, which then replaces the old one
// in the address book.
type Student struct {
	// Identity fields.
	name    shared.Name
	phone   shared.Phone
	email   shared.Email
	subject shared.Subject

	// Data fields.
	address     shared.Address
	tags        []shared.Tag
	assignments []Assignment
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewStudentParams contains the parameters for creating a student.
type NewStudentParams struct {
	Name        shared.Name
	Phone       shared.Phone
	Email       shared.Email
	Address     shared.Address
	Subject     shared.Subject
	Tags        []shared.Tag
	Assignments []Assignment
}

// NewStudent creates a student, checking that every field is present.
// Duplicate tags collapse into one; duplicate assignment names are rejected.
func NewStudent(params NewStudentParams) (*Student, error) {
	switch {
	case params.Name.IsZero():
		return nil, shared.NewValidationError("student", "Name is required")
	case params.Phone.IsZero():
		return nil, shared.NewValidationError("student", "Phone is required")
	case params.Email.IsZero():
		return nil, shared.NewValidationError("student", "Email is required")
	case params.Address.IsZero():
		return nil, shared.NewValidationError("student", "Address is required")
	case params.Subject.IsZero():
		return nil, shared.NewValidationError("student", "Subject is required")
	}

	assignments := make([]Assignment, 0, len(params.Assignments))
	for _, a := range params.Assignments {
		if a.Name().IsZero() {
			return nil, shared.NewValidationError("assignment", shared.AssignmentNameConstraints)
		}
		for _, existing := range assignments {
			if existing.IsSameAssignment(a) {
				return nil, shared.ErrDuplicateAssignment
			}
		}
		assignments = append(assignments, a)
	}

	return &Student{
		name:        params.Name,
		phone:       params.Phone,
		email:       params.Email,
		address:     params.Address,
		subject:     params.Subject,
		tags:        tagSet(params.Tags),
		assignments: assignments,
	}, nil
}

// tagSet removes duplicates and sorts tags so equal sets compare equal.
func tagSet(tags []shared.Tag) []shared.Tag {
	seen := make(map[shared.Tag]struct{}, len(tags))
	out := make([]shared.Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Params returns a copy of the student's fields, ready to be modified and passed
// back to NewStudent.
func (s *Student) Params() NewStudentParams {
	return NewStudentParams{
		Name:        s.name,
		Phone:       s.phone,
		Email:       s.email,
		Address:     s.address,
		Subject:     s.subject,
		Tags:        s.Tags(),
		Assignments: s.Assignments(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ══════════════════════════════════════════════════════════════════════════════

// Name returns the student's name.
func (s *Student) Name() shared.Name { return s.name }

// Phone returns the student's phone number.
func (s *Student) Phone() shared.Phone { return s.phone }

// Email returns the student's email.
func (s *Student) Email() shared.Email { return s.email }

// Address returns the student's address.
func (s *Student) Address() shared.Address { return s.address }

// Subject returns the subject the student takes.
func (s *Student) Subject() shared.Subject { return s.subject }

// Tags returns a copy of the student's tags, sorted.
func (s *Student) Tags() []shared.Tag {
	out := make([]shared.Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Assignments returns a copy of the student's assignments in insertion order.
func (s *Student) Assignments() []Assignment {
	out := make([]Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// Assignment looks up an assignment by name.
func (s *Student) Assignment(name shared.AssignmentName) (Assignment, bool) {
	for _, a := range s.assignments {
		if a.Name() == name {
			return a, true
		}
	}
	return Assignment{}, false
}

// PendingAssignments counts assignments not yet completed.
func (s *Student) PendingAssignments() int {
	n := 0
	for _, a := range s.assignments {
		if !a.IsCompleted() {
			n++
		}
	}
	return n
}

// ══════════════════════════════════════════════════════════════════════════════
// COPY-ON-WRITE EDITS
// ══════════════════════════════════════════════════════════════════════════════

// WithAssignment returns a new student owning a as well.
func (s *Student) WithAssignment(a Assignment) (*Student, error) {
	if _, exists := s.Assignment(a.Name()); exists {
		return nil, shared.ErrDuplicateAssignment
	}
	p := s.Params()
	p.Assignments = append(p.Assignments, a)
	return NewStudent(p)
}

// WithoutAssignment returns a new student without the named assignment.
func (s *Student) WithoutAssignment(name shared.AssignmentName) (*Student, error) {
	p := s.Params()
	kept := p.Assignments[:0]
	for _, a := range p.Assignments {
		if a.Name() != name {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(s.assignments) {
		return nil, shared.ErrAssignmentAbsent
	}
	p.Assignments = kept
	return NewStudent(p)
}

// ReplaceAssignment returns a new student where the named assignment is replaced by
// replacement, keeping its position. Renaming onto another existing assignment fails.
func (s *Student) ReplaceAssignment(name shared.AssignmentName, replacement Assignment) (*Student, error) {
	p := s.Params()
	target := -1
	for i, a := range p.Assignments {
		if a.Name() == name {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, shared.ErrAssignmentAbsent
	}
	for i, a := range p.Assignments {
		if i != target && a.IsSameAssignment(replacement) {
			return nil, shared.ErrDuplicateAssignment
		}
	}
	p.Assignments[target] = replacement
	return NewStudent(p)
}

// ══════════════════════════════════════════════════════════════════════════════
// EQUALITY
// ══════════════════════════════════════════════════════════════════════════════

// IsSameStudent is the weak identity used for lookup and duplicate detection:
// both students have the same name.
func (s *Student) IsSameStudent(other *Student) bool {
	if s == other {
		return true
	}
	return s != nil && other != nil && s.name == other.name
}

// Equal is the strong notion of equality: name, phone, email and subject match.
func (s *Student) Equal(other *Student) bool {
	if s == other {
		return true
	}
	return s != nil && other != nil &&
		s.name == other.name &&
		s.phone == other.phone &&
		s.email == other.email &&
		s.subject == other.subject
}

// String renders the student for logs and messages.
func (s *Student) String() string {
	tags := make([]string, len(s.tags))
	for i, t := range s.tags {
		tags[i] = t.String()
	}
	assignments := make([]string, len(s.assignments))
	for i, a := range s.assignments {
		assignments[i] = a.String()
	}
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; Subject: %s; Tags: [%s]; Assignments: [%s]",
		s.name, s.phone, s.email, s.address, s.subject,
		strings.Join(tags, ", "), strings.Join(assignments, ", "))
}

// Package student contains the student aggregate of the tutor's address book.
//
// The package defines:
//
//   - Student: an immutable record of a person the tutor teaches
//   - Assignment: a piece of work owned by exactly one student
//
// # Architectural principles
//
//  1. Zero external dependencies - only the standard library and domain/shared
//  2. Immutability - a Student never changes; edits build a replacement
//  3. Two notions of equality, always named at the call site
//
// # Identity
//
// IsSameStudent compares names only. It is the weak identity used for lookup and
// duplicate detection in the address book. Equal compares name, phone, email and
// subject and is used where full value comparison is required.
//
// # Copy-on-write
//
// Adding an assignment:
//
//	updated, err := s.WithAssignment(a)
//	if err != nil {
//	    return err
//	}
//	err = book.SetStudent(s, updated)
//
// Editing any other field goes through Params:
//
//	p := s.Params()
//	p.Phone = newPhone
//	updated, err := NewStudent(p)
package student

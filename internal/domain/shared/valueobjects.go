// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Value objects wrap their primitive in an unexported field: the only way to get a
// non-zero value is through the validating constructor.

// collapseSpaces trims s and folds every run of whitespace into a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ═══════════════════════════════════════════════════════════════════════════
// Name Value Object
// ═══════════════════════════════════════════════════════════════════════════

// NameConstraints describes a valid Name.
const NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

const maxNameLength = 100

var nameRegex = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Name is a student's full name. It is the weak identity key of a student and is
// compared case-sensitively.
type Name struct {
	value string
}

// NewName creates a new Name with validation.
func NewName(raw string) (Name, error) {
	v := collapseSpaces(raw)
	if len(v) > maxNameLength || !nameRegex.MatchString(v) {
		return Name{}, NewValidationError("name", NameConstraints)
	}
	return Name{value: v}, nil
}

// String returns the string representation.
func (n Name) String() string { return n.value }

// IsZero reports whether n was never constructed.
func (n Name) IsZero() bool { return n.value == "" }

// ═══════════════════════════════════════════════════════════════════════════
// Phone Value Object
// ═══════════════════════════════════════════════════════════════════════════

// PhoneConstraints describes a valid Phone.
const PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

var phoneRegex = regexp.MustCompile(`^\d{3,}$`)

// Phone is a contact phone number.
type Phone struct {
	value string
}

// NewPhone creates a new Phone with validation.
func NewPhone(raw string) (Phone, error) {
	v := strings.TrimSpace(raw)
	if !phoneRegex.MatchString(v) {
		return Phone{}, NewValidationError("phone", PhoneConstraints)
	}
	return Phone{value: v}, nil
}

// String returns the string representation.
func (p Phone) String() string { return p.value }

// IsZero reports whether p was never constructed.
func (p Phone) IsZero() bool { return p.value == "" }

// ═══════════════════════════════════════════════════════════════════════════
// Email Value Object
// ═══════════════════════════════════════════════════════════════════════════

// EmailConstraints describes a valid Email.
const EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, excluding the parentheses, (+_.-). " +
	"The local-part may not start or end with any special characters.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels separated by periods.\n" +
	"The domain name must:\n" +
	"    - end with a domain label at least 2 characters long\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

var emailRegex = regexp.MustCompile(
	`^[a-z0-9]+([+_.-][a-z0-9]+)*@[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)*$`)

// Email is a contact email address, stored lower-cased.
type Email struct {
	value string
}

// NewEmail creates a new Email with validation.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if !emailRegex.MatchString(v) {
		return Email{}, NewValidationError("email", EmailConstraints)
	}
	labels := strings.Split(v[strings.LastIndex(v, "@")+1:], ".")
	if len(labels[len(labels)-1]) < 2 {
		return Email{}, NewValidationError("email", EmailConstraints)
	}
	return Email{value: v}, nil
}

// String returns the string representation.
func (e Email) String() string { return e.value }

// IsZero reports whether e was never constructed.
func (e Email) IsZero() bool { return e.value == "" }

// ═══════════════════════════════════════════════════════════════════════════
// Address Value Object
// ═══════════════════════════════════════════════════════════════════════════

// AddressConstraints describes a valid Address.
const AddressConstraints = "Addresses can take any values, and it should not be blank"

// Address is free text. It is not normalized.
type Address struct {
	value string
}

// NewAddress creates a new Address with validation.
func NewAddress(raw string) (Address, error) {
	if strings.TrimSpace(raw) == "" || strings.TrimLeft(raw, " \t\r\n") != raw {
		return Address{}, NewValidationError("address", AddressConstraints)
	}
	return Address{value: raw}, nil
}

// String returns the string representation.
func (a Address) String() string { return a.value }

// IsZero reports whether a was never constructed.
func (a Address) IsZero() bool { return a.value == "" }

// ═══════════════════════════════════════════════════════════════════════════
// Subject Value Object
// ═══════════════════════════════════════════════════════════════════════════

// SubjectConstraints describes a valid Subject.
const SubjectConstraints = "Subjects should start with an alphanumeric character, may contain spaces and . - + &, " +
	"and should be at most 50 characters long"

const maxSubjectLength = 50

var subjectRegex = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} .+&-]*$`)

// Subject is the subject a student takes or a lesson covers, e.g. "CS2103T".
type Subject struct {
	value string
}

// NewSubject creates a new Subject with validation.
func NewSubject(raw string) (Subject, error) {
	v := collapseSpaces(raw)
	if len(v) > maxSubjectLength || !subjectRegex.MatchString(v) {
		return Subject{}, NewValidationError("subject", SubjectConstraints)
	}
	return Subject{value: v}, nil
}

// String returns the string representation.
func (s Subject) String() string { return s.value }

// IsZero reports whether s was never constructed.
func (s Subject) IsZero() bool { return s.value == "" }

// ═══════════════════════════════════════════════════════════════════════════
// Tag Value Object
// ═══════════════════════════════════════════════════════════════════════════

// TagConstraints describes a valid Tag.
const TagConstraints = "Tags names should be alphanumeric"

var tagRegex = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

// Tag is a single-word label attached to a student.
type Tag struct {
	value string
}

// NewTag creates a new Tag with validation.
func NewTag(raw string) (Tag, error) {
	v := strings.TrimSpace(raw)
	if !tagRegex.MatchString(v) {
		return Tag{}, NewValidationError("tag", TagConstraints)
	}
	return Tag{value: v}, nil
}

// String returns the string representation.
func (t Tag) String() string { return t.value }

// ═══════════════════════════════════════════════════════════════════════════
// AssignmentName Value Object
// ═══════════════════════════════════════════════════════════════════════════

// AssignmentNameConstraints describes a valid AssignmentName.
const AssignmentNameConstraints = "Assignment names should not be blank and should be at most 100 characters long"

const maxAssignmentNameLength = 100

// AssignmentName names an assignment. It is unique within one student only.
type AssignmentName struct {
	value string
}

// NewAssignmentName creates a new AssignmentName with validation.
func NewAssignmentName(raw string) (AssignmentName, error) {
	v := collapseSpaces(raw)
	if v == "" || len(v) > maxAssignmentNameLength {
		return AssignmentName{}, NewValidationError("assignment", AssignmentNameConstraints)
	}
	return AssignmentName{value: v}, nil
}

// String returns the string representation.
func (a AssignmentName) String() string { return a.value }

// IsZero reports whether a was never constructed.
func (a AssignmentName) IsZero() bool { return a.value == "" }

// ═══════════════════════════════════════════════════════════════════════════
// Date Value Object
// ═══════════════════════════════════════════════════════════════════════════

// DateConstraints describes a valid Date.
const DateConstraints = "Dates should be a valid calendar date in the format dd-MM-yyyy (or yyyy-MM-dd)"

// Canonical and accepted input layouts.
const (
	DateLayout    = "02-01-2006"
	isoDateLayout = "2006-01-02"
)

// Date is a calendar day without a time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate parses raw in dd-MM-yyyy or yyyy-MM-dd form.
func NewDate(raw string) (Date, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range []string{DateLayout, isoDateLayout} {
		if t, err := time.Parse(layout, v); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, NewValidationError("date", DateConstraints)
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// String returns the dd-MM-yyyy representation.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// IsZero reports whether d was never constructed.
func (d Date) IsZero() bool { return d == Date{} }

// ═══════════════════════════════════════════════════════════════════════════
// Time Value Object
// ═══════════════════════════════════════════════════════════════════════════

// TimeConstraints describes a valid Time.
const TimeConstraints = "Times should be in the 24-hour format HH:mm"

// TimeLayout is the canonical Time layout.
const TimeLayout = "15:04"

var timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Time is a wall-clock time of day with minute precision.
type Time struct {
	set    bool
	hour   int
	minute int
}

// NewTime parses raw in HH:mm form.
func NewTime(raw string) (Time, error) {
	v := strings.TrimSpace(raw)
	if !timeRegex.MatchString(v) {
		return Time{}, NewValidationError("time", TimeConstraints)
	}
	t, err := time.Parse(TimeLayout, v)
	if err != nil {
		return Time{}, NewValidationError("time", TimeConstraints)
	}
	return Time{set: true, hour: t.Hour(), minute: t.Minute()}, nil
}

// Hour returns the hour (0-23).
func (t Time) Hour() int { return t.hour }

// Minute returns the minute (0-59).
func (t Time) Minute() int { return t.minute }

// Before reports whether t is strictly earlier in the day than other.
func (t Time) Before(other Time) bool {
	return t.hour*60+t.minute < other.hour*60+other.minute
}

// String returns the HH:mm representation.
func (t Time) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// IsZero reports whether t was never constructed.
func (t Time) IsZero() bool { return !t.set }

// ═══════════════════════════════════════════════════════════════════════════
// Index Value Object
// ═══════════════════════════════════════════════════════════════════════════

// IndexConstraints describes a valid Index.
const IndexConstraints = "Index is not a non-zero unsigned integer."

// Index is a position in a displayed list. Users see it one-based.
type Index struct {
	zeroBased int
}

// NewIndex creates an Index from a one-based position.
func NewIndex(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, NewValidationError("index", IndexConstraints)
	}
	return Index{zeroBased: oneBased - 1}, nil
}

// ParseIndex parses a one-based position.
func ParseIndex(raw string) (Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Index{}, NewValidationError("index", IndexConstraints)
	}
	return NewIndex(n)
}

// ZeroBased returns the position for slice access.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the position as shown to the user.
func (i Index) OneBased() int { return i.zeroBased + 1 }

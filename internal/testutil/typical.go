package testutil

import (
	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/student"
)

// TypicalStudents returns fresh copies of the students used across tests, in
// list order.
func TypicalStudents() []*student.Student {
	return []*student.Student{
		NewStudentBuilder().WithName("Alice Pauline").WithPhone("94351253").
			WithEmail("alice@example.com").WithAddress("123, Jurong West Ave 6, #08-111").
			WithSubject("Physics").WithTags("friends").
			WithAssignments(Assignment("Physics Worksheet")).Build(),
		NewStudentBuilder().WithName("Benson Meier").WithPhone("98765432").
			WithEmail("johnd@example.com").WithAddress("311, Clementi Ave 2, #02-25").
			WithSubject("Chemistry").WithTags("owesMoney", "friends").Build(),
		NewStudentBuilder().WithName("Carl Kurz").WithPhone("95352563").
			WithEmail("heinz@example.com").WithAddress("wall street").
			WithSubject("Mathematics").Build(),
		NewStudentBuilder().WithName("Daniel Meier").WithPhone("87652533").
			WithEmail("cornelia@example.com").WithAddress("10th street").
			WithSubject("Biology").WithTags("friends").Build(),
		NewStudentBuilder().WithName("Elle Meyer").WithPhone("9482224").
			WithEmail("werner@example.com").WithAddress("michegan ave").
			WithSubject("English").Build(),
		NewStudentBuilder().WithName("Fiona Kunz").WithPhone("9482427").
			WithEmail("lydia@example.com").WithAddress("little tokyo").
			WithSubject("Physics").Build(),
		NewStudentBuilder().WithName("George Best").WithPhone("9482442").
			WithEmail("anna@example.com").WithAddress("4th street").
			WithSubject("Chemistry").Build(),
	}
}

// TypicalLessons returns the lessons booked with TypicalStudents.
func TypicalLessons() []lesson.Lesson {
	return []lesson.Lesson{
		NewLessonBuilder().WithStudent("Alice Pauline").WithDate("10-03-2025").
			WithTime("10:00").WithSubject("Physics").Build(),
		NewLessonBuilder().WithStudent("Benson Meier").WithDate("11-03-2025").
			WithTime("15:30").WithSubject("Chemistry").Build(),
		NewLessonBuilder().WithStudent("Alice Pauline").WithDate("12-03-2025").
			WithTime("09:00").WithSubject("Physics").Build(),
	}
}

// TypicalAddressBook returns an address book holding TypicalStudents and
// TypicalLessons.
func TypicalAddressBook() *addressbook.AddressBook {
	return must(addressbook.FromSnapshot(addressbook.NewSnapshot(TypicalStudents(), TypicalLessons())))
}

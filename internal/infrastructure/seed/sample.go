// Package seed provides the address book shown on first launch.
package seed

import (
	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/infrastructure/persistence/codec"
)

// sampleDocument lists the sample data as stored records, so it is built
// through the same checks as data read from disk.
var sampleDocument = codec.Document{
	Students: []codec.StudentRecord{
		{
			Name: "Alex Yeoh", Phone: "87438807", Email: "alexyeoh@example.com",
			Address: "Blk 30 Geylang Street 29, #06-40", Subject: "CS2103T",
			Tags:        []string{"friends"},
			Assignments: []codec.AssignmentRecord{{Name: "Physics Homework 1"}},
		},
		{
			Name: "Bernice Yu", Phone: "99272758", Email: "berniceyu@example.com",
			Address: "Blk 30 Lorong 3 Serangoon Gardens, #07-18", Subject: "CS2100",
			Tags:        []string{"colleagues", "friends"},
			Assignments: []codec.AssignmentRecord{{Name: "Chinese Essay"}},
		},
		{
			Name: "Charlotte Oliveiro", Phone: "93210283", Email: "charlotte@example.com",
			Address: "Blk 11 Ang Mo Kio Street 74, #11-04", Subject: "Additional Maths",
			Tags:        []string{"neighbours"},
			Assignments: []codec.AssignmentRecord{{Name: "Math Exercise 1"}},
		},
		{
			Name: "David Li", Phone: "91031282", Email: "lidavid@example.com",
			Address: "Blk 436 Serangoon Gardens Street 26, #16-43", Subject: "Chemistry",
			Tags:        []string{"family"},
			Assignments: []codec.AssignmentRecord{{Name: "Chemistry Exercise Book Page 11"}},
		},
		{
			Name: "Irfan Ibrahim", Phone: "92492021", Email: "irfan@example.com",
			Address: "Blk 47 Tampines Street 20, #17-35", Subject: "Sec 1 Physics",
			Tags:        []string{"classmates"},
			Assignments: []codec.AssignmentRecord{{Name: "English Essay"}},
		},
		{
			Name: "Roy Balakrishnan", Phone: "92624417", Email: "royb@example.com",
			Address: "Blk 45 Aljunied Street 85, #11-31", Subject: "CS2103T",
			Tags:        []string{"colleagues"},
			Assignments: []codec.AssignmentRecord{{Name: "Math Exercise 1"}},
		},
		{
			Name: "Zoy White", Phone: "94351253", Email: "zoyw@gnail.com",
			Address: "Blk 45 Aljunied Street 85, #11-31", Subject: "H2 Computing",
			Tags:        []string{"colleagues"},
			Assignments: []codec.AssignmentRecord{{Name: "Math Exercise 1"}},
		},
	},
	Lessons: []codec.LessonRecord{
		{StudentName: "Alex Yeoh", Date: "06-01-2025", Time: "16:00", Subject: "CS2103T"},
		{StudentName: "Bernice Yu", Date: "07-01-2025", Time: "10:30", Subject: "CS2100"},
		{StudentName: "David Li", Date: "08-01-2025", Time: "19:00", Subject: "Chemistry"},
	},
}

// SampleAddressBook returns a fresh copy of the sample address book.
func SampleAddressBook() (*addressbook.AddressBook, error) {
	return sampleDocument.ToAddressBook()
}

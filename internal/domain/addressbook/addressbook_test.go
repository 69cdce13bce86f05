package addressbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
	"github.com/tutorhub/tutorhub/internal/testutil"
)

func names(v addressbook.View[*student.Student]) []string {
	out := make([]string, 0, v.Len())
	for _, s := range v.All() {
		out = append(out, s.Name().String())
	}
	return out
}

func TestAddStudent(t *testing.T) {
	book := addressbook.New()
	amy := testutil.NewStudentBuilder().Build()

	require.NoError(t, book.AddStudent(amy))
	assert.True(t, book.HasStudent(amy))
	assert.Equal(t, uint64(1), book.Version())

	dup := testutil.StudentBuilderFrom(amy).WithPhone("111").Build()
	err := book.AddStudent(dup)
	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)
	assert.Equal(t, shared.ErrDuplicateStudent.Message, shared.UserMessage(err))
	assert.Equal(t, uint64(1), book.Version())
}

func TestSetStudent_RenameCascadesToLessons(t *testing.T) {
	book := testutil.TypicalAddressBook()
	alice, _ := book.StudentNamed(testutil.Name("Alice Pauline"))
	renamed := testutil.StudentBuilderFrom(alice).WithName("Alicia Pauline").Build()

	require.NoError(t, book.SetStudent(alice, renamed))

	assert.Empty(t, book.LessonsOf(testutil.Name("Alice Pauline")))
	assert.Len(t, book.LessonsOf(testutil.Name("Alicia Pauline")), 2)
	assert.Equal(t, "Alicia Pauline", book.Students().At(0).Name().String())
}

func TestSetStudent_Failures(t *testing.T) {
	book := testutil.TypicalAddressBook()
	before := book.Snapshot()
	alice, _ := book.StudentNamed(testutil.Name("Alice Pauline"))

	intoBenson := testutil.StudentBuilderFrom(alice).WithName("Benson Meier").Build()
	assert.ErrorIs(t, book.SetStudent(alice, intoBenson), shared.ErrDuplicateEntity)

	stranger := testutil.NewStudentBuilder().WithName("Zed").Build()
	assert.ErrorIs(t, book.SetStudent(stranger, stranger), shared.ErrEntityNotFound)

	assert.Equal(t, names(before.Students()), names(book.Students()))
	assert.Equal(t, before.Lessons().Slice(), book.Lessons().Slice())
}

func TestSetStudent_RenameCollisionReportedBeforeLessonClash(t *testing.T) {
	book := addressbook.New()
	amy := testutil.NewStudentBuilder().WithName("Amy").Build()
	bob := testutil.NewStudentBuilder().WithName("Bob").Build()
	require.NoError(t, book.AddStudent(amy))
	require.NoError(t, book.AddStudent(bob))
	for _, name := range []string{"Amy", "Bob"} {
		require.NoError(t, book.AddLesson(testutil.NewLessonBuilder().WithStudent(name).Build()))
	}
	version := book.Version()

	err := book.SetStudent(amy, testutil.StudentBuilderFrom(amy).WithName("Bob").Build())

	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)
	assert.Equal(t, shared.ErrDuplicateStudent.Message, shared.UserMessage(err))
	assert.Equal(t, version, book.Version())
	assert.Len(t, book.LessonsOf(testutil.Name("Amy")), 1)
}

func TestRemoveStudent_CascadesLessons(t *testing.T) {
	book := testutil.TypicalAddressBook()
	alice, _ := book.StudentNamed(testutil.Name("Alice Pauline"))

	require.NoError(t, book.RemoveStudent(alice))

	assert.False(t, book.HasStudentNamed(testutil.Name("Alice Pauline")))
	require.Equal(t, 1, book.Lessons().Len())
	assert.Equal(t, "Benson Meier", book.Lessons().At(0).StudentName().String())

	assert.ErrorIs(t, book.RemoveStudent(alice), shared.ErrEntityNotFound)
}

func TestAddLesson(t *testing.T) {
	book := testutil.TypicalAddressBook()
	carl := testutil.NewLessonBuilder().WithStudent("Carl Kurz").Build()

	require.NoError(t, book.AddLesson(carl))
	assert.True(t, book.HasLesson(carl))

	assert.ErrorIs(t, book.AddLesson(carl), shared.ErrDuplicateEntity)

	ghost := testutil.NewLessonBuilder().WithStudent("Nobody Here").Build()
	err := book.AddLesson(ghost)
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)
	assert.False(t, book.HasLesson(ghost))
}

func TestAddLesson_SameSlotDifferentSubjectIsAllowed(t *testing.T) {
	book := testutil.TypicalAddressBook()
	first := book.Lessons().At(0)
	other := testutil.NewLessonBuilder().WithStudent("Alice Pauline").
		WithDate(first.Date().String()).WithTime(first.Time().String()).WithSubject("Chemistry").Build()

	assert.NoError(t, book.AddLesson(other))
}

func TestSetLesson(t *testing.T) {
	book := testutil.TypicalAddressBook()
	target := book.Lessons().At(0)

	moved := testutil.NewLessonBuilder().WithStudent("Carl Kurz").Build()
	require.NoError(t, book.SetLesson(target, moved))
	assert.True(t, book.Lessons().At(0).Equal(moved))

	ghost := moved.WithStudentName(testutil.Name("Nobody"))
	assert.ErrorIs(t, book.SetLesson(moved, ghost), shared.ErrStudentNotFound)
	assert.ErrorIs(t, book.SetLesson(target, moved), shared.ErrEntityNotFound)

	second := book.Lessons().At(1)
	assert.ErrorIs(t, book.SetLesson(moved, second), shared.ErrDuplicateEntity)
}

func TestRemoveLesson(t *testing.T) {
	book := testutil.TypicalAddressBook()
	l := book.Lessons().At(1)

	require.NoError(t, book.RemoveLesson(l))
	assert.Equal(t, 2, book.Lessons().Len())
	assert.ErrorIs(t, book.RemoveLesson(l), shared.ErrEntityNotFound)
}

func TestResetData(t *testing.T) {
	book := testutil.TypicalAddressBook()
	amy := testutil.NewStudentBuilder().Build()

	orphan := addressbook.NewSnapshot([]*student.Student{amy},
		[]lesson.Lesson{testutil.NewLessonBuilder().WithStudent("Nobody").Build()})
	assert.ErrorIs(t, book.ResetData(orphan), shared.ErrStudentNotFound)
	assert.Equal(t, 7, book.Students().Len())

	dupes := addressbook.NewSnapshot([]*student.Student{amy, amy}, nil)
	assert.ErrorIs(t, book.ResetData(dupes), shared.ErrDuplicateEntity)

	require.NoError(t, book.ResetData(addressbook.NewSnapshot(nil, nil)))
	assert.Zero(t, book.Students().Len())
	assert.Zero(t, book.Lessons().Len())
}

func TestFromSnapshot_CopiesAndResetsVersion(t *testing.T) {
	src := testutil.TypicalAddressBook()

	copied, err := addressbook.FromSnapshot(src)
	require.NoError(t, err)
	assert.Zero(t, copied.Version())

	require.NoError(t, copied.RemoveLesson(copied.Lessons().At(0)))
	assert.Equal(t, 3, src.Lessons().Len())
}

package student_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/domain/student"
	"github.com/tutorhub/tutorhub/internal/testutil"
)

func TestNewStudent_RequiresEveryField(t *testing.T) {
	full := testutil.NewStudentBuilder().Build().Params()

	missing := map[string]func(p *student.NewStudentParams){
		"name":    func(p *student.NewStudentParams) { p.Name = shared.Name{} },
		"phone":   func(p *student.NewStudentParams) { p.Phone = shared.Phone{} },
		"email":   func(p *student.NewStudentParams) { p.Email = shared.Email{} },
		"address": func(p *student.NewStudentParams) { p.Address = shared.Address{} },
		"subject": func(p *student.NewStudentParams) { p.Subject = shared.Subject{} },
	}
	for field, clear := range missing {
		t.Run(field, func(t *testing.T) {
			p := full
			clear(&p)
			_, err := student.NewStudent(p)
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestNewStudent_TagsAreASortedSet(t *testing.T) {
	s := testutil.NewStudentBuilder().WithTags("owesMoney", "friends", "owesMoney").Build()

	tags := s.Tags()
	require.Len(t, tags, 2)
	assert.Equal(t, "friends", tags[0].String())
	assert.Equal(t, "owesMoney", tags[1].String())
}

func TestNewStudent_RejectsDuplicateAssignmentNames(t *testing.T) {
	p := testutil.NewStudentBuilder().Build().Params()
	p.Assignments = []student.Assignment{testutil.Assignment("Essay"), testutil.Assignment("Essay")}

	_, err := student.NewStudent(p)
	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)
}

func TestStudent_Identity(t *testing.T) {
	amy := testutil.NewStudentBuilder().Build()
	sameName := testutil.StudentBuilderFrom(amy).WithPhone("999").WithTags("friends").Build()
	otherAddress := testutil.StudentBuilderFrom(amy).WithAddress("Somewhere else").Build()
	renamed := testutil.StudentBuilderFrom(amy).WithName("Amy Beee").Build()

	assert.True(t, amy.IsSameStudent(sameName))
	assert.False(t, amy.Equal(sameName))
	assert.True(t, amy.Equal(otherAddress))
	assert.False(t, amy.IsSameStudent(renamed))
	assert.False(t, amy.IsSameStudent(nil))
}

func TestStudent_NameIsCaseSensitive(t *testing.T) {
	amy := testutil.NewStudentBuilder().Build()
	lower := testutil.StudentBuilderFrom(amy).WithName("amy bee").Build()

	assert.False(t, amy.IsSameStudent(lower))
}

func TestStudent_AccessorsReturnCopies(t *testing.T) {
	s := testutil.NewStudentBuilder().WithTags("friends").WithAssignments(testutil.Assignment("Essay")).Build()

	tags := s.Tags()
	tags[0] = testutil.Tag("changed")
	as := s.Assignments()
	as[0] = testutil.Assignment("Other")

	assert.Equal(t, "friends", s.Tags()[0].String())
	assert.Equal(t, "Essay", s.Assignments()[0].Name().String())
}

func TestStudent_Assignments(t *testing.T) {
	s := testutil.NewStudentBuilder().Build()
	essay := testutil.Assignment("Essay")

	withEssay, err := s.WithAssignment(essay)
	require.NoError(t, err)
	assert.Empty(t, s.Assignments())
	assert.Equal(t, 1, withEssay.PendingAssignments())

	_, err = withEssay.WithAssignment(essay.WithCompleted(true))
	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)

	done, err := withEssay.ReplaceAssignment(essay.Name(), essay.WithCompleted(true))
	require.NoError(t, err)
	assert.Zero(t, done.PendingAssignments())

	_, err = withEssay.ReplaceAssignment(testutil.AssignmentName("Missing"), essay)
	assert.ErrorIs(t, err, shared.ErrEntityNotFound)

	removed, err := withEssay.WithoutAssignment(essay.Name())
	require.NoError(t, err)
	assert.Empty(t, removed.Assignments())

	_, err = removed.WithoutAssignment(essay.Name())
	assert.ErrorIs(t, err, shared.ErrEntityNotFound)
}

func TestStudent_ReplaceAssignmentRejectsRenameCollision(t *testing.T) {
	s := testutil.NewStudentBuilder().
		WithAssignments(testutil.Assignment("Essay"), testutil.Assignment("Worksheet")).Build()

	_, err := s.ReplaceAssignment(testutil.AssignmentName("Essay"), testutil.Assignment("Worksheet"))
	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)
}

func TestStudent_ReplaceMissingAssignmentIsNotFound(t *testing.T) {
	s := testutil.NewStudentBuilder().WithAssignments(testutil.Assignment("Essay")).Build()

	_, err := s.ReplaceAssignment(testutil.AssignmentName("Missing"), testutil.Assignment("Essay"))
	assert.ErrorIs(t, err, shared.ErrEntityNotFound)
	assert.NotErrorIs(t, err, shared.ErrDuplicateEntity)
	assert.Len(t, s.Assignments(), 1)
}

func TestAssignment_String(t *testing.T) {
	a := testutil.Assignment("Essay").WithDueDate(testutil.Date("01-04-2025")).WithCompleted(true)

	due, ok := a.DueDate()
	require.True(t, ok)
	assert.Equal(t, "01-04-2025", due.String())
	assert.Equal(t, "Essay (due 01-04-2025) [done]", a.String())

	_, ok = testutil.Assignment("Plain").DueDate()
	assert.False(t, ok)
}

func TestStudent_String(t *testing.T) {
	s := testutil.NewStudentBuilder().WithTags("friends").Build()

	assert.Equal(t,
		"Amy Bee; Phone: 85355255; Email: amy@gmail.com; Address: 123, Jurong West Ave 6, #08-111; "+
			"Subject: Mathematics; Tags: [friends]; Assignments: []",
		s.String())
}

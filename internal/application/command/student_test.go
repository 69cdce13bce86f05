package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/application/command"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/testutil"
)

func TestAddStudent(t *testing.T) {
	m := typicalModel()
	amy := testutil.NewStudentBuilder().Build()

	res, err := command.NewAddStudent(amy).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "New student added: "+amy.String(), res.Feedback)
	assert.True(t, m.HasStudent(amy))

	_, err = command.NewAddStudent(testutil.StudentBuilderFrom(amy).WithPhone("000").Build()).Execute(m)
	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)
	assert.Equal(t, "This student already exists in the address book", shared.UserMessage(err))

	_, err = command.AddStudent{}.Execute(m)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestEditStudent_AllFieldsRoundTrip(t *testing.T) {
	m := typicalModel()
	edited := testutil.NewStudentBuilder().WithName("Bob Choo").WithTags("husband").Build()
	p := edited.Params()

	d := command.EditStudentDescriptor{
		Name: &p.Name, Phone: &p.Phone, Email: &p.Email,
		Address: &p.Address, Subject: &p.Subject, Tags: p.Tags,
	}
	res, err := command.NewEditStudent(testutil.Index(1), d).Execute(m)
	require.NoError(t, err)

	first := m.FilteredStudents().At(0)
	assert.True(t, first.Equal(edited))
	assert.Equal(t, edited.Address(), first.Address())
	assert.Equal(t, "Edited Student: "+first.String(), res.Feedback)
}

func TestEditStudent_KeepsAssignmentsAndCascadesRename(t *testing.T) {
	m := typicalModel()
	name := testutil.Name("Alicia Pauline")

	_, err := command.NewEditStudent(testutil.Index(1), command.EditStudentDescriptor{Name: &name}).Execute(m)
	require.NoError(t, err)

	alicia, ok := m.StudentNamed(name)
	require.True(t, ok)
	assert.Len(t, alicia.Assignments(), 1)

	res, err := command.ListLessons{Student: name}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "2 lessons listed!", res.Feedback)
}

func TestEditStudent_EmptyTagsClearTags(t *testing.T) {
	m := typicalModel()

	_, err := command.NewEditStudent(testutil.Index(2), command.EditStudentDescriptor{Tags: []shared.Tag{}}).Execute(m)
	require.NoError(t, err)
	assert.Empty(t, m.FilteredStudents().At(1).Tags())
}

func TestEditStudent_Failures(t *testing.T) {
	m := typicalModel()

	_, err := command.NewEditStudent(testutil.Index(1), command.EditStudentDescriptor{}).Execute(m)
	assert.ErrorIs(t, err, shared.ErrNoFieldEdited)
	assert.Equal(t, "At least one field to edit must be provided.", shared.UserMessage(err))

	benson := testutil.Name("Benson Meier")
	_, err = command.NewEditStudent(testutil.Index(1), command.EditStudentDescriptor{Name: &benson}).Execute(m)
	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)

	_, err = command.NewEditStudent(testutil.Index(8), command.EditStudentDescriptor{Name: &benson}).Execute(m)
	assert.ErrorIs(t, err, shared.ErrInvalidIndex)
	assert.Equal(t, command.MessageInvalidStudentIndex, shared.UserMessage(err))
}

func TestDeleteStudent_CascadesLessons(t *testing.T) {
	m := typicalModel()

	res, err := command.NewDeleteStudent(testutil.Index(1)).Execute(m)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Deleted Student: Alice Pauline")
	assert.Equal(t, 6, m.FilteredStudents().Len())
	assert.Equal(t, 1, m.FilteredLessons().Len())
}

func TestDeleteStudent_UsesFilteredIndex(t *testing.T) {
	m := typicalModel()
	_, err := command.NewFindStudents([]string{"Meier"}).Execute(m)
	require.NoError(t, err)

	_, err = command.NewDeleteStudent(testutil.Index(2)).Execute(m)
	require.NoError(t, err)
	assert.False(t, m.HasStudentNamed(testutil.Name("Daniel Meier")))

	_, err = command.NewDeleteStudent(testutil.Index(2)).Execute(m)
	assert.ErrorIs(t, err, shared.ErrInvalidIndex)
}

func TestFindAndListStudents(t *testing.T) {
	m := typicalModel()

	res, err := command.NewFindStudents([]string{"kurz", "elle", "kunz"}).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "3 students listed!", res.Feedback)

	_, err = command.NewFindStudents(nil).Execute(m)
	assert.ErrorIs(t, err, shared.ErrValidation)

	res, err = command.ListStudents{}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, command.MessageListedAllStudents, res.Feedback)
	assert.Equal(t, 7, m.FilteredStudents().Len())
}

func TestFilterStudents(t *testing.T) {
	m := typicalModel()

	cmd, err := command.NewFilterStudents(`"friends" in tags`)
	require.NoError(t, err)
	res, err := cmd.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "3 students listed!", res.Feedback)
}

func TestClear(t *testing.T) {
	m := typicalModel()

	res, err := command.Clear{}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, command.MessageCleared, res.Feedback)
	assert.Zero(t, m.FilteredStudents().Len())
	assert.Zero(t, m.FilteredLessons().Len())
}

func TestHelpAndExit(t *testing.T) {
	res, err := command.Help{}.Execute(typicalModel())
	require.NoError(t, err)
	assert.True(t, res.ShowHelp)
	for word := range command.Usage {
		assert.Contains(t, res.Feedback, command.Usage[word])
	}

	res, err = command.Exit{}.Execute(typicalModel())
	require.NoError(t, err)
	assert.True(t, res.Exit)
	assert.Equal(t, command.MessageExit, res.Feedback)
}

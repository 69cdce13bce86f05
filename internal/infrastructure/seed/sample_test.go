package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

func TestSampleAddressBook(t *testing.T) {
	book, err := SampleAddressBook()
	require.NoError(t, err)

	assert.Equal(t, 7, book.Students().Len())
	assert.Equal(t, 3, book.Lessons().Len())

	name, err := shared.NewName("Bernice Yu")
	require.NoError(t, err)
	bernice, ok := book.StudentNamed(name)
	require.True(t, ok)
	require.Len(t, bernice.Assignments(), 1)
	assert.Equal(t, "Chinese Essay", bernice.Assignments()[0].Name().String())
	assert.Len(t, bernice.Tags(), 2)
}

func TestSampleAddressBook_FreshCopies(t *testing.T) {
	first, err := SampleAddressBook()
	require.NoError(t, err)
	second, err := SampleAddressBook()
	require.NoError(t, err)

	require.NoError(t, first.RemoveStudent(first.Students().At(0)))

	assert.Equal(t, 6, first.Students().Len())
	assert.Equal(t, 7, second.Students().Len())
}

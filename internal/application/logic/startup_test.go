package logic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/application/logic"
	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/testutil"
)

func sample() (*addressbook.AddressBook, error) {
	return testutil.TypicalAddressBook(), nil
}

func TestLoadAddressBook_FromStore(t *testing.T) {
	stored := addressbook.New()
	require.NoError(t, stored.AddStudent(testutil.NewStudentBuilder().Build()))
	pub := &recorder{}

	book, outcome := logic.LoadAddressBook(context.Background(), &fakeStore{book: stored}, sample, pub, nil)

	assert.Equal(t, logic.LoadedFromStore, outcome)
	assert.Equal(t, 1, book.Students().Len())
	require.Equal(t, []shared.EventType{shared.EventAddressBookLoaded}, pub.types())
	assert.Equal(t, "store", pub.events[0].(addressbook.LoadedEvent).Source)
}

func TestLoadAddressBook_NoDataUsesSample(t *testing.T) {
	pub := &recorder{}

	book, outcome := logic.LoadAddressBook(context.Background(),
		&fakeStore{loadErr: addressbook.ErrNoData}, sample, pub, nil)

	assert.Equal(t, logic.LoadedSample, outcome)
	assert.Equal(t, 7, book.Students().Len())
	assert.Len(t, pub.events, 1)
}

func TestLoadAddressBook_NoDataWithoutSample(t *testing.T) {
	book, outcome := logic.LoadAddressBook(context.Background(),
		&fakeStore{loadErr: addressbook.ErrNoData}, nil, nil, nil)

	assert.Equal(t, logic.LoadedEmpty, outcome)
	assert.Zero(t, book.Students().Len())
}

func TestLoadAddressBook_BrokenSampleStartsEmpty(t *testing.T) {
	broken := func() (*addressbook.AddressBook, error) { return nil, errors.New("bad sample") }

	book, outcome := logic.LoadAddressBook(context.Background(),
		&fakeStore{loadErr: addressbook.ErrNoData}, broken, nil, nil)

	assert.Equal(t, logic.LoadedEmpty, outcome)
	assert.NotNil(t, book)
}

func TestLoadAddressBook_MalformedDataStartsEmptyAndStaysQuiet(t *testing.T) {
	store := &fakeStore{loadErr: shared.NewDomainError("jsonfile", "Load", shared.ErrStorage, "Data file is unusable")}
	pub := &recorder{}

	book, outcome := logic.LoadAddressBook(context.Background(), store, sample, pub, nil)

	assert.Equal(t, logic.LoadedEmpty, outcome)
	assert.Zero(t, book.Students().Len())
	assert.Empty(t, store.saved)
	assert.Empty(t, pub.events)
}

func TestLoadAddressBook_NilStore(t *testing.T) {
	book, outcome := logic.LoadAddressBook(context.Background(), nil, sample, nil, nil)

	assert.Equal(t, logic.LoadedEmpty, outcome)
	assert.Zero(t, book.Students().Len())
}

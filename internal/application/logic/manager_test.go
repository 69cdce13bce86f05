package logic_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/application/logic"
	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/prefs"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/interface/cli/parser"
	"github.com/tutorhub/tutorhub/internal/testutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// FAKES
// ══════════════════════════════════════════════════════════════════════════════

var errDiskFull = errors.New("disk full")

type fakeStore struct {
	mu      sync.Mutex
	book    *addressbook.AddressBook
	loadErr error
	saveErr error
	saved   []addressbook.ReadOnly
}

func (s *fakeStore) Load(context.Context) (*addressbook.AddressBook, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.book, nil
}

func (s *fakeStore) Save(_ context.Context, src addressbook.ReadOnly) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, src)
	return nil
}

type recorder struct {
	mu     sync.Mutex
	events []shared.Event
}

func (r *recorder) Publish(e shared.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []shared.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shared.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.EventType())
	}
	return out
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newManager(t *testing.T, store addressbook.Repository, pub shared.EventPublisher) (*logic.Manager, *model.Manager) {
	t.Helper()
	m := model.NewManager(testutil.TypicalAddressBook(), prefs.Default())
	mgr, err := logic.NewManager(logic.ManagerConfig{
		Model:     m,
		Parser:    parser.New(),
		Store:     store,
		Publisher: pub,
		NewID:     sequentialIDs(),
	})
	require.NoError(t, err)
	return mgr, m
}

// ══════════════════════════════════════════════════════════════════════════════
// TESTS
// ══════════════════════════════════════════════════════════════════════════════

func TestNewManager_RequiresModelAndParser(t *testing.T) {
	_, err := logic.NewManager(logic.ManagerConfig{Parser: parser.New()})
	assert.Error(t, err)

	_, err = logic.NewManager(logic.ManagerConfig{Model: model.NewManager(nil, prefs.Default())})
	assert.Error(t, err)
}

func TestExecute_SavesAndPublishesChanges(t *testing.T) {
	store, pub := &fakeStore{}, &recorder{}
	mgr, _ := newManager(t, store, pub)

	res, err := mgr.Execute(context.Background(), "delete_lesson 1")
	require.NoError(t, err)
	assert.True(t, res.RefreshView)

	require.Len(t, store.saved, 1)
	assert.Equal(t, 2, store.saved[0].Lessons().Len())

	require.Len(t, pub.events, 1)
	ev, ok := pub.events[0].(addressbook.ChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "delete_lesson", ev.Command)
	assert.Equal(t, "id-1", ev.CorrelationID)
	assert.Equal(t, "id-2", ev.ID)
	assert.Equal(t, 2, ev.State.Lessons().Len())
}

func TestExecute_ReadOnlyCommandsDoNotSave(t *testing.T) {
	store, pub := &fakeStore{}, &recorder{}
	mgr, m := newManager(t, store, pub)

	res, err := mgr.Execute(context.Background(), "find_students Alice")
	require.NoError(t, err)
	assert.Equal(t, "1 students listed!", res.Feedback)
	assert.Equal(t, 1, m.FilteredStudents().Len())

	for _, line := range []string{"list_students", "help", "list_lessons"} {
		_, err := mgr.Execute(context.Background(), line)
		require.NoError(t, err, line)
	}
	assert.Empty(t, store.saved)
	assert.Empty(t, pub.events)
	assert.Equal(t, 7, m.FilteredStudents().Len())
}

func TestExecute_RejectedCommandLeavesStateAlone(t *testing.T) {
	store, pub := &fakeStore{}, &recorder{}
	mgr, m := newManager(t, store, pub)
	before := m.Version()

	res, err := mgr.Execute(context.Background(), "delete_student 99")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, shared.ErrInvalidIndex)
	assert.Equal(t, before, m.Version())
	assert.Empty(t, store.saved)

	_, err = mgr.Execute(context.Background(), "teleport")
	assert.ErrorIs(t, err, shared.ErrInvalidCommand)

	assert.Equal(t, []shared.EventType{shared.EventCommandRejected, shared.EventCommandRejected}, pub.types())
	ev := pub.events[0].(addressbook.CommandRejectedEvent)
	assert.Equal(t, "delete_student", ev.Command)
	assert.Equal(t, "The student index provided is invalid", ev.Reason)
}

func TestExecute_SaveFailureKeepsCommandApplied(t *testing.T) {
	store, pub := &fakeStore{saveErr: errDiskFull}, &recorder{}
	mgr, m := newManager(t, store, pub)

	res, err := mgr.Execute(context.Background(), "clear")
	require.NotNil(t, res)
	assert.Equal(t, "Address book has been cleared!", res.Feedback)
	assert.ErrorIs(t, err, shared.ErrStorage)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, "Could not save data to storage: disk full", shared.UserMessage(err))

	assert.Zero(t, m.AddressBook().Students().Len())
	assert.Equal(t, []shared.EventType{shared.EventAddressBookChanged}, pub.types())
}

func TestExecute_WithoutStoreOrPublisher(t *testing.T) {
	mgr, m := newManager(t, nil, nil)

	_, err := mgr.Execute(context.Background(), "add_student n/Amy Bee p/85355255 e/amy@gmail.com a/Jurong s/Math")
	require.NoError(t, err)
	assert.True(t, m.HasStudentNamed(testutil.Name("Amy Bee")))
}

func TestExecute_AddLessonScenario(t *testing.T) {
	store := &fakeStore{}
	mgr, m := newManager(t, store, nil)

	_, err := mgr.Execute(context.Background(), "add_lesson n/Carl Kurz d/17-09-2027 tm/14:00 s/Mathematics")
	require.NoError(t, err)
	assert.Equal(t, 4, m.FilteredLessons().Len())

	_, err = mgr.Execute(context.Background(), "add_lesson n/Carl Kurz d/2027-09-17 tm/14:00 s/Mathematics")
	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)
	assert.Len(t, store.saved, 1)
}

package logic

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// LoadOutcome says where the starting address book came from.
type LoadOutcome string

// Load outcomes.
const (
	LoadedFromStore LoadOutcome = "store"
	LoadedSample    LoadOutcome = "sample"
	LoadedEmpty     LoadOutcome = "empty"
)

// LoadAddressBook reads the starting address book from store.
//
// When the store holds nothing yet, sample provides the data (nil means an
// empty book). When the stored data cannot be read or is malformed, the
// session starts empty and the stored data is left untouched until the next
// successful command overwrites it. Only a book read from store or taken from
// sample is announced to publisher, so mirrors never receive the empty
// fallback.
func LoadAddressBook(
	ctx context.Context,
	store addressbook.Repository,
	sample func() (*addressbook.AddressBook, error),
	publisher shared.EventPublisher,
	logger *slog.Logger,
) (*addressbook.AddressBook, LoadOutcome) {
	if logger == nil {
		logger = slog.Default()
	}

	book, outcome := load(ctx, store, sample, logger)
	if publisher != nil && outcome != LoadedEmpty {
		if err := publisher.Publish(addressbook.NewLoadedEvent(uuid.NewString(), string(outcome), book.Snapshot())); err != nil {
			logger.Warn("event not published", "event_type", shared.EventAddressBookLoaded, "error", err)
		}
	}
	return book, outcome
}

func load(
	ctx context.Context,
	store addressbook.Repository,
	sample func() (*addressbook.AddressBook, error),
	logger *slog.Logger,
) (*addressbook.AddressBook, LoadOutcome) {
	if store == nil {
		return addressbook.New(), LoadedEmpty
	}

	book, err := store.Load(ctx)
	switch {
	case err == nil:
		logger.Info("address book loaded",
			"students", book.Students().Len(),
			"lessons", book.Lessons().Len(),
		)
		return book, LoadedFromStore

	case errors.Is(err, addressbook.ErrNoData):
		if sample == nil {
			return addressbook.New(), LoadedEmpty
		}
		book, err := sample()
		if err != nil {
			logger.Error("sample data rejected, starting empty", "error", err)
			return addressbook.New(), LoadedEmpty
		}
		logger.Info("no stored data, starting with sample address book")
		return book, LoadedSample

	default:
		logger.Warn("stored data could not be loaded, starting with an empty address book", "error", err)
		return addressbook.New(), LoadedEmpty
	}
}

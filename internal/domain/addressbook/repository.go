package addressbook

import (
	"context"
	"errors"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// These interfaces define the contract with durable storage.
// Implementations live in infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// ErrNoData is returned by Load when the store holds no address book yet.
var ErrNoData = errors.New("addressbook: no stored data")

// Repository persists whole address books.
type Repository interface {
	// Load reads the stored address book, re-running every construction check.
	// Returns ErrNoData if nothing was stored yet. Malformed stored data is
	// reported as an error wrapping shared.ErrStorage.
	Load(ctx context.Context) (*AddressBook, error)

	// Save replaces the stored address book with src.
	Save(ctx context.Context, src ReadOnly) error
}

// Mirror is a secondary store that receives copies of every saved state.
type Mirror interface {
	Repository

	// Name identifies the mirror in logs.
	Name() string
}

// Package jsonfile stores the address book and the user preferences as JSON
// files on the local disk. It is the primary storage of the application.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/infrastructure/persistence/codec"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADDRESS BOOK STORE
// ══════════════════════════════════════════════════════════════════════════════

// AddressBookStore implements addressbook.Repository over one JSON file.
type AddressBookStore struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	digest [blake2b.Size256]byte
	stamp  fileStamp
	synced bool
}

// fileStamp identifies the data file as last read or written by the store.
type fileStamp struct {
	size    int64
	modTime time.Time
}

func stampOf(path string) (fileStamp, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, false
	}
	return fileStamp{size: info.Size(), modTime: info.ModTime()}, true
}

// NewAddressBookStore creates a store for the file at path. The file is only
// created on the first Save.
func NewAddressBookStore(path string, logger *slog.Logger) *AddressBookStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressBookStore{path: path, logger: logger}
}

// Path returns the data file path.
func (s *AddressBookStore) Path() string { return s.path }

// Name identifies the store in logs.
func (s *AddressBookStore) Name() string { return "jsonfile" }

// Load implements addressbook.Repository.
func (s *AddressBookStore) Load(_ context.Context) (*addressbook.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, addressbook.ErrNoData
	}
	if err != nil {
		return nil, storageError("Load", "Could not read data file", err)
	}

	book, err := codec.Unmarshal(data)
	if err != nil {
		return nil, storageError("Load", "Data file is unusable", err)
	}

	s.mu.Lock()
	s.remember(digestOf(data))
	s.mu.Unlock()

	return book, nil
}

// Save implements addressbook.Repository. Unchanged content is not rewritten
// unless the file was removed or modified since the store last touched it.
func (s *AddressBookStore) Save(_ context.Context, src addressbook.ReadOnly) error {
	data, err := codec.Marshal(src)
	if err != nil {
		return storageError("Save", "Could not encode address book", err)
	}
	sum := digestOf(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unchanged(sum) {
		s.logger.Debug("address book unchanged, skipping write", "path", s.path)
		return nil
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return storageError("Save", "Could not write data file", err)
	}
	s.remember(sum)
	s.logger.Debug("address book saved",
		"path", s.path,
		"students", src.Students().Len(),
		"lessons", src.Lessons().Len(),
	)
	return nil
}

// remember records sum and the current file stamp. Callers hold s.mu.
func (s *AddressBookStore) remember(sum [blake2b.Size256]byte) {
	s.digest = sum
	s.stamp, s.synced = stampOf(s.path)
}

// unchanged reports whether the file on disk still holds content with digest
// sum. Callers hold s.mu.
func (s *AddressBookStore) unchanged(sum [blake2b.Size256]byte) bool {
	if !s.synced || sum != s.digest {
		return false
	}
	current, ok := stampOf(s.path)
	return ok && current.size == s.stamp.size && current.modTime.Equal(s.stamp.modTime)
}

func digestOf(data []byte) [blake2b.Size256]byte {
	return blake2b.Sum256(data)
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// writeFileAtomic writes data next to path and renames it into place, so the
// file is never seen half written.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func storageError(op, message string, err error) error {
	if err != nil {
		message = message + ": " + shared.UserMessage(err)
	}
	return shared.WrapError("jsonfile", op, shared.ErrStorage, message, err)
}

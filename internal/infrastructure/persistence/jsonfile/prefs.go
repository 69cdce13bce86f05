package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/tutorhub/tutorhub/internal/domain/prefs"
)

// PrefsStore implements prefs.Repository over one JSON file.
type PrefsStore struct {
	path string
}

// NewPrefsStore creates a store for the file at path.
func NewPrefsStore(path string) *PrefsStore {
	return &PrefsStore{path: path}
}

// Load implements prefs.Repository. Fields missing from the file keep their
// default values.
func (s *PrefsStore) Load(_ context.Context) (prefs.UserPrefs, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs.UserPrefs{}, prefs.ErrNotFound
	}
	if err != nil {
		return prefs.UserPrefs{}, storageError("LoadPrefs", "Could not read preferences file", err)
	}

	p := prefs.Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return prefs.UserPrefs{}, storageError("LoadPrefs", "Preferences file is not in the correct format", err)
	}
	if err := p.Validate(); err != nil {
		return prefs.UserPrefs{}, storageError("LoadPrefs", "Preferences file is invalid", err)
	}
	return p, nil
}

// Save implements prefs.Repository.
func (s *PrefsStore) Save(_ context.Context, p prefs.UserPrefs) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return storageError("SavePrefs", "Could not encode preferences", err)
	}
	if err := writeFileAtomic(s.path, append(data, '\n')); err != nil {
		return storageError("SavePrefs", "Could not write preferences file", err)
	}
	return nil
}

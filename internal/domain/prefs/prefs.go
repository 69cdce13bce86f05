// Package prefs holds the local user's preferences.
package prefs

import (
	"context"
	"errors"
	"strings"
)

// DefaultDataFile is where the address book lives unless configured otherwise.
const DefaultDataFile = "data/addressbook.json"

// UserPrefs are the settings remembered between sessions.
type UserPrefs struct {
	// DataFilePath is the JSON file the address book is saved to.
	DataFilePath string `json:"dataFilePath"`

	// ShowLessonsOnStart lists lessons instead of students at startup.
	ShowLessonsOnStart bool `json:"showLessonsOnStart"`

	// LastBackend is the primary storage backend of the previous session.
	LastBackend string `json:"lastBackend,omitempty"`
}

// Default returns the preferences used on first launch.
func Default() UserPrefs {
	return UserPrefs{DataFilePath: DefaultDataFile}
}

// Validate checks the preferences before they are applied.
func (p UserPrefs) Validate() error {
	if strings.TrimSpace(p.DataFilePath) == "" {
		return errors.New("prefs: data file path is required")
	}
	return nil
}

// Repository stores preferences.
type Repository interface {
	// Load returns the stored preferences, or ErrNotFound on first launch.
	Load(ctx context.Context) (UserPrefs, error)

	// Save stores p.
	Save(ctx context.Context, p UserPrefs) error
}

// ErrNotFound is returned by Load when nothing was stored yet.
var ErrNotFound = errors.New("prefs: not found")

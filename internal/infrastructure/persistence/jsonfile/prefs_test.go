package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/domain/prefs"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/infrastructure/persistence/jsonfile"
)

func TestPrefsStore_MissingFile(t *testing.T) {
	_, err := jsonfile.NewPrefsStore(filepath.Join(t.TempDir(), "preferences.json")).Load(context.Background())
	assert.ErrorIs(t, err, prefs.ErrNotFound)
}

func TestPrefsStore_SaveThenLoad(t *testing.T) {
	store := jsonfile.NewPrefsStore(filepath.Join(t.TempDir(), "preferences.json"))
	p := prefs.UserPrefs{DataFilePath: "elsewhere/book.json", ShowLessonsOnStart: true, LastBackend: "redis"}

	require.NoError(t, store.Save(context.Background(), p))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPrefsStore_MissingFieldsKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"showLessonsOnStart": true}`), 0o644))

	got, err := jsonfile.NewPrefsStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, prefs.DefaultDataFile, got.DataFilePath)
	assert.True(t, got.ShowLessonsOnStart)
}

func TestPrefsStore_Invalid(t *testing.T) {
	for name, content := range map[string]string{
		"not json":   `{`,
		"blank path": `{"dataFilePath": "  "}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "preferences.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := jsonfile.NewPrefsStore(path).Load(context.Background())
			assert.ErrorIs(t, err, shared.ErrStorage)
		})
	}
}

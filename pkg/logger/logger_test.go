package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" Warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(Options{Output: &buf, Level: slog.LevelInfo, Format: FormatJSON}), "shell")

	log.Debug("hidden")
	log.Info("ready", KeyCorrelationID, "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ready", entry["msg"])
	assert.Equal(t, "shell", entry[KeyComponent])
	assert.Equal(t, "abc", entry[KeyCorrelationID])
}

func TestNew_TextIsDefault(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Output: &buf}).Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tutorhub.log")

	w, closeFn, err := OpenFile(path)
	require.NoError(t, err)
	New(Options{Output: w}).Info("first")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=first")
}

package cli_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/application/command"
	"github.com/tutorhub/tutorhub/internal/application/logic"
	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/prefs"
	"github.com/tutorhub/tutorhub/internal/interface/cli"
	"github.com/tutorhub/tutorhub/internal/interface/cli/parser"
	"github.com/tutorhub/tutorhub/internal/testutil"
)

func newExecutor(t *testing.T) (*logic.Manager, *model.Manager) {
	t.Helper()
	m := model.NewManager(testutil.TypicalAddressBook(), prefs.Default())
	mgr, err := logic.NewManager(logic.ManagerConfig{Model: m, Parser: parser.New()})
	require.NoError(t, err)
	return mgr, m
}

func TestShell_RunsUntilExit(t *testing.T) {
	mgr, m := newExecutor(t)
	in := strings.NewReader("delete_student 1\n\nteleport\nexit\nclear\n")
	var out bytes.Buffer

	err := cli.NewShell(mgr, cli.ShellConfig{In: in, Out: &out, Welcome: "Welcome"}).Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Welcome\nStudents (7):\n"))
	assert.Contains(t, text, "Deleted Student: Alice Pauline")
	assert.Contains(t, text, "Students (6):\n  1. Benson Meier")
	assert.Contains(t, text, "Lessons (1):\n")
	assert.Contains(t, text, "Unknown command\n")
	assert.Contains(t, text, command.MessageExit+"\n")
	assert.NotContains(t, text, command.MessageCleared)

	assert.Equal(t, 6, m.AddressBook().Students().Len())
}

func TestShell_EndOfInputEndsSession(t *testing.T) {
	mgr, _ := newExecutor(t)
	var out bytes.Buffer

	err := cli.NewShell(mgr, cli.ShellConfig{
		In:          strings.NewReader("help"),
		Out:         &out,
		ShowLessons: true,
	}).Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Lessons (3):\n"))
	assert.Contains(t, text, command.HelpText())
	assert.NotContains(t, text, "Students (")
}

func TestShell_StopsOnCancel(t *testing.T) {
	mgr, _ := newExecutor(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cli.NewShell(mgr, cli.ShellConfig{In: pr, Out: io.Discard}).Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not stop after cancel")
	}
}

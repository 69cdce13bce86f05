// Package cli is the text interface: a read-eval-print loop over a reader and
// a writer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/tutorhub/tutorhub/internal/application/command"
	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// Executor runs command lines.
type Executor interface {
	Execute(ctx context.Context, line string) (*command.Result, error)
	Model() model.Model
}

// ShellConfig contains configuration for a Shell.
type ShellConfig struct {
	In  io.Reader
	Out io.Writer

	// Welcome is printed once before the first prompt.
	Welcome string

	// ShowLessons lists lessons instead of students at start.
	ShowLessons bool

	// Logger for structured logging
	Logger *slog.Logger
}

// Shell reads commands line by line until exit, end of input or cancellation.
type Shell struct {
	exec      Executor
	in        *bufio.Scanner
	presenter *Presenter
	welcome   string
	lessons   bool
	logger    *slog.Logger
}

// NewShell creates a Shell around exec.
func NewShell(exec Executor, config ShellConfig) *Shell {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	scanner := bufio.NewScanner(config.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Shell{
		exec:      exec,
		in:        scanner,
		presenter: NewPresenter(config.Out),
		welcome:   config.Welcome,
		lessons:   config.ShowLessons,
		logger:    config.Logger,
	}
}

// Run processes input until exit. It returns nil on exit or end of input and
// ctx.Err() when ctx ends first.
func (s *Shell) Run(ctx context.Context) error {
	if s.welcome != "" {
		s.presenter.Line(s.welcome)
	}
	m := s.exec.Model()
	if s.lessons {
		s.presenter.Lessons(m.FilteredLessons())
	} else {
		s.presenter.Students(m.FilteredStudents())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for s.in.Scan() {
			select {
			case lines <- s.in.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- s.in.Err()
	}()

	for {
		s.presenter.Prompt()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				s.presenter.Line("")
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if s.handle(ctx, line) {
				return nil
			}
		}
	}
}

// handle executes one line and reports whether the session should end.
func (s *Shell) handle(ctx context.Context, line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	res, err := s.exec.Execute(ctx, line)
	if res != nil {
		s.presenter.Result(res, s.exec.Model())
	}
	if err != nil {
		if errors.Is(err, shared.ErrStorage) {
			s.logger.Error("storage failure", "error", err)
		}
		s.presenter.Error(err)
	}
	return res != nil && res.Exit
}

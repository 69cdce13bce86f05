// Package logic runs user input through the parser and the command engine and
// keeps storage in step with the model.
package logic

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tutorhub/tutorhub/internal/application/command"
	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// Parser turns a raw input line into a command.
type Parser interface {
	Parse(line string) (command.Command, error)
}

// ManagerConfig contains the collaborators of a Manager.
type ManagerConfig struct {
	// Model is the state commands run against. Required.
	Model model.Model

	// Parser builds commands from input lines. Required.
	Parser Parser

	// Store is the primary storage. Nil keeps data in memory only.
	Store addressbook.Repository

	// Publisher receives address book events. Nil disables them.
	Publisher shared.EventPublisher

	// Logger for structured logging
	Logger *slog.Logger

	// NewID generates event and correlation ids. Defaults to random UUIDs.
	NewID func() string
}

// Manager executes input lines one at a time.
type Manager struct {
	model     model.Model
	parser    Parser
	store     addressbook.Repository
	publisher shared.EventPublisher
	logger    *slog.Logger
	newID     func() string
}

// NewManager creates a Manager.
func NewManager(config ManagerConfig) (*Manager, error) {
	if config.Model == nil {
		return nil, errors.New("logic: model is required")
	}
	if config.Parser == nil {
		return nil, errors.New("logic: parser is required")
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.NewID == nil {
		config.NewID = uuid.NewString
	}
	return &Manager{
		model:     config.Model,
		parser:    config.Parser,
		store:     config.Store,
		publisher: config.Publisher,
		logger:    config.Logger,
		newID:     config.NewID,
	}, nil
}

// Model returns the model commands run against.
func (m *Manager) Model() model.Model { return m.model }

// Execute parses and runs line.
//
// A parse or command failure returns a nil result and leaves the model as it
// was. When the command changed the data, the new state is saved to the
// primary store. A failed save is returned as an ErrStorage error together with
// the result: the command itself stays applied.
func (m *Manager) Execute(ctx context.Context, line string) (*command.Result, error) {
	start := time.Now()
	correlationID := m.newID()
	word := commandWord(line)
	log := m.logger.With("command", word, "correlation_id", correlationID)

	cmd, err := m.parser.Parse(line)
	if err != nil {
		m.reject(log, correlationID, word, err, start)
		return nil, err
	}

	before := m.model.Version()
	result, err := cmd.Execute(m.model)
	if err != nil {
		m.reject(log, correlationID, word, err, start)
		return nil, err
	}

	version := m.model.Version()
	if version == before {
		log.Debug("command applied", "outcome", "applied", "changed", false, "latency", time.Since(start))
		return result, nil
	}

	state := snapshotOf(m.model.AddressBook())
	saveErr := m.save(ctx, state)
	ev := addressbook.NewChangedEvent(m.newID(), word, version, state)
	ev.BaseEvent = ev.BaseEvent.WithCorrelationID(correlationID)
	m.publish(log, ev)

	if saveErr != nil {
		log.Error("command applied but not saved",
			"outcome", "applied",
			"version", version,
			"latency", time.Since(start),
			"error", saveErr,
		)
		return result, saveErr
	}
	log.Info("command applied",
		"outcome", "applied",
		"version", version,
		"latency", time.Since(start),
	)
	return result, nil
}

func (m *Manager) save(ctx context.Context, state addressbook.Snapshot) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(ctx, state); err != nil {
		return shared.WrapError("storage", "Save", shared.ErrStorage,
			"Could not save data to storage: "+err.Error(), err)
	}
	return nil
}

func (m *Manager) reject(log *slog.Logger, correlationID, word string, err error, start time.Time) {
	log.Info("command rejected",
		"outcome", "rejected",
		"reason", shared.UserMessage(err),
		"latency", time.Since(start),
	)
	ev := addressbook.NewCommandRejectedEvent(m.newID(), word, shared.UserMessage(err))
	ev.BaseEvent = ev.BaseEvent.WithCorrelationID(correlationID)
	m.publish(log, ev)
}

func (m *Manager) publish(log *slog.Logger, event shared.Event) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(event); err != nil {
		log.Warn("event not published", "event_type", event.EventType(), "error", err)
	}
}

// commandWord is the first word of line, used to label logs and events.
func commandWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func snapshotOf(ro addressbook.ReadOnly) addressbook.Snapshot {
	if s, ok := ro.(addressbook.Snapshot); ok {
		return s
	}
	return addressbook.NewSnapshot(ro.Students().Slice(), ro.Lessons().Slice())
}

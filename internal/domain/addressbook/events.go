package addressbook

import (
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN EVENTS
// Published by the logic layer once a state is complete, so that secondary
// stores and other listeners can follow the address book.
// ══════════════════════════════════════════════════════════════════════════════

// AggregateID is the identifier all address book events carry. There is one
// address book per user.
const AggregateID = "addressbook"

// ChangedEvent reports that a command changed the address book.
type ChangedEvent struct {
	shared.BaseEvent

	// Command is the command word that caused the change.
	Command string

	// BookVersion is the in-memory version after the change.
	BookVersion uint64

	// State is the complete address book after the change.
	State Snapshot
}

// NewChangedEvent creates the event. id must be unique per event.
func NewChangedEvent(id, command string, version uint64, state Snapshot) ChangedEvent {
	return ChangedEvent{
		BaseEvent:   shared.NewBaseEvent(id, shared.EventAddressBookChanged, AggregateID),
		Command:     command,
		BookVersion: version,
		State:       state,
	}
}

// Payload implements shared.Event.
func (e ChangedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event_id": e.ID,
		"command":  e.Command,
		"version":  e.BookVersion,
		"students": e.State.Students().Len(),
		"lessons":  e.State.Lessons().Len(),
	}
}

// LoadedEvent reports that the address book was read from storage at startup.
type LoadedEvent struct {
	shared.BaseEvent

	// Source names the store the data came from.
	Source string

	// State is the loaded address book.
	State Snapshot
}

// NewLoadedEvent creates the event.
func NewLoadedEvent(id, source string, state Snapshot) LoadedEvent {
	return LoadedEvent{
		BaseEvent: shared.NewBaseEvent(id, shared.EventAddressBookLoaded, AggregateID),
		Source:    source,
		State:     state,
	}
}

// Payload implements shared.Event.
func (e LoadedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event_id": e.ID,
		"source":   e.Source,
		"students": e.State.Students().Len(),
		"lessons":  e.State.Lessons().Len(),
	}
}

// CommandRejectedEvent reports that a command failed without changing anything.
type CommandRejectedEvent struct {
	shared.BaseEvent

	Command string
	Reason  string
}

// NewCommandRejectedEvent creates the event.
func NewCommandRejectedEvent(id, command, reason string) CommandRejectedEvent {
	return CommandRejectedEvent{
		BaseEvent: shared.NewBaseEvent(id, shared.EventCommandRejected, AggregateID),
		Command:   command,
		Reason:    reason,
	}
}

// Payload implements shared.Event.
func (e CommandRejectedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event_id": e.ID,
		"command":  e.Command,
		"reason":   e.Reason,
	}
}

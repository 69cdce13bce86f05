package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/pkg/circuitbreaker"
	"github.com/tutorhub/tutorhub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// MIRROR DISPATCHER
// Copies every published address book state into the secondary stores.
// Writes are retried with backoff; a write that still fails lands in the dead
// letter queue and the mirror catches up with the next state. A mirror that
// keeps failing is skipped by its circuit breaker until the cooldown passes.
// ══════════════════════════════════════════════════════════════════════════════

// MirrorDispatcher subscribes mirrors to address book events.
type MirrorDispatcher struct {
	mirrors     []*mirrorState
	timeout     time.Duration
	retryOpts   []retry.Option
	deadLetterQ *DeadLetterQueue
	logger      *slog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

// mirrorState serializes writes into one mirror and remembers the newest
// version it holds, so a late older state never overwrites a newer one.
type mirrorState struct {
	mu      sync.Mutex
	mirror  addressbook.Mirror
	breaker *circuitbreaker.CircuitBreaker
	written bool
	version uint64
}

// MirrorDispatcherConfig contains configuration for the MirrorDispatcher.
type MirrorDispatcherConfig struct {
	// Mirrors receive every state.
	Mirrors []addressbook.Mirror

	// WriteTimeout bounds one attempt to write a mirror.
	WriteTimeout time.Duration

	// RetryOptions override the default mirror retry policy.
	RetryOptions []retry.Option

	// BreakerThreshold is the number of failed writes in a row that opens a
	// mirror's circuit.
	BreakerThreshold int

	// BreakerCooldown is how long an open mirror is skipped.
	BreakerCooldown time.Duration

	// DeadLetterQueueSize is the max size of the DLQ
	DeadLetterQueueSize int

	// Logger for structured logging
	Logger *slog.Logger
}

// NewMirrorDispatcher creates a dispatcher for the configured mirrors.
func NewMirrorDispatcher(config MirrorDispatcherConfig) *MirrorDispatcher {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 5 * time.Second
	}
	if config.DeadLetterQueueSize <= 0 {
		config.DeadLetterQueueSize = 100
	}
	if config.BreakerThreshold <= 0 {
		config.BreakerThreshold = 3
	}
	if config.BreakerCooldown <= 0 {
		config.BreakerCooldown = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &MirrorDispatcher{
		timeout:     config.WriteTimeout,
		retryOpts:   config.RetryOptions,
		deadLetterQ: NewDeadLetterQueue(config.DeadLetterQueueSize),
		logger:      config.Logger,
		ctx:         ctx,
		cancel:      cancel,
	}
	onStateChange := func(name string, from, to circuitbreaker.State) {
		d.logger.Warn("mirror circuit changed", "breaker", name, "from", from.String(), "to", to.String())
	}
	for _, m := range config.Mirrors {
		if m == nil {
			continue
		}
		d.mirrors = append(d.mirrors, &mirrorState{
			mirror:  m,
			breaker: circuitbreaker.MirrorBreaker(m.Name(), config.BreakerThreshold, config.BreakerCooldown, onStateChange),
		})
	}
	return d
}

// Start subscribes the dispatcher to the address book events on bus.
func (d *MirrorDispatcher) Start(bus shared.EventSubscriber) error {
	if len(d.mirrors) == 0 {
		return nil
	}
	for _, t := range []shared.EventType{shared.EventAddressBookChanged, shared.EventAddressBookLoaded} {
		if err := bus.Subscribe(t, d.Handle); err != nil {
			return fmt.Errorf("subscribe %s: %w", t, err)
		}
	}
	return nil
}

// Stop cancels in-flight retries.
func (d *MirrorDispatcher) Stop() {
	d.cancel()
}

// Handle writes the state carried by event into every mirror. Other events are
// ignored.
func (d *MirrorDispatcher) Handle(event shared.Event) error {
	var (
		state   addressbook.Snapshot
		version uint64
	)
	switch e := event.(type) {
	case addressbook.ChangedEvent:
		state, version = e.State, e.BookVersion
	case addressbook.LoadedEvent:
		state = e.State
	default:
		return nil
	}

	var errs []error
	for _, ms := range d.mirrors {
		if err := d.sync(ms, event, state, version); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *MirrorDispatcher) sync(ms *mirrorState, event shared.Event, state addressbook.Snapshot, version uint64) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	name := ms.mirror.Name()
	if ms.written && version < ms.version {
		d.logger.Debug("skipping stale state", "mirror", name, "version", version, "held", ms.version)
		return nil
	}

	attempts := 0
	r := retry.MirrorRetrier(func(attempt int, err error, delay time.Duration) {
		d.logger.Warn("mirror write failed, retrying",
			"mirror", name,
			"attempt", attempt,
			"backoff", delay,
			"error", err,
		)
	}, d.retryOpts...)
	err := ms.breaker.Execute(d.ctx, func(ctx context.Context) error {
		return r.Do(ctx, func(ctx context.Context) error {
			attempts++
			ctx, cancel := context.WithTimeout(ctx, d.timeout)
			defer cancel()
			return ms.mirror.Save(ctx, state)
		})
	})
	if circuitbreaker.IsRejection(err) {
		d.logger.Debug("mirror skipped, circuit open", "mirror", name, "version", version)
	}
	if err != nil {
		d.deadLetterQ.Add(DeadLetterEntry{
			Mirror:    name,
			EventID:   eventID(event),
			EventType: event.EventType(),
			Version:   version,
			Error:     err,
			Attempts:  attempts,
			FailedAt:  time.Now(),
		})
		return fmt.Errorf("mirror %s: %w", name, err)
	}

	ms.written = true
	ms.version = version
	d.logger.Debug("mirror updated", "mirror", name, "version", version, "attempts", attempts)
	return nil
}

// DeadLetters returns the writes that failed after all retries.
func (d *MirrorDispatcher) DeadLetters() []DeadLetterEntry {
	return d.deadLetterQ.List()
}

func eventID(event shared.Event) string {
	if id, ok := event.Payload()["event_id"].(string); ok {
		return id
	}
	return ""
}

// ══════════════════════════════════════════════════════════════════════════════
// DEAD LETTER QUEUE
// ══════════════════════════════════════════════════════════════════════════════

// DeadLetterEntry records a mirror write that failed for good.
type DeadLetterEntry struct {
	Mirror    string
	EventID   string
	EventType shared.EventType
	Version   uint64
	Error     error
	Attempts  int
	FailedAt  time.Time
}

// DeadLetterQueue keeps the most recent failures, dropping the oldest first.
type DeadLetterQueue struct {
	mu      sync.Mutex
	entries []DeadLetterEntry
	maxSize int
}

// NewDeadLetterQueue creates a queue holding at most maxSize entries.
func NewDeadLetterQueue(maxSize int) *DeadLetterQueue {
	return &DeadLetterQueue{maxSize: maxSize}
}

// Add appends entry.
func (q *DeadLetterQueue) Add(entry DeadLetterEntry) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) >= q.maxSize {
		q.entries = q.entries[1:]
	}
	q.entries = append(q.entries, entry)
}

// List returns a copy of the entries, oldest first.
func (q *DeadLetterQueue) List() []DeadLetterEntry {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]DeadLetterEntry(nil), q.entries...)
}

// Len returns the number of entries.
func (q *DeadLetterQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

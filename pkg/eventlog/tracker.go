package eventlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Tracker is the write side of the event log. Every append stamps a fresh
// id and timestamp; every failure is logged and swallowed so tracking can
// never break the operation that emitted the event.
type Tracker struct {
	storage Storage
	log     *slog.Logger
	now     func() time.Time
}

// TrackerOption configures a Tracker during construction.
type TrackerOption func(*Tracker)

// WithLogger sets the logger used to report swallowed append failures.
func WithLogger(log *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithClock overrides the timestamp source for deterministic tests.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTracker creates a Tracker over the given storage. Panics on nil
// storage to fail fast during initialization.
func NewTracker(storage Storage, opts ...TrackerOption) *Tracker {
	if storage == nil {
		panic("eventlog: storage is required")
	}
	t := &Tracker{
		storage: storage,
		log:     slog.Default(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Track appends one event with a best-effort-unique id and a fresh
// timestamp. Fire-and-forget: storage failures are logged, never returned.
func (t *Tracker) Track(ctx context.Context, name string, metadata map[string]any) {
	event := Event{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: t.now(),
		Metadata:  metadata,
	}
	if err := t.storage.Append(ctx, event); err != nil {
		t.log.DebugContext(ctx, "event append dropped", "event", name, "error", err)
	}
}

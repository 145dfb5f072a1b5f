package eventlog

import (
	"context"
	"slices"
	"sync"
)

// MemoryStorage keeps the log in a capacity-bounded in-memory slice.
type MemoryStorage struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
}

// NewMemoryStorage creates an in-memory log. A capacity of zero or less
// falls back to DefaultCapacity.
func NewMemoryStorage(capacity int) *MemoryStorage {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStorage{capacity: capacity}
}

// Append adds an event, evicting the oldest entries once the log exceeds
// its capacity.
func (s *MemoryStorage) Append(ctx context.Context, event Event) error {
	if event.Name == "" {
		return ErrInvalidEvent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	if excess := len(s.events) - s.capacity; excess > 0 {
		s.events = slices.Delete(s.events, 0, excess)
	}
	return nil
}

// List returns a copy of the log, oldest-first.
func (s *MemoryStorage) List(ctx context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events), nil
}

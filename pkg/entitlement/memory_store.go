package entitlement

import (
	"context"
	"sync"
)

// MemoryStore keeps the record in process memory. Used by tests and as a
// throwaway backend when persistence is not configured.
type MemoryStore struct {
	mu  sync.RWMutex
	sub *Subscription
}

// NewMemoryStore returns an empty in-memory store. Loading before the first
// save yields the default record.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored record, or defaults when nothing has
// been saved yet.
func (s *MemoryStore) Load(ctx context.Context) (*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sub == nil {
		return DefaultSubscription(), nil
	}
	return s.sub.Clone(), nil
}

// Save stores a copy of the record. Copying on both sides keeps callers
// from mutating store state through retained pointers.
func (s *MemoryStore) Save(ctx context.Context, sub *Subscription) error {
	if sub == nil {
		return ErrInvalidConfig
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sub = sub.Clone()
	return nil
}

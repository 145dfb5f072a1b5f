package eventlog

import "context"

// Storage persists the bounded event sequence. Implementations own the
// capacity bound: Append must evict oldest-first once the log is full.
//
// List returns events oldest-first. It exists for tests and diagnostics;
// entitlement logic never reads the log back.
type Storage interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}

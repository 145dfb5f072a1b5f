package eventlog

import "errors"

var (
	// ErrStorageUnavailable indicates the storage backend rejected an
	// operation. The Tracker swallows it; it surfaces only through direct
	// Storage use.
	ErrStorageUnavailable = errors.New("event log storage unavailable")

	// ErrInvalidEvent indicates an event without a name was rejected.
	ErrInvalidEvent = errors.New("invalid event: name is required")
)

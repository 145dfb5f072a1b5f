package entitlement

import "errors"

var (
	// ErrInvalidTransition indicates a lifecycle action was fired from a
	// status that has no edge for it in the transition table.
	ErrInvalidTransition = errors.New("invalid subscription status transition")

	// ErrSaveFailed indicates the store could not persist the record. The
	// public operations swallow it after logging; it surfaces only through
	// SaveSubscription for callers that opt into observing persistence.
	ErrSaveFailed = errors.New("failed to persist subscription record")

	// ErrInvalidConfig indicates a store was constructed with unusable
	// configuration (empty path, nil client, unknown driver).
	ErrInvalidConfig = errors.New("invalid entitlement store configuration")

	// ErrStoreUnavailable indicates the storage backend could not be
	// reached. Loads degrade to defaults instead of surfacing this to
	// business logic.
	ErrStoreUnavailable = errors.New("entitlement store unavailable")
)

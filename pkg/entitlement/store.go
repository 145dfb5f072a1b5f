package entitlement

import "context"

// Store persists the singleton Subscription record as one atomic blob.
//
// Load must never surface corruption: implementations return
// DefaultSubscription() when the underlying data is missing or unparsable.
// A non-nil error from Load means the backend itself was unreachable; the
// returned record is still usable (defaults) so callers that honor the
// never-fail read contract can ignore the error.
//
// Save overwrites the full record. There is no partial-field update
// primitive: every mutation is read-modify-write against the whole blob.
type Store interface {
	Load(ctx context.Context) (*Subscription, error)
	Save(ctx context.Context, sub *Subscription) error
}

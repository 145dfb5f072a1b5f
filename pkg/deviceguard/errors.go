package deviceguard

import "errors"

var (
	// ErrInvalidCatalog indicates an unparsable or inconsistent limit
	// catalog.
	ErrInvalidCatalog = errors.New("invalid device limit catalog")
)

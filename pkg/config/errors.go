package config

import "errors"

var (
	// ErrNilPointer indicates Load was called with a nil config pointer.
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrParseFailed indicates environment variables could not be parsed
	// into the config struct.
	ErrParseFailed = errors.New("config: failed to parse environment")
)

package sharedstr

import "errors"

// Errors returned by String operations.
var (
	// ErrOutOfRange indicates a checked index or position is outside the
	// valid range of the value.
	ErrOutOfRange = errors.New("index out of range")
)

package errors

import "errors"

// Errors raised outside the registry.
var (
	// ErrConfig indicates the resolved configuration is unusable.
	ErrConfig = errors.New("invalid configuration")

	// ErrInput indicates the console could not be read or written.
	ErrInput = errors.New("console input failed")
)

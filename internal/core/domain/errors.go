package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors, which adapters wrap
// around one of these sentinels.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedMode indicates an unknown frequency store mode.
	ErrUnsupportedMode = errors.New("unsupported store mode")

	// Run Errors.

	// ErrInputUnreadable indicates the input file is missing, unreadable
	// or permission-denied. The run produces no output.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrStoreUnavailable indicates the persistent store could not be opened
	// or a write to it failed. There is no fallback to the in-memory store.
	ErrStoreUnavailable = errors.New("frequency store unavailable")

	// ErrCapacityExceeded indicates the in-memory table cannot grow any further.
	ErrCapacityExceeded = errors.New("frequency store capacity exceeded")
)

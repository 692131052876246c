package store

import "errors"

// Sentinel error kinds. Store methods wrap these with entity context so
// callers can branch with errors.Is while still getting a readable message.
var (
	// ErrNotFound is returned when an operation references an entity ID
	// that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalid is returned when a user-supplied field is malformed or
	// empty.
	ErrInvalid = errors.New("invalid input")
)

package htable

import "errors"

var (
	// ErrInvalidArgument is returned for programmer errors: a nil or closed
	// table, a non-positive bucket count, missing strategy functions at
	// construction, or a nil value passed to Insert.
	ErrInvalidArgument = errors.New("htable: invalid argument")

	// ErrAllocationFailed is returned when the ownership policy fails to
	// copy a key or value. It is distinct from ErrInvalidArgument so
	// callers can tell resource exhaustion from misuse.
	ErrAllocationFailed = errors.New("htable: allocation failed")

	// ErrNotFound is returned by Remove when no entry matches the key.
	ErrNotFound = errors.New("htable: not found")
)

package domain

import "errors"

// Sentinel errors shared across the domain.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRosterMissing is returned when the roster source cannot be read
	// at all. Imports abort instead of partially applying.
	ErrRosterMissing = errors.New("roster source missing")

	// ErrDuplicateEmail is returned when an insert collides with the
	// unique guest email index. Imports treat it as a merge, not a failure.
	ErrDuplicateEmail = errors.New("email already on roster")
)

package store

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition is returned when a sent email status change
	// is not allowed from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

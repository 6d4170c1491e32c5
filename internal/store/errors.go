package store

import "errors"

var (
	// ErrNotFound is returned when a queried record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a create collides with an existing
	// unique value.
	ErrDuplicate = errors.New("record already exists")

	// ErrReferenced is returned when a delete or insert violates a
	// referential constraint.
	ErrReferenced = errors.New("record is referenced by other records")
)

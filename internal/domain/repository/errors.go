package repository

import "errors"

var (
	// ErrNotFound is returned when a single-resource lookup yields nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned for identifiers that are not valid 24-char
	// hex ObjectIDs, before any store round-trip happens.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicate is returned when a uniqueness constraint rejects a write.
	ErrDuplicate = errors.New("duplicate")
)

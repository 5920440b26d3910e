package domain

import "errors"

// Domain errors represent error conditions in the mbexport domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrLocationNotFound is returned when a storage-location filter names a
	// mailbox database that does not exist in the directory.
	ErrLocationNotFound = errors.New("mbexport: storage location not found")

	// ErrUnknownCategory is returned when a category string does not match
	// any known recipient category.
	ErrUnknownCategory = errors.New("mbexport: unknown recipient category")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("mbexport: invalid configuration")
)

package models

import "errors"

// Common errors for registry operations.
var (
	// Archiver errors
	ErrArchiverNotFound = errors.New("archiver not found")
	ErrHostRequired     = errors.New("archiver host is required")

	// Row shaping errors
	ErrNilArchiver    = errors.New("archiver must not be nil")
	ErrSchemaMismatch = errors.New("result schema does not match the archiver row contract")
)

package service

import "errors"

var (
	// ErrValidation covers rejected writes and, deliberately, every
	// storage-layer failure on the write path.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers a missing id and an empty collection on read.
	ErrNotFound = errors.New("resource not found")
)

package core

import "errors"

// Sentinel errors for export operations.
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrSerialization = errors.New("document serialization failed")
)

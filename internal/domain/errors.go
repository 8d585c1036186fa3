package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrShowNotFound indicates the requested show does not exist
	ErrShowNotFound = errors.New("show not found")

	// ErrSourceOffline indicates the catalog source is unreachable
	ErrSourceOffline = errors.New("catalog source is unreachable")
)

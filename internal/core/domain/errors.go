package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or out-of-range input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTool indicates a request named an operation that is not provided.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrCatalogUnavailable indicates no catalog has been configured or loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrUnsupportedFormat indicates a catalog artifact of an unknown format.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Package common defines shared constants and sentinel errors used across
// the dockeep client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Session lifecycle errors.
	ErrorNoSession = errors.New("no saved session")

	// Batch upload errors.
	ErrorNoPerimeter = errors.New("no perimeter selected")
	ErrorEmptyBatch  = errors.New("batch contains no items")
)

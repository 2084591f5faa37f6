// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDataType is returned when an identifier or body field fails
	// type coercion, e.g. a non-numeric id or a non-integer vote delta.
	// Detected before any storage access.
	ErrInvalidDataType = errors.New("input uses invalid data type")

	// ErrInvalidID is returned when a resource identifier fails to parse
	// as an integer.
	ErrInvalidID = fmt.Errorf("%w: identifier", ErrInvalidDataType)

	// ErrMissingFields is returned when a posted body lacks one or more
	// required keys. Checked before any reference validation.
	ErrMissingFields = errors.New("posted body missing required fields")
)

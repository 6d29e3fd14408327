// Package common defines sentinel errors shared across handlers, services
// and repositories. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrMissingCredential = errors.New("not authenticated")
	ErrInvalidCredential = errors.New("invalid token")

	// Authorization errors.
	ErrNotOwner = errors.New("not authorized to delete this resource")

	// Request validation errors.
	ErrValidation = errors.New("validation error")
)

// Package service provides the application-level task service that enforces
// business rules and orchestrates the store and listing cache.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is() to check for specific conditions; the API layer
// maps them to HTTP status codes.
var (
	// ErrTaskNotFound indicates that no task exists for a well-formed ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidID indicates a malformed task identifier. It is detected
	// before any store access. API layer should map this to HTTP 400.
	ErrInvalidID = errors.New("invalid task ID")

	// ErrValidation indicates malformed, missing or out-of-range input.
	// It is usually wrapped with a more specific message and is detected
	// before any mutation is attempted. API layer should map this to
	// HTTP 400.
	ErrValidation = errors.New("validation failed")
)

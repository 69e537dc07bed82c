// Package apperrors defines the sentinel error categories shared by the
// domain services and the HTTP boundary. Services wrap these with context via
// fmt.Errorf("...: %w", ...); handlers classify with errors.Is and map each
// category to a status code.
package apperrors

import "errors"

var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized marks a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks an authenticated caller acting outside their rights.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks an unresolved identifier.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation (duplicate email, duplicate
	// pending swap request).
	ErrConflict = errors.New("conflict")
)

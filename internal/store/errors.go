// Package store defines the persistence interfaces and errors shared by all
// store implementations.
package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a company with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrCompanyNotFound indicates that the requested company account does
	// not exist in the store.
	ErrCompanyNotFound = fmt.Errorf("%w: company", ErrNotFound)

	// ErrJobNotFound indicates that no job matches the requested filter.
	// Ownership-scoped lookups return this for both missing and non-owned
	// jobs, so callers cannot distinguish the two cases.
	ErrJobNotFound = fmt.Errorf("%w: job", ErrNotFound)

	// ErrCVNotFound indicates that the requested CV does not exist in the store.
	ErrCVNotFound = fmt.Errorf("%w: cv", ErrNotFound)

	// ErrCityNotFound indicates that the requested city does not exist in the store.
	ErrCityNotFound = fmt.Errorf("%w: city", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a company account with the given email
	// already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidCVStatus is returned when a CV review status is not valid.
	ErrInvalidCVStatus = errors.New("invalid CV status")
)

// Package service implements the account-scoped business operations: company
// authentication, ownership-scoped job management, public aggregation views,
// and the shared pagination helper.
package service

import "errors"

// Domain failure taxonomy. Every operation reports failures through these
// sentinels so callers and tests can assert on the kind rather than the
// message; the API boundary maps each kind to its response envelope.
var (
	// ErrDuplicateEmail indicates a registration against an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrAccountNotFound indicates a login against an unregistered email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidPassword indicates a login with a wrong password.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUnauthenticated indicates a missing, invalid, or expired session
	// token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrJobNotFound indicates that no job matches both the requested ID
	// and the caller's identity. A job owned by another company yields the
	// same error as a missing job, so existence cannot be probed.
	ErrJobNotFound = errors.New("job not found")

	// ErrCVNotFound indicates that no CV matches both the requested ID and
	// the caller's identity, with the same non-probing property as
	// ErrJobNotFound.
	ErrCVNotFound = errors.New("cv not found")

	// ErrCompanyNotFound indicates a public lookup of a nonexistent company.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInvalidInput indicates a malformed or store-rejected payload. The
	// failure is reported generically, without internal validation detail.
	ErrInvalidInput = errors.New("invalid input")
)

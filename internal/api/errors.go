package api

import (
	"errors"
	"net/http"

	"github.com/openhire/jobboard-api/internal/service"
)

// mapServiceError translates a service-layer error into the HTTP status,
// machine-readable kind, and client-facing message of the error envelope.
// Unknown errors collapse to a generic 500 so internals never leak.
func mapServiceError(err error) (status int, kind, message string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input", "Invalid input"
	case errors.Is(err, service.ErrDuplicateEmail):
		return http.StatusConflict, "duplicate_email", "Email is already registered"
	case errors.Is(err, service.ErrAccountNotFound):
		return http.StatusNotFound, "account_not_found", "Email is not registered"
	case errors.Is(err, service.ErrInvalidPassword):
		return http.StatusUnauthorized, "invalid_credentials", "Incorrect password"
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "Authentication required"
	case errors.Is(err, service.ErrJobNotFound):
		return http.StatusNotFound, "job_not_found", "Job not found"
	case errors.Is(err, service.ErrCVNotFound):
		return http.StatusNotFound, "cv_not_found", "CV not found"
	case errors.Is(err, service.ErrCompanyNotFound):
		return http.StatusNotFound, "company_not_found", "Company not found"
	default:
		return http.StatusInternalServerError, "internal_error", "An unexpected error occurred"
	}
}

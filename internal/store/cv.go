package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
)

// CVStore defines the interface for CV persistence.
type CVStore interface {
	// Create saves a new CV to the store.
	Create(ctx context.Context, cv *domain.CV) error

	// GetByID retrieves a CV by its unique ID.
	// Returns ErrCVNotFound if the CV does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CV, error)

	// ListByJobIDs retrieves all CVs whose job is in the given set, ordered
	// by creation time descending. An empty set yields an empty slice.
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]*domain.CV, error)

	// SetViewed updates the viewed flag of a CV.
	// Returns ErrCVNotFound if the CV does not exist.
	SetViewed(ctx context.Context, id uuid.UUID, viewed bool) error

	// SetStatus updates the review status of a CV.
	// Returns ErrCVNotFound if the CV does not exist.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.CVStatus) error
}

package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
)

// JobStore defines the interface for job posting persistence.
//
// All mutating operations are keyed by (id, companyID) so a company can only
// ever touch its own jobs. A job owned by another company is reported as
// ErrJobNotFound, identical to a missing job.
type JobStore interface {
	// Create saves a new job to the store.
	// Returns ErrInvalidEntity if the job violates a persistence constraint.
	Create(ctx context.Context, job *domain.Job) error

	// GetByID retrieves a job by its unique ID regardless of owner.
	// Returns ErrJobNotFound if the job does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)

	// GetForCompany retrieves a job matching both id and owning company.
	// Returns ErrJobNotFound if no job matches the pair.
	GetForCompany(ctx context.Context, id, companyID uuid.UUID) (*domain.Job, error)

	// Update persists changes to a job, keyed by (job.ID, job.CompanyID).
	// Returns ErrJobNotFound if no job matches the pair.
	Update(ctx context.Context, job *domain.Job) error

	// Delete removes a job, keyed by (id, companyID).
	// Returns ErrJobNotFound if no job matches the pair.
	Delete(ctx context.Context, id, companyID uuid.UUID) error

	// ListByCompany retrieves a page of the company's jobs ordered by
	// creation time descending.
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.Job, error)

	// ListAllByCompany retrieves all of the company's jobs ordered by
	// creation time descending.
	ListAllByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Job, error)

	// CountByCompany returns the number of jobs owned by the company.
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
}

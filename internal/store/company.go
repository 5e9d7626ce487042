package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
)

// CompanyStore defines the interface for company account persistence.
type CompanyStore interface {
	// Create saves a new company account to the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, account *domain.CompanyAccount) error

	// GetByID retrieves a company account by its unique ID.
	// Returns ErrCompanyNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyAccount, error)

	// GetByEmail retrieves a company account by its email address.
	// Returns ErrCompanyNotFound if the account does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.CompanyAccount, error)

	// Update modifies an existing company account's profile fields.
	// The caller must provide a complete account including HashedPassword.
	// Returns ErrCompanyNotFound if the account does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, account *domain.CompanyAccount) error

	// List retrieves up to limit company accounts. No ordering is guaranteed.
	List(ctx context.Context, limit int) ([]*domain.CompanyAccount, error)
}

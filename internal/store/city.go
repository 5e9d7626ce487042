package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
)

// CityStore defines read-only access to city reference data.
type CityStore interface {
	// GetByID retrieves a city by its unique ID.
	// Returns ErrCityNotFound if the city does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error)

	// List retrieves all cities ordered by name.
	List(ctx context.Context) ([]*domain.City, error)
}

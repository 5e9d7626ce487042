package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/logger"
	"github.com/openhire/jobboard-api/internal/store"
)

// CityStore implements the store.CityStore interface using a PostgreSQL
// database as the storage backend. Cities are seeded by migration and never
// mutated at runtime.
type CityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCityStore creates a new PostgreSQL implementation of the CityStore
// interface.
func NewCityStore(db store.DBTX, logger *slog.Logger) *CityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CityStore{
		db:     db,
		logger: logger.With(slog.String("component", "city_store")),
	}
}

// Ensure CityStore implements store.CityStore interface
var _ store.CityStore = (*CityStore)(nil)

// GetByID implements store.CityStore.GetByID.
func (s *CityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var city domain.City
	query := `SELECT id, name FROM cities WHERE id = $1`
	err := s.db.QueryRowContext(ctx, query, id).Scan(&city.ID, &city.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCityNotFound
		}
		log.Error("failed to get city by ID",
			slog.String("error", err.Error()),
			slog.String("city_id", id.String()))
		return nil, MapError(err)
	}

	return &city, nil
}

// List implements store.CityStore.List.
func (s *CityStore) List(ctx context.Context) ([]*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM cities ORDER BY name`)
	if err != nil {
		log.Error("failed to list cities", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cities := []*domain.City{}
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			log.Error("failed to scan city row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		cities = append(cities, &city)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return cities, nil
}

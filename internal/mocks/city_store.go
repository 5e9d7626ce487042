package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/store"
)

// MockCityStore is a configurable mock of store.CityStore.
type MockCityStore struct {
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.City, error)
	ListFn    func(ctx context.Context) ([]*domain.City, error)
}

var _ store.CityStore = (*MockCityStore)(nil)

func (m *MockCityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCityNotFound
}

func (m *MockCityStore) List(ctx context.Context) ([]*domain.City, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.City{}, nil
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/store"
)

// MockCVStore is a configurable mock of store.CVStore.
type MockCVStore struct {
	CreateFn       func(ctx context.Context, cv *domain.CV) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.CV, error)
	ListByJobIDsFn func(ctx context.Context, jobIDs []uuid.UUID) ([]*domain.CV, error)
	SetViewedFn    func(ctx context.Context, id uuid.UUID, viewed bool) error
	SetStatusFn    func(ctx context.Context, id uuid.UUID, status domain.CVStatus) error
}

var _ store.CVStore = (*MockCVStore)(nil)

func (m *MockCVStore) Create(ctx context.Context, cv *domain.CV) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, cv)
	}
	return nil
}

func (m *MockCVStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CV, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCVNotFound
}

func (m *MockCVStore) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]*domain.CV, error) {
	if m.ListByJobIDsFn != nil {
		return m.ListByJobIDsFn(ctx, jobIDs)
	}
	return []*domain.CV{}, nil
}

func (m *MockCVStore) SetViewed(ctx context.Context, id uuid.UUID, viewed bool) error {
	if m.SetViewedFn != nil {
		return m.SetViewedFn(ctx, id, viewed)
	}
	return nil
}

func (m *MockCVStore) SetStatus(ctx context.Context, id uuid.UUID, status domain.CVStatus) error {
	if m.SetStatusFn != nil {
		return m.SetStatusFn(ctx, id, status)
	}
	return nil
}

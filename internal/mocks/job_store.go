package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/store"
)

// MockJobStore is a configurable mock of store.JobStore.
type MockJobStore struct {
	CreateFn           func(ctx context.Context, job *domain.Job) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	GetForCompanyFn    func(ctx context.Context, id, companyID uuid.UUID) (*domain.Job, error)
	UpdateFn           func(ctx context.Context, job *domain.Job) error
	DeleteFn           func(ctx context.Context, id, companyID uuid.UUID) error
	ListByCompanyFn    func(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.Job, error)
	ListAllByCompanyFn func(ctx context.Context, companyID uuid.UUID) ([]*domain.Job, error)
	CountByCompanyFn   func(ctx context.Context, companyID uuid.UUID) (int64, error)
}

var _ store.JobStore = (*MockJobStore)(nil)

func (m *MockJobStore) Create(ctx context.Context, job *domain.Job) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, job)
	}
	return nil
}

func (m *MockJobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrJobNotFound
}

func (m *MockJobStore) GetForCompany(ctx context.Context, id, companyID uuid.UUID) (*domain.Job, error) {
	if m.GetForCompanyFn != nil {
		return m.GetForCompanyFn(ctx, id, companyID)
	}
	return nil, store.ErrJobNotFound
}

func (m *MockJobStore) Update(ctx context.Context, job *domain.Job) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, job)
	}
	return nil
}

func (m *MockJobStore) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, companyID)
	}
	return nil
}

func (m *MockJobStore) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.Job, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID, limit, offset)
	}
	return []*domain.Job{}, nil
}

func (m *MockJobStore) ListAllByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Job, error) {
	if m.ListAllByCompanyFn != nil {
		return m.ListAllByCompanyFn(ctx, companyID)
	}
	return []*domain.Job{}, nil
}

func (m *MockJobStore) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	if m.CountByCompanyFn != nil {
		return m.CountByCompanyFn(ctx, companyID)
	}
	return 0, nil
}

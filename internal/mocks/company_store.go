// Package mocks provides test doubles for the store and auth interfaces.
// Each mock exposes function fields so a test can stub exactly the calls it
// cares about; unstubbed calls return a zero value.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/store"
)

// MockCompanyStore is a configurable mock of store.CompanyStore.
type MockCompanyStore struct {
	CreateFn     func(ctx context.Context, account *domain.CompanyAccount) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.CompanyAccount, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.CompanyAccount, error)
	UpdateFn     func(ctx context.Context, account *domain.CompanyAccount) error
	ListFn       func(ctx context.Context, limit int) ([]*domain.CompanyAccount, error)
}

var _ store.CompanyStore = (*MockCompanyStore)(nil)

func (m *MockCompanyStore) Create(ctx context.Context, account *domain.CompanyAccount) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}
	return nil
}

func (m *MockCompanyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyAccount, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCompanyNotFound
}

func (m *MockCompanyStore) GetByEmail(ctx context.Context, email string) (*domain.CompanyAccount, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrCompanyNotFound
}

func (m *MockCompanyStore) Update(ctx context.Context, account *domain.CompanyAccount) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, account)
	}
	return nil
}

func (m *MockCompanyStore) List(ctx context.Context, limit int) ([]*domain.CompanyAccount, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit)
	}
	return []*domain.CompanyAccount{}, nil
}

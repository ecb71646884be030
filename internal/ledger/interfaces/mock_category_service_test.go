package interfaces

import (
	"context"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	created    *domain.Category
	err        error
}

func (m *MockCategoryService) ListVisible(_ context.Context, _, _ string) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) CreateCustom(_ context.Context, ownerID, name, kind string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.created != nil {
		return m.created, nil
	}
	return &domain.Category{Name: name, Scope: domain.ScopeCustom, OwnerID: &ownerID, Kind: kind}, nil
}

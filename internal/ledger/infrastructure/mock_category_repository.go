package infrastructure

import (
	"context"
	"strings"
	"sync"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

// MockCategoryRepository is an in-memory CategoryRepository for tests. The
// mutex around SaveCustom mirrors the database unique index: concurrent saves
// of the same name resolve to one stored row and one conflict.
type MockCategoryRepository struct {
	mu         sync.Mutex
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryRepository) EnsureGlobalDefaults(_ context.Context, names []string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, name := range names {
		if m.existsLocked("", name, domain.KindExpense) {
			continue
		}
		m.Categories = append(m.Categories, domain.Category{
			Name:  name,
			Scope: domain.ScopeGlobal,
			Kind:  domain.KindExpense,
		})
	}
	return nil
}

func (m *MockCategoryRepository) FindVisible(_ context.Context, ownerID, kind string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var visible []domain.Category
	for _, category := range m.Categories {
		if category.Kind != kind {
			continue
		}
		if category.OwnerID == nil || *category.OwnerID == ownerID {
			visible = append(visible, category)
		}
	}
	return visible, nil
}

func (m *MockCategoryRepository) ExistsVisibleByName(_ context.Context, ownerID, name, kind string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.existsLocked(ownerID, name, kind), nil
}

func (m *MockCategoryRepository) SaveCustom(_ context.Context, category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ownerID := ""
	if category.OwnerID != nil {
		ownerID = *category.OwnerID
	}
	if m.existsLocked(ownerID, category.Name, category.Kind) {
		return ledgerErrors.ErrCategoryAlreadyExists
	}
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) existsLocked(ownerID, name, kind string) bool {
	for _, category := range m.Categories {
		if category.Kind != kind || !strings.EqualFold(category.Name, name) {
			continue
		}
		if category.OwnerID == nil || *category.OwnerID == ownerID {
			return true
		}
	}
	return false
}

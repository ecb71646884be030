package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

// MockEntryRepository is an in-memory EntryRepository for tests.
type MockEntryRepository struct {
	mu      sync.Mutex
	Entries []domain.Entry
	Err     error
}

func (m *MockEntryRepository) Save(_ context.Context, entry domain.Entry) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockEntryRepository) FindByOwner(_ context.Context, ownerID string) ([]domain.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var owned []domain.Entry
	for _, entry := range m.Entries {
		if entry.OwnerID == ownerID {
			owned = append(owned, entry)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		if !owned[i].Date.Equal(owned[j].Date) {
			return owned[i].Date.After(owned[j].Date)
		}
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (m *MockEntryRepository) DeleteByOwnerAndID(_ context.Context, ownerID, entryID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, entry := range m.Entries {
		if entry.OwnerID == ownerID && entry.ID == entryID {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return nil
		}
	}
	return ledgerErrors.ErrEntryNotFound
}

package interfaces

import (
	"context"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/application"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
)

type MockEntryService struct {
	entries   []domain.Entry
	created   *domain.Entry
	err       error
	deleteErr error

	deletedID string
}

func (m *MockEntryService) Create(_ context.Context, ownerID string, input application.CreateEntryInput) (*domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.created != nil {
		return m.created, nil
	}
	entry := domain.Entry{
		OwnerID:  ownerID,
		Title:    input.Title,
		Amount:   input.Amount,
		Type:     input.Type,
		Category: input.Category,
		Date:     input.Date,
	}
	return &entry, nil
}

func (m *MockEntryService) List(_ context.Context, _ string) ([]domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *MockEntryService) Delete(_ context.Context, _, entryID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = entryID
	return nil
}

package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

type CategoryServiceInterface interface {
	IsCategoryVisible(ctx context.Context, ownerID, name, kind string) (bool, error)
}

type EntryService struct {
	repo            domain.EntryRepository
	categoryService CategoryServiceInterface
}

func NewEntryService(repo domain.EntryRepository, categoryService CategoryServiceInterface) *EntryService {
	return &EntryService{repo: repo, categoryService: categoryService}
}

type CreateEntryInput struct {
	Title    string
	Amount   domain.Money
	Type     string
	Category string
	Date     time.Time
}

// Create validates and stores a new entry for the owner. Income entries always
// carry the literal "Income" category regardless of input; expense entries must
// reference a category visible to the owner.
func (s *EntryService) Create(ctx context.Context, ownerID string, input CreateEntryInput) (*domain.Entry, error) {
	now := time.Now().UTC()
	entry := domain.Entry{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(input.Title),
		Amount:    input.Amount,
		Type:      input.Type,
		Category:  strings.TrimSpace(input.Category),
		Date:      input.Date,
		CreatedAt: now,
	}
	if entry.Date.IsZero() {
		entry.Date = now
	}
	if entry.Type == domain.EntryTypeIncome {
		entry.Category = domain.IncomeCategoryTag
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if entry.Type == domain.EntryTypeExpense {
		visible, err := s.categoryService.IsCategoryVisible(ctx, ownerID, entry.Category, domain.KindExpense)
		if err != nil {
			return nil, err
		}
		if !visible {
			return nil, ledgerErrors.ErrUnknownCategory
		}
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) List(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	entries, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return []domain.Entry{}, nil
	}
	return entries, nil
}

// Delete removes the owner's entry. Unknown ids and other owners' ids are
// indistinguishable: both come back as a not-found error.
func (s *EntryService) Delete(ctx context.Context, ownerID, entryID string) error {
	return s.repo.DeleteByOwnerAndID(ctx, ownerID, entryID)
}

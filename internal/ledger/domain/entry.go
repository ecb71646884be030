package domain

import (
	"context"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

const (
	EntryTypeIncome  = "Income"
	EntryTypeExpense = "Expense"
)

const maxTitleLength = 200

type Entry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Title     string    `json:"title"`
	Amount    Money     `json:"amount"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func IsValidEntryType(entryType string) bool {
	return entryType == EntryTypeIncome || entryType == EntryTypeExpense
}

func (e *Entry) Validate() error {
	if e.Title == "" {
		return errors.NewValidationError("Title is required")
	}
	if len(e.Title) > maxTitleLength {
		return errors.NewValidationError("Title must be of length less than 200")
	}
	if !IsValidEntryType(e.Type) {
		return errors.NewValidationError("Type must be 'Income' or 'Expense'")
	}
	if e.Type == EntryTypeExpense && e.Category == "" {
		return errors.ErrCategoryRequired
	}
	return nil
}

type EntryRepository interface {
	Save(ctx context.Context, entry Entry) error
	// FindByOwner returns the owner's entries ordered by date descending,
	// newest insert first on equal dates.
	FindByOwner(ctx context.Context, ownerID string) ([]Entry, error)
	// DeleteByOwnerAndID removes the entry only when it belongs to ownerID.
	// A missing row and another owner's row are both ErrEntryNotFound.
	DeleteByOwnerAndID(ctx context.Context, ownerID, entryID string) error
}

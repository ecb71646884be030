package application

import (
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
)

// Aggregations are pure functions over an already-fetched entry list. They
// never touch storage, never mutate their input and give the same result for
// any permutation of it. An empty list is a valid zero result, not an error.

type Summary struct {
	Income  domain.Money `json:"income"`
	Expense domain.Money `json:"expense"`
	Balance domain.Money `json:"balance"`
}

// Summarize accumulates income and expense totals in cents.
// Balance is always exactly Income - Expense.
func Summarize(entries []domain.Entry) Summary {
	var summary Summary
	for _, entry := range entries {
		switch entry.Type {
		case domain.EntryTypeIncome:
			summary.Income += entry.Amount
		case domain.EntryTypeExpense:
			summary.Expense += entry.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary
}

// SumByCategory totals expense entries per category. Blank or historical
// category values are kept under their literal key so they stay inspectable
// instead of silently vanishing.
func SumByCategory(entries []domain.Entry) map[string]domain.Money {
	totals := make(map[string]domain.Money)
	for _, entry := range entries {
		if entry.Type != domain.EntryTypeExpense {
			continue
		}
		totals[entry.Category] += entry.Amount
	}
	return totals
}

// FilterByDate keeps entries whose date falls on the same UTC calendar day as
// target. Dates are normalized to UTC before comparison so the result does not
// depend on the server's local timezone.
func FilterByDate(entries []domain.Entry, target time.Time) []domain.Entry {
	targetYear, targetMonth, targetDay := target.UTC().Date()
	filtered := make([]domain.Entry, 0)
	for _, entry := range entries {
		year, month, day := entry.Date.UTC().Date()
		if year == targetYear && month == targetMonth && day == targetDay {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// FilterByMonth keeps entries whose date falls in the given month of any year.
// Matching across years is intentional and mirrors the calendar view this
// feeds; scoping by year is an open product question.
func FilterByMonth(entries []domain.Entry, month time.Month) []domain.Entry {
	filtered := make([]domain.Entry, 0)
	for _, entry := range entries {
		if entry.Date.UTC().Month() == month {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

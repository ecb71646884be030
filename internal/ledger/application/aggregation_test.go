package application

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
)

func day(yearValue int, monthValue time.Month, dayValue int) time.Time {
	return time.Date(yearValue, monthValue, dayValue, 0, 0, 0, 0, time.UTC)
}

func sampleEntries() []domain.Entry {
	return []domain.Entry{
		{ID: "1", Title: "Salary", Amount: 50000, Type: domain.EntryTypeIncome, Category: domain.IncomeCategoryTag, Date: day(2025, time.March, 1)},
		{ID: "2", Title: "Groceries", Amount: 12000, Type: domain.EntryTypeExpense, Category: "Food", Date: day(2025, time.March, 2)},
		{ID: "3", Title: "Snacks", Amount: 3000, Type: domain.EntryTypeExpense, Category: "Food", Date: day(2025, time.March, 3)},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleEntries())

	assert.Equal(t, domain.Money(50000), summary.Income)
	assert.Equal(t, domain.Money(15000), summary.Expense)
	assert.Equal(t, domain.Money(35000), summary.Balance)
}

func TestSummarizeEmptyList(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, domain.Money(0), summary.Income)
	assert.Equal(t, domain.Money(0), summary.Expense)
	assert.Equal(t, domain.Money(0), summary.Balance)
}

func TestSummarizeIsOrderIndependent(t *testing.T) {
	entries := sampleEntries()
	want := Summarize(entries)

	shuffled := make([]domain.Entry, len(entries))
	copy(shuffled, entries)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Summarize(shuffled))
	}
}

func TestSummarizeKeepsCentsExact(t *testing.T) {
	// 0.10 + 0.20 is the classic float trap; cents stay exact.
	entries := []domain.Entry{
		{Type: domain.EntryTypeExpense, Amount: 10, Category: "Food"},
		{Type: domain.EntryTypeExpense, Amount: 20, Category: "Food"},
	}
	summary := Summarize(entries)
	assert.Equal(t, domain.Money(30), summary.Expense)
	assert.Equal(t, "0.30", summary.Expense.String())
}

func TestSumByCategory(t *testing.T) {
	totals := SumByCategory(sampleEntries())

	assert.Equal(t, map[string]domain.Money{"Food": 15000}, totals)
}

func TestSumByCategoryIgnoresIncome(t *testing.T) {
	entries := []domain.Entry{
		{Type: domain.EntryTypeIncome, Amount: 100000, Category: domain.IncomeCategoryTag},
	}
	assert.Empty(t, SumByCategory(entries))
}

func TestSumByCategoryKeepsLiteralKeys(t *testing.T) {
	entries := []domain.Entry{
		{Type: domain.EntryTypeExpense, Amount: 500, Category: "Food"},
		{Type: domain.EntryTypeExpense, Amount: 700, Category: "food"},
		{Type: domain.EntryTypeExpense, Amount: 300, Category: ""},
	}
	totals := SumByCategory(entries)

	assert.Equal(t, domain.Money(500), totals["Food"])
	assert.Equal(t, domain.Money(700), totals["food"])
	assert.Equal(t, domain.Money(300), totals[""])
}

func TestFilterByDate(t *testing.T) {
	entries := sampleEntries()

	filtered := FilterByDate(entries, day(2025, time.March, 2))

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Groceries", filtered[0].Title)
}

func TestFilterByDateNormalizesTimezones(t *testing.T) {
	warsaw := time.FixedZone("CET", 60*60)
	entries := []domain.Entry{
		// 00:30 CET on March 3rd is still March 2nd in UTC.
		{ID: "1", Title: "Late dinner", Date: time.Date(2025, time.March, 3, 0, 30, 0, 0, warsaw)},
	}

	assert.Len(t, FilterByDate(entries, day(2025, time.March, 2)), 1)
	assert.Empty(t, FilterByDate(entries, day(2025, time.March, 3)))
}

func TestFilterByDateIsIdempotent(t *testing.T) {
	entries := sampleEntries()
	target := day(2025, time.March, 3)

	once := FilterByDate(entries, target)
	twice := FilterByDate(once, target)

	assert.Equal(t, once, twice)
}

func TestFilterByDateEmptyResultIsNotNil(t *testing.T) {
	filtered := FilterByDate(sampleEntries(), day(1999, time.January, 1))
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterByMonthMatchesAnyYear(t *testing.T) {
	entries := []domain.Entry{
		{ID: "1", Date: day(2024, time.March, 10)},
		{ID: "2", Date: day(2025, time.March, 20)},
		{ID: "3", Date: day(2025, time.April, 1)},
	}

	filtered := FilterByMonth(entries, time.March)

	assert.Len(t, filtered, 2)
}

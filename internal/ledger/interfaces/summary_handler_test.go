package interfaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

func summaryEntries() []domain.Entry {
	return []domain.Entry{
		{ID: "1", Title: "Salary", Amount: 50000, Type: domain.EntryTypeIncome, Category: domain.IncomeCategoryTag, Date: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Title: "Groceries", Amount: 12000, Type: domain.EntryTypeExpense, Category: "Food", Date: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Title: "Snacks", Amount: 3000, Type: domain.EntryTypeExpense, Category: "Food", Date: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)},
	}
}

func TestGetSummaryHandler(t *testing.T) {
	handler := NewSummaryHandler(&MockEntryService{entries: summaryEntries()}, respondJSON, respondError)

	rec := httptest.NewRecorder()
	handler.GetSummary(rec, authenticatedRequest(http.MethodGet, "/api/protected/summary", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 500.0, data["income"])
	assert.Equal(t, 150.0, data["expense"])
	assert.Equal(t, 350.0, data["balance"])
}

func TestGetSummaryHandlerStorageUnavailable(t *testing.T) {
	service := &MockEntryService{err: ledgerErrors.NewUnavailableError("list entries", context.DeadlineExceeded)}
	handler := NewSummaryHandler(service, respondJSON, respondError)

	rec := httptest.NewRecorder()
	handler.GetSummary(rec, authenticatedRequest(http.MethodGet, "/api/protected/summary", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetCategorySummaryHandler(t *testing.T) {
	handler := NewSummaryHandler(&MockEntryService{entries: summaryEntries()}, respondJSON, respondError)

	rec := httptest.NewRecorder()
	handler.GetCategorySummary(rec, authenticatedRequest(http.MethodGet, "/api/protected/summary/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 150.0, data["Food"])
	assert.NotContains(t, data, domain.IncomeCategoryTag)
}

func TestGetEntriesByDayHandler(t *testing.T) {
	handler := NewSummaryHandler(&MockEntryService{entries: summaryEntries()}, respondJSON, respondError)

	rec := httptest.NewRecorder()
	handler.GetEntriesByDay(rec, authenticatedRequest(http.MethodGet, "/api/protected/entries/day?date=2025-03-02", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	data, ok := payload["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	entry, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Groceries", entry["title"])
}

func TestGetEntriesByDayHandlerInvalidDate(t *testing.T) {
	handler := NewSummaryHandler(&MockEntryService{}, respondJSON, respondError)

	rec := httptest.NewRecorder()
	handler.GetEntriesByDay(rec, authenticatedRequest(http.MethodGet, "/api/protected/entries/day?date=02-03-2025", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEntriesByMonthHandler(t *testing.T) {
	handler := NewSummaryHandler(&MockEntryService{entries: summaryEntries()}, respondJSON, respondError)

	rec := httptest.NewRecorder()
	handler.GetEntriesByMonth(rec, authenticatedRequest(http.MethodGet, "/api/protected/entries/month?month=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	data, ok := payload["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 3)
}

func TestGetEntriesByMonthHandlerValidation(t *testing.T) {
	handler := NewSummaryHandler(&MockEntryService{}, respondJSON, respondError)

	for _, month := range []string{"", "0", "13", "march"} {
		rec := httptest.NewRecorder()
		handler.GetEntriesByMonth(rec, authenticatedRequest(http.MethodGet, "/api/protected/entries/month?month="+month, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "month=%q", month)
	}
}

package interfaces

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/application"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

// SummaryHandler serves the derived views: totals, per-category sums, the
// day view and the month view. It reads the owner's entries once and applies
// the pure aggregation functions.
type SummaryHandler struct {
	service      EntryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewSummaryHandler(
	service EntryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *SummaryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &SummaryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		if ledgerErrors.IsUnavailableError(err) {
			h.respondError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
			return
		}
		log.Printf("Error retrieving summary: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   application.Summarize(entries),
	})
}

func (h *SummaryHandler) GetCategorySummary(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		if ledgerErrors.IsUnavailableError(err) {
			h.respondError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
			return
		}
		log.Printf("Error retrieving category summary: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   application.SumByCategory(entries),
	})
}

func (h *SummaryHandler) GetEntriesByDay(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	dateStr := r.URL.Query().Get("date")
	var target time.Time
	if dateStr == "" {
		target = time.Now().UTC()
	} else {
		var err error
		target, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
	}

	entries, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		if ledgerErrors.IsUnavailableError(err) {
			h.respondError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
			return
		}
		log.Printf("Error retrieving day entries: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   application.FilterByDate(entries, target),
	})
}

func (h *SummaryHandler) GetEntriesByMonth(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.respondError(w, http.StatusBadRequest, "Invalid month, expected 1-12")
		return
	}

	entries, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		if ledgerErrors.IsUnavailableError(err) {
			h.respondError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
			return
		}
		log.Printf("Error retrieving month entries: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   application.FilterByMonth(entries, time.Month(month)),
	})
}

package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/application"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

type EntryServiceInterface interface {
	Create(ctx context.Context, ownerID string, input application.CreateEntryInput) (*domain.Entry, error)
	List(ctx context.Context, ownerID string) ([]domain.Entry, error)
	Delete(ctx context.Context, ownerID, entryID string) error
}

type EntryHandler struct {
	service      EntryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewEntryHandler(
	service EntryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *EntryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &EntryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func parseEntryDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		return date, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title    string        `json:"title"`
		Amount   *domain.Money `json:"amount"`
		Type     string        `json:"type"`
		Category string        `json:"category"`
		Date     string        `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount == nil {
		h.respondError(w, http.StatusBadRequest, "Amount is required")
		return
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	entry, err := h.service.Create(r.Context(), ownerID, application.CreateEntryInput{
		Title:    req.Title,
		Amount:   *req.Amount,
		Type:     req.Type,
		Category: req.Category,
		Date:     date,
	})
	if err != nil {
		if ledgerErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if ledgerErrors.IsUnavailableError(err) {
			h.respondError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
			return
		}
		log.Printf("Error creating entry: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data":   entry,
	})
}

func (h *EntryHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
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
		log.Printf("Error listing entries: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   entries,
	})
}

// DeleteEntry deletes one of the owner's entries. A missing entry and an
// entry owned by somebody else produce the same 404.
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryID := r.PathValue("entryID")
	if entryID == "" {
		h.respondError(w, http.StatusBadRequest, "Entry id is required")
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, entryID); err != nil {
		if ledgerErrors.IsNotFoundError(err) {
			h.respondError(w, http.StatusNotFound, "Entry not found")
			return
		}
		if ledgerErrors.IsUnavailableError(err) {
			h.respondError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
			return
		}
		log.Printf("Error deleting entry: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Entry deleted",
	})
}

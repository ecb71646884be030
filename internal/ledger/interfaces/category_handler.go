package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

type CategoryServiceInterface interface {
	ListVisible(ctx context.Context, ownerID, kind string) ([]domain.Category, error)
	CreateCustom(ctx context.Context, ownerID, name, kind string) (*domain.Category, error)
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetCategories lists the categories visible to the authenticated owner as an
// ordered list of names, "Other" last.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = domain.KindExpense
	}
	if !domain.IsValidCategoryKind(kind) {
		h.respondError(w, http.StatusBadRequest, "Invalid category kind")
		return
	}

	categories, err := h.service.ListVisible(r.Context(), ownerID, kind)
	if err != nil {
		if ledgerErrors.IsUnavailableError(err) {
			h.respondError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
			return
		}
		log.Printf("Error listing categories: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = category.Name
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"categories": names,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Name string `json:"name"`
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCustom(r.Context(), ownerID, req.Name, req.Kind)
	if err != nil {
		if ledgerErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if ledgerErrors.IsConflictError(err) {
			h.respondError(w, http.StatusConflict, err.Error())
			return
		}
		if ledgerErrors.IsUnavailableError(err) {
			h.respondError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
			return
		}
		log.Printf("Error creating category: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data":   category,
	})
}

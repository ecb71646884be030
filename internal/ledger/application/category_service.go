package application

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// SeedGlobalDefaults makes sure the fixed set of global Expense categories
// exists. It runs on every startup and never duplicates rows.
func (s *CategoryService) SeedGlobalDefaults(ctx context.Context) error {
	return s.repo.EnsureGlobalDefaults(ctx, domain.DefaultExpenseCategories)
}

// ListVisible returns the categories the owner can use for the given kind:
// all global ones plus the owner's custom ones, deduplicated by name
// (case-insensitive), sorted case-insensitively, with the synthetic "Other"
// sentinel appended last.
func (s *CategoryService) ListVisible(ctx context.Context, ownerID, kind string) ([]domain.Category, error) {
	if !domain.IsValidCategoryKind(kind) {
		return nil, ledgerErrors.NewValidationError("Kind must be 'Income' or 'Expense'")
	}

	categories, err := s.repo.FindVisible(ctx, ownerID, kind)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	deduplicated := make([]domain.Category, 0, len(categories)+1)
	seen := make(map[string]bool, len(categories))
	for _, category := range categories {
		key := strings.ToLower(category.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduplicated = append(deduplicated, category)
	}

	deduplicated = append(deduplicated, domain.Category{
		Name:  domain.OtherCategoryName,
		Scope: domain.ScopeGlobal,
		Kind:  kind,
	})
	return deduplicated, nil
}

// CreateCustom stores an owner-scoped category. Creating a name that already
// exists among the owner's visible categories (global ones included) is a
// conflict, so customs never shadow globals. Two concurrent creations of the
// same name resolve through the storage unique index: one row, one conflict.
func (s *CategoryService) CreateCustom(ctx context.Context, ownerID, name, kind string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledgerErrors.NewValidationError("Category name is required")
	}
	if !domain.IsValidCategoryKind(kind) {
		return nil, ledgerErrors.NewValidationError("Kind must be 'Income' or 'Expense'")
	}

	exists, err := s.repo.ExistsVisibleByName(ctx, ownerID, name, kind)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ledgerErrors.ErrCategoryAlreadyExists
	}

	category := domain.Category{
		ID:      uuid.NewString(),
		Name:    name,
		Scope:   domain.ScopeCustom,
		OwnerID: &ownerID,
		Kind:    kind,
	}
	if err := s.repo.SaveCustom(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// IsCategoryVisible reports whether the owner can reference the category.
// The "Other" sentinel is not a stored category and is never referencable.
func (s *CategoryService) IsCategoryVisible(ctx context.Context, ownerID, name, kind string) (bool, error) {
	if strings.EqualFold(name, domain.OtherCategoryName) {
		return false, nil
	}
	return s.repo.ExistsVisibleByName(ctx, ownerID, name, kind)
}

package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// EnsureGlobalDefaults upserts the global expense categories. The conflict
// target is the partial unique index on (lower(name), kind) for global rows,
// so reseeding an already-seeded store changes nothing.
func (r *CategoryRepository) EnsureGlobalDefaults(ctx context.Context, names []string) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (id, name, scope, owner_id, kind)
		VALUES ($1, $2, 'global', NULL, $3)
		ON CONFLICT ((lower(name)), kind) WHERE owner_id IS NULL DO NOTHING
	`
	for _, name := range names {
		if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), name, domain.KindExpense); err != nil {
			return wrapStorageError("could not seed global categories", fmt.Errorf("could not seed category %q: %w", name, err))
		}
	}
	return nil
}

func (r *CategoryRepository) FindVisible(ctx context.Context, ownerID, kind string) ([]domain.Category, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, scope, owner_id, kind
		FROM categories
		WHERE kind = $2 AND (owner_id IS NULL OR owner_id = $1)
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID, kind)
	if err != nil {
		return nil, wrapStorageError("could not list categories", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Scope, &category.OwnerID, &category.Kind); err != nil {
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageError("could not list categories", err)
	}
	return categories, nil
}

func (r *CategoryRepository) ExistsVisibleByName(ctx context.Context, ownerID, name, kind string) (bool, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT EXISTS(
			SELECT 1 FROM categories
			WHERE kind = $3 AND lower(name) = lower($2) AND (owner_id IS NULL OR owner_id = $1)
		)
	`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, ownerID, name, kind).Scan(&exists)
	if err != nil {
		return false, wrapStorageError("could not check category", err)
	}
	return exists, nil
}

func (r *CategoryRepository) SaveCustom(ctx context.Context, category domain.Category) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (id, name, scope, owner_id, kind)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Scope, category.OwnerID, category.Kind)
	if err != nil {
		if isUniqueViolation(err) {
			return ledgerErrors.ErrCategoryAlreadyExists
		}
		return wrapStorageError("could not save category", err)
	}
	return nil
}

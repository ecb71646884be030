package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

type EntryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Save(ctx context.Context, entry domain.Entry) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO entries (id, owner_id, title, amount_cents, type, category, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.OwnerID, entry.Title, int64(entry.Amount),
		entry.Type, entry.Category, entry.Date, entry.CreatedAt,
	)
	if err != nil {
		return wrapStorageError("could not save entry", err)
	}
	return nil
}

func (r *EntryRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	// date DESC with created_at/id tie-breakers keeps recency ordering stable;
	// the today and calendar views depend on it.
	query := `
		SELECT id, owner_id, title, amount_cents, type, category, date, created_at
		FROM entries
		WHERE owner_id = $1
		ORDER BY date DESC, created_at DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, wrapStorageError("could not list entries", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var entry domain.Entry
		var cents int64
		if err := rows.Scan(&entry.ID, &entry.OwnerID, &entry.Title, &cents,
			&entry.Type, &entry.Category, &entry.Date, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan entry: %w", err)
		}
		entry.Amount = domain.Money(cents)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageError("could not list entries", err)
	}
	return entries, nil
}

func (r *EntryRepository) DeleteByOwnerAndID(ctx context.Context, ownerID, entryID string) error {
	// A malformed id cannot match any row; reporting it as not found avoids a
	// uuid cast error from Postgres.
	if _, err := uuid.Parse(entryID); err != nil {
		return ledgerErrors.ErrEntryNotFound
	}

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE owner_id = $1 AND id = $2`, ownerID, entryID)
	if err != nil {
		return wrapStorageError("could not delete entry", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read delete result: %w", err)
	}
	if affected == 0 {
		return ledgerErrors.ErrEntryNotFound
	}
	return nil
}

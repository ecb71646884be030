package domain

import "context"

const (
	ScopeGlobal = "global"
	ScopeCustom = "custom"

	KindExpense = "Expense"
	KindIncome  = "Income"
)

// OtherCategoryName is the synthetic trailing entry of every visible-category
// listing. It is never stored; clients use it as the "create your own" choice.
const OtherCategoryName = "Other"

// IncomeCategoryTag is the literal category recorded on income entries.
const IncomeCategoryTag = "Income"

// DefaultExpenseCategories are the global categories seeded at startup.
var DefaultExpenseCategories = []string{
	"Food", "Shopping", "Transport", "Internet", "Utilities", "Health", "Entertainment", "Rent",
}

type Category struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Scope   string  `json:"scope"`
	OwnerID *string `json:"-"` // nil for global categories
	Kind    string  `json:"kind"`
}

func IsValidCategoryKind(kind string) bool {
	return kind == KindExpense || kind == KindIncome
}

type CategoryRepository interface {
	// EnsureGlobalDefaults inserts any missing global Expense categories.
	// Running it again against a seeded store is a no-op.
	EnsureGlobalDefaults(ctx context.Context, names []string) error
	FindVisible(ctx context.Context, ownerID, kind string) ([]Category, error)
	ExistsVisibleByName(ctx context.Context, ownerID, name, kind string) (bool, error)
	// SaveCustom persists an owner-scoped category. A concurrent insert of the
	// same (owner, name, kind) loses against the unique index and comes back
	// as a ConflictError.
	SaveCustom(ctx context.Context, category Category) error
}

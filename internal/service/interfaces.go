// Package service defines the repository contracts the presentation layer
// consumes. Implementations are injected explicitly; there is no process-wide
// store singleton.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-app/cashflow/internal/model"
	"github.com/cashflow-app/cashflow/internal/storage/query"
)

// CategoryRepository is the contract for category persistence.
type CategoryRepository interface {
	// GetCategories returns all categories ordered by name ascending.
	GetCategories(ctx context.Context) ([]model.Category, error)
	// QueryCategories runs a general predicate query with explicit ordering.
	QueryCategories(ctx context.Context, pred *query.Predicate, sort []query.SortKey) ([]model.Category, error)
	// GetCategoryByName returns the first category with the given name, or
	// nil when none exists. Matching is case-sensitive, like QueryCategories.
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	// CreateCategory persists a new category. The name is trimmed; an
	// empty-after-trim name fails with common.ErrValidation.
	CreateCategory(ctx context.Context, name, icon, color string) (*model.Category, error)
	// UpdateCategory persists mutations already applied to the entity.
	// Fails with common.ErrNotFound if the category was deleted underneath.
	UpdateCategory(ctx context.Context, category *model.Category) error
	// DeleteCategory removes the category. Referencing transactions keep
	// their rows; their category reference resolves to nil afterwards.
	// Returns common.ErrNotFound when the category is already gone.
	DeleteCategory(ctx context.Context, id string) error
}

// TransactionRepository is the contract for transaction persistence.
type TransactionRepository interface {
	// GetTransactions returns all transactions ordered by date descending.
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	// QueryTransactions runs a general predicate query with explicit ordering.
	QueryTransactions(ctx context.Context, pred *query.Predicate, sort []query.SortKey) ([]model.Transaction, error)
	// GetTransactionsByDateRange returns transactions with start <= date <= end,
	// ordered by date descending. Fails with common.ErrValidation when
	// start is after end.
	GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	// CreateTransaction persists a new transaction. A non-positive amount or
	// invalid type fails with common.ErrValidation; a zero date defaults to
	// the current time.
	CreateTransaction(ctx context.Context, amount decimal.Decimal, txType model.TransactionType, date time.Time, note string, categoryID string) (*model.Transaction, error)
	// UpdateTransaction persists mutations already applied to the entity.
	// Fails with common.ErrNotFound if the transaction was deleted underneath.
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	// DeleteTransaction removes the transaction. Returns common.ErrNotFound
	// when it is already gone.
	DeleteTransaction(ctx context.Context, id string) error
}

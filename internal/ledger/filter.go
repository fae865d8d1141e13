package ledger

import (
	"strings"

	"github.com/cashflow-app/cashflow/internal/model"
	"github.com/cashflow-app/cashflow/internal/storage/query"
)

// TypeFilter selects which transaction types pass through a list.
type TypeFilter string

const (
	// FilterAll passes every transaction.
	FilterAll TypeFilter = "all"
	// FilterIncome keeps only income transactions.
	FilterIncome TypeFilter = "income"
	// FilterExpense keeps only expense transactions.
	FilterExpense TypeFilter = "expense"
)

// ParseTypeFilter converts a raw string into a TypeFilter. The empty string
// means no filtering.
func ParseTypeFilter(s string) (TypeFilter, bool) {
	switch TypeFilter(s) {
	case FilterAll, "":
		return FilterAll, true
	case FilterIncome:
		return FilterIncome, true
	case FilterExpense:
		return FilterExpense, true
	default:
		return "", false
	}
}

// Predicate returns the store predicate equivalent to this filter, or nil for
// FilterAll. Pushing the filter down to the store and applying FilterByType
// in memory must select the same transactions.
func (f TypeFilter) Predicate() *query.Predicate {
	switch f {
	case FilterIncome:
		return query.Eq("type", string(model.TypeIncome))
	case FilterExpense:
		return query.Eq("type", string(model.TypeExpense))
	default:
		return nil
	}
}

// FilterByType is the pure in-memory equivalent of Predicate. FilterAll is an
// identity pass-through.
func FilterByType(transactions []model.Transaction, filter TypeFilter) []model.Transaction {
	if filter == FilterAll || filter == "" {
		return transactions
	}

	result := make([]model.Transaction, 0, len(transactions))
	for i := range transactions {
		if string(transactions[i].Type) == string(filter) {
			result = append(result, transactions[i])
		}
	}
	return result
}

// Search keeps transactions whose note or category name contains the query,
// case-insensitively. An empty query returns the input unchanged. A missing
// note or category simply never matches.
func Search(transactions []model.Transaction, q string) []model.Transaction {
	if q == "" {
		return transactions
	}

	needle := strings.ToLower(q)
	result := make([]model.Transaction, 0, len(transactions))
	for i := range transactions {
		txn := &transactions[i]
		if strings.Contains(strings.ToLower(txn.Note), needle) ||
			(txn.Category != nil && strings.Contains(strings.ToLower(txn.Category.Name), needle)) {
			result = append(result, *txn)
		}
	}
	return result
}

// Package model defines the core domain types for the cashflow ledger.
package model

import "time"

// Default presentation attributes applied when a caller omits them.
const (
	DefaultCategoryIcon  = "tag.fill"
	DefaultCategoryColor = "#4ECDC4"
)

// Category represents a user-defined transaction category.
//
// Name is a human-facing key: lookup-by-name is supported but uniqueness is
// not enforced by the store. Callers that want unique names must check first.
type Category struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Icon      string
	Color     string
}

package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal pairs a category with its aggregated expense total.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
}

// CategoryTotals is a slice of CategoryTotal that supports sorting and
// ranking utilities.
type CategoryTotals []CategoryTotal

// Len implements sort.Interface.
func (c CategoryTotals) Len() int {
	return len(c)
}

// Less implements sort.Interface - higher totals come first.
func (c CategoryTotals) Less(i, j int) bool {
	if !c[i].Total.Equal(c[j].Total) {
		return c[i].Total.GreaterThan(c[j].Total)
	}
	// Equal totals sort by category name for a deterministic order.
	return c[i].Category.Name < c[j].Category.Name
}

// Swap implements sort.Interface.
func (c CategoryTotals) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Sort sorts the totals by amount in descending order.
func (c CategoryTotals) Sort() {
	sort.Sort(c)
}

// TopN returns the N largest totals.
func (c CategoryTotals) TopN(n int) CategoryTotals {
	if n <= 0 {
		return CategoryTotals{}
	}

	c.Sort()

	if n > len(c) {
		n = len(c)
	}

	result := make(CategoryTotals, n)
	copy(result, c[:n])
	return result
}

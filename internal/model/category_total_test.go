package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func total(name string, amount string) CategoryTotal {
	return CategoryTotal{
		Category: Category{ID: name, Name: name},
		Total:    decimal.RequireFromString(amount),
	}
}

func TestCategoryTotals_Sort(t *testing.T) {
	totals := CategoryTotals{
		total("Shopping", "125.99"),
		total("Food & Dining", "150.50"),
		total("Transportation", "70.00"),
	}

	totals.Sort()

	assert.Equal(t, "Food & Dining", totals[0].Category.Name)
	assert.Equal(t, "Shopping", totals[1].Category.Name)
	assert.Equal(t, "Transportation", totals[2].Category.Name)
}

func TestCategoryTotals_Sort_TieBreaksByName(t *testing.T) {
	totals := CategoryTotals{
		total("Transportation", "50"),
		total("Entertainment", "50"),
		total("Bills", "50"),
	}

	totals.Sort()

	// Equal totals come out in ascending name order.
	assert.Equal(t, "Bills", totals[0].Category.Name)
	assert.Equal(t, "Entertainment", totals[1].Category.Name)
	assert.Equal(t, "Transportation", totals[2].Category.Name)
}

func TestCategoryTotals_TopN(t *testing.T) {
	totals := CategoryTotals{
		total("A", "10"),
		total("B", "30"),
		total("C", "20"),
		total("D", "40"),
	}

	top := totals.TopN(2)
	require.Len(t, top, 2)
	assert.Equal(t, "D", top[0].Category.Name)
	assert.Equal(t, "B", top[1].Category.Name)

	// N larger than the slice returns everything.
	assert.Len(t, totals.TopN(10), 4)

	// Non-positive N returns an empty slice.
	assert.Empty(t, totals.TopN(0))
	assert.Empty(t, totals.TopN(-1))
}

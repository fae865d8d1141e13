package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashflow-app/cashflow/internal/model"
)

var (
	catFood = model.Category{ID: "cat-food", Name: "Food & Dining", Icon: "fork.knife", Color: "#FF6B6B"}
	catRide = model.Category{ID: "cat-ride", Name: "Transportation", Icon: "car.fill", Color: "#4ECDC4"}
	catShop = model.Category{ID: "cat-shop", Name: "Shopping", Icon: "bag.fill", Color: "#45B7D1"}
)

func expense(amount string, cat *model.Category, date time.Time) model.Transaction {
	return model.Transaction{
		Type:     model.TypeExpense,
		Amount:   decimal.RequireFromString(amount),
		Category: cat,
		Date:     date,
	}
}

func income(amount string, date time.Time) model.Transaction {
	return model.Transaction{
		Type:   model.TypeIncome,
		Amount: decimal.RequireFromString(amount),
		Date:   date,
	}
}

func TestBalance(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		txns []model.Transaction
		want string
	}{
		{
			name: "empty list is zero",
			txns: nil,
			want: "0",
		},
		{
			name: "single expense is negative",
			txns: []model.Transaction{expense("85.50", &catFood, day)},
			want: "-85.5",
		},
		{
			name: "income and expense net out",
			txns: []model.Transaction{
				income("3500", day),
				expense("85.50", &catFood, day),
			},
			want: "3414.5",
		},
		{
			name: "order independent",
			txns: []model.Transaction{
				expense("85.50", &catFood, day),
				income("3500", day),
			},
			want: "3414.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Balance(tt.txns).String())
		})
	}
}

func TestIncomeAndExpenseTotals(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		income("3500", day),
		income("120.25", day),
		expense("85.50", &catFood, day),
		expense("45", &catRide, day),
	}

	assert.Equal(t, "3620.25", IncomeTotal(txns).String())
	assert.Equal(t, "130.5", ExpenseTotal(txns).String())

	// Both totals are magnitudes: never negative, even on empty input.
	assert.True(t, IncomeTotal(nil).Sign() >= 0)
	assert.True(t, ExpenseTotal(nil).Sign() >= 0)
}

func TestTopCategories(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	txns := []model.Transaction{
		expense("85.50", &catFood, day),
		expense("65", &catFood, day),
		expense("45", &catRide, day),
		expense("125.99", &catShop, day),
		// Uncategorized expenses never appear in the ranking.
		expense("300", nil, day),
		// Income never appears in the ranking, categorized or not.
		{Type: model.TypeIncome, Amount: decimal.RequireFromString("999"), Category: &catFood, Date: day},
	}

	ranked := TopCategories(txns, DefaultTopCategories)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Food & Dining", ranked[0].Category.Name)
	assert.Equal(t, "150.5", ranked[0].Total.String())
	assert.Equal(t, "Shopping", ranked[1].Category.Name)
	assert.Equal(t, "125.99", ranked[1].Total.String())
	assert.Equal(t, "Transportation", ranked[2].Category.Name)
	assert.Equal(t, "45", ranked[2].Total.String())
}

func TestTopCategories_TruncatesToN(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		expense("10", &catFood, day),
		expense("20", &catRide, day),
		expense("30", &catShop, day),
	}

	ranked := TopCategories(txns, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Shopping", ranked[0].Category.Name)
	assert.Equal(t, "Transportation", ranked[1].Category.Name)
}

func TestTopCategories_DeterministicTieBreak(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		expense("50", &catShop, day),
		expense("50", &catFood, day),
		expense("50", &catRide, day),
	}

	// Same ranking every time: equal totals fall back to name ascending.
	for i := 0; i < 10; i++ {
		ranked := TopCategories(txns, 5)
		require.Len(t, ranked, 3)
		assert.Equal(t, "Food & Dining", ranked[0].Category.Name)
		assert.Equal(t, "Shopping", ranked[1].Category.Name)
		assert.Equal(t, "Transportation", ranked[2].Category.Name)
	}
}

func TestTopCategories_Empty(t *testing.T) {
	assert.Empty(t, TopCategories(nil, 5))
}

func TestGroupByDay(t *testing.T) {
	loc := time.UTC
	txns := []model.Transaction{
		expense("10", &catFood, time.Date(2024, 3, 12, 18, 30, 0, 0, loc)),
		expense("20", &catRide, time.Date(2024, 3, 12, 9, 0, 0, 0, loc)),
		income("3500", time.Date(2024, 3, 10, 8, 0, 0, 0, loc)),
		expense("30", &catShop, time.Date(2024, 3, 1, 23, 59, 0, 0, loc)),
	}

	groups := GroupByDay(txns)
	require.Len(t, groups, 3)

	// Groups come newest day first.
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, loc), groups[0].Day)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), groups[1].Day)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), groups[2].Day)

	// Input order is preserved within a group.
	require.Len(t, groups[0].Transactions, 2)
	assert.Equal(t, "10", groups[0].Transactions[0].Amount.String())
	assert.Equal(t, "20", groups[0].Transactions[1].Amount.String())

	// No transaction is lost or duplicated across groups.
	count := 0
	for _, g := range groups {
		count += len(g.Transactions)
	}
	assert.Equal(t, len(txns), count)
}

func TestGroupByDay_ZeroDateBucketsUnderToday(t *testing.T) {
	txns := []model.Transaction{
		{Type: model.TypeExpense, Amount: decimal.RequireFromString("5")},
	}

	groups := GroupByDay(txns)
	require.Len(t, groups, 1)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.Equal(t, today, groups[0].Day)
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	start, end := MonthWindow(now)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)
}

// Package ledger computes derived state over an already-fetched transaction
// set: balance, income/expense totals, category rankings, and calendar-day
// grouping. Every function here is pure and synchronous — none touch the
// store, none fail, and all treat empty or partially-populated input as a
// degenerate-but-defined case.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-app/cashflow/internal/model"
)

// DefaultTopCategories is the ranking size the dashboard shows.
const DefaultTopCategories = 5

// Balance returns the sum of signed amounts: income adds, expense subtracts.
// An empty list yields zero.
func Balance(transactions []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for i := range transactions {
		sum = sum.Add(transactions[i].SignedAmount())
	}
	return sum
}

// IncomeTotal sums the amounts of income transactions. Callers aggregating
// "this month" pass a list already restricted to the month window; no date
// filtering happens here.
func IncomeTotal(transactions []model.Transaction) decimal.Decimal {
	return totalByType(transactions, model.TypeIncome)
}

// ExpenseTotal sums the amounts of expense transactions, as a positive
// magnitude.
func ExpenseTotal(transactions []model.Transaction) decimal.Decimal {
	return totalByType(transactions, model.TypeExpense)
}

func totalByType(transactions []model.Transaction, txType model.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for i := range transactions {
		if transactions[i].Type == txType {
			sum = sum.Add(transactions[i].Amount)
		}
	}
	return sum
}

// TopCategories ranks categories by total expense, largest first, truncated
// to n. Only expense transactions count, and uncategorized ones are excluded
// from the ranking entirely. Ties break by category name ascending.
func TopCategories(transactions []model.Transaction, n int) model.CategoryTotals {
	totals := make(map[string]*model.CategoryTotal)

	for i := range transactions {
		txn := &transactions[i]
		if txn.Type != model.TypeExpense || txn.Category == nil {
			continue
		}
		entry, ok := totals[txn.Category.ID]
		if !ok {
			entry = &model.CategoryTotal{Category: *txn.Category, Total: decimal.Zero}
			totals[txn.Category.ID] = entry
		}
		entry.Total = entry.Total.Add(txn.Amount)
	}

	ranked := make(model.CategoryTotals, 0, len(totals))
	for _, entry := range totals {
		ranked = append(ranked, *entry)
	}

	return ranked.TopN(n)
}

// DayGroup holds the transactions that fall on one calendar day.
type DayGroup struct {
	Day          time.Time
	Transactions []model.Transaction
}

// GroupByDay buckets transactions by the calendar start-of-day of their date,
// newest day first. A zero date buckets under today. Within a group the input
// order is preserved, so a date-descending input stays date-descending.
func GroupByDay(transactions []model.Transaction) []DayGroup {
	groups := make(map[time.Time]*DayGroup)

	for i := range transactions {
		date := transactions[i].Date
		if date.IsZero() {
			date = time.Now()
		}
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

		group, ok := groups[day]
		if !ok {
			group = &DayGroup{Day: day}
			groups[day] = group
		}
		group.Transactions = append(group.Transactions, transactions[i])
	}

	result := make([]DayGroup, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.After(result[j].Day)
	})

	return result
}

// MonthWindow returns the current-month aggregation window: the start of
// now's calendar month through now itself.
func MonthWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, now
}

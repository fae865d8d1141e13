// Package testutil provides shared fixtures for tests that need a real
// storage backend.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-app/cashflow/internal/model"
	"github.com/cashflow-app/cashflow/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite store and registers its
// cleanup with the test.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SampleCategory describes one seeded category.
type SampleCategory struct {
	Name  string
	Icon  string
	Color string
}

// SampleCategories mirrors the default category set of the app.
var SampleCategories = []SampleCategory{
	{Name: "Food & Dining", Icon: "fork.knife", Color: "#FF6B6B"},
	{Name: "Transportation", Icon: "car.fill", Color: "#4ECDC4"},
	{Name: "Shopping", Icon: "bag.fill", Color: "#45B7D1"},
	{Name: "Entertainment", Icon: "tv.fill", Color: "#96CEB4"},
	{Name: "Bills & Utilities", Icon: "bolt.fill", Color: "#FECA57"},
	{Name: "Healthcare", Icon: "heart.fill", Color: "#FF6B9D"},
	{Name: "Income", Icon: "dollarsign.circle.fill", Color: "#95E1D3"},
}

// SeedCategories inserts the sample categories and returns them by name.
func SeedCategories(t *testing.T, store *storage.SQLiteStorage) map[string]*model.Category {
	t.Helper()

	ctx := context.Background()
	created := make(map[string]*model.Category, len(SampleCategories))
	for _, sample := range SampleCategories {
		cat, err := store.CreateCategory(ctx, sample.Name, sample.Icon, sample.Color)
		if err != nil {
			t.Fatalf("failed to seed category %q: %v", sample.Name, err)
		}
		created[cat.Name] = cat
	}
	return created
}

// SeedTransactions inserts a realistic mix of income and expense
// transactions against the seeded categories, spread over the days leading
// up to now, and returns them newest first.
func SeedTransactions(t *testing.T, store *storage.SQLiteStorage, cats map[string]*model.Category) []model.Transaction {
	t.Helper()

	ctx := context.Background()
	now := time.Now()

	samples := []struct {
		note     string
		amount   string
		category string
		txType   model.TransactionType
		daysAgo  int
	}{
		{note: "Grocery Store", amount: "85.50", category: "Food & Dining", txType: model.TypeExpense, daysAgo: 2},
		{note: "Gas Station", amount: "45.00", category: "Transportation", txType: model.TypeExpense, daysAgo: 3},
		{note: "Amazon Purchase", amount: "125.99", category: "Shopping", txType: model.TypeExpense, daysAgo: 4},
		{note: "Electric Bill", amount: "120.00", category: "Bills & Utilities", txType: model.TypeExpense, daysAgo: 6},
		{note: "Salary", amount: "3500.00", category: "Income", txType: model.TypeIncome, daysAgo: 8},
		{note: "Restaurant", amount: "65.00", category: "Food & Dining", txType: model.TypeExpense, daysAgo: 9},
	}

	for _, sample := range samples {
		var categoryID string
		if cat, ok := cats[sample.category]; ok {
			categoryID = cat.ID
		}
		_, err := store.CreateTransaction(ctx,
			decimal.RequireFromString(sample.amount),
			sample.txType,
			now.AddDate(0, 0, -sample.daysAgo),
			sample.note,
			categoryID,
		)
		if err != nil {
			t.Fatalf("failed to seed transaction %q: %v", sample.note, err)
		}
	}

	txns, err := store.GetTransactions(ctx)
	if err != nil {
		t.Fatalf("failed to fetch seeded transactions: %v", err)
	}
	return txns
}

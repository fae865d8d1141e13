package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashflow-app/cashflow/internal/model"
	"github.com/cashflow-app/cashflow/internal/storage/query"
)

// fakeTransactionRepo records writes and can be primed to fail.
type fakeTransactionRepo struct {
	saveErr error
	created []model.Transaction
	updated []model.Transaction
}

func (f *fakeTransactionRepo) GetTransactions(_ context.Context) ([]model.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) QueryTransactions(_ context.Context, _ *query.Predicate, _ []query.SortKey) ([]model.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) GetTransactionsByDateRange(_ context.Context, _, _ time.Time) ([]model.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) CreateTransaction(_ context.Context, amount decimal.Decimal, txType model.TransactionType, date time.Time, note string, categoryID string) (*model.Transaction, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	txn := model.Transaction{
		ID:     "txn-created",
		Amount: amount,
		Type:   txType,
		Date:   date,
		Note:   note,
	}
	if categoryID != "" {
		txn.Category = &model.Category{ID: categoryID}
	}
	f.created = append(f.created, txn)
	return &txn, nil
}

func (f *fakeTransactionRepo) UpdateTransaction(_ context.Context, txn *model.Transaction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.updated = append(f.updated, *txn)
	return nil
}

func (f *fakeTransactionRepo) DeleteTransaction(_ context.Context, _ string) error {
	return nil
}

func TestTransactionForm_Lifecycle(t *testing.T) {
	repo := &fakeTransactionRepo{}
	form := NewTransactionForm(repo)

	assert.Equal(t, StateEmpty, form.State())

	form.SetAmount("85.50")
	assert.Equal(t, StateEditing, form.State())

	form.SetNote("Grocery Store")
	require.True(t, form.Validate())
	assert.Equal(t, StateValid, form.State())

	require.NoError(t, form.Save(context.Background()))
	assert.Equal(t, StateSaved, form.State())

	require.Len(t, repo.created, 1)
	assert.Equal(t, "85.5", repo.created[0].Amount.String())
	assert.Equal(t, "Grocery Store", repo.created[0].Note)
	assert.Equal(t, model.TypeExpense, repo.created[0].Type)
}

func TestTransactionForm_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		note   string
	}{
		{name: "non-numeric amount", amount: "abc", note: "Lunch"},
		{name: "negative amount", amount: "-5", note: "Lunch"},
		{name: "zero amount", amount: "0", note: "Lunch"},
		{name: "empty note", amount: "10", note: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewTransactionForm(&fakeTransactionRepo{})
			form.SetAmount(tt.amount)
			form.SetNote(tt.note)

			assert.False(t, form.Validate())
			assert.Equal(t, StateInvalid, form.State())
			assert.Error(t, form.Err)

			// Invalid returns to editing on any field change.
			form.SetAmount("10")
			assert.Equal(t, StateEditing, form.State())
			assert.NoError(t, form.Err)
		})
	}
}

func TestTransactionForm_SaveRequiresValidState(t *testing.T) {
	form := NewTransactionForm(&fakeTransactionRepo{})
	form.SetAmount("10")

	// Editing, not yet validated.
	assert.Error(t, form.Save(context.Background()))
}

func TestTransactionForm_SaveFailurePreservesInput(t *testing.T) {
	repo := &fakeTransactionRepo{saveErr: errors.New("disk full")}
	form := NewTransactionForm(repo)

	form.SetAmount("42")
	form.SetNote("Dinner")
	require.True(t, form.Validate())

	err := form.Save(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, form.State())
	assert.Equal(t, err, form.Err)

	// The user's input survives the failure and editing resumes.
	repo.saveErr = nil
	form.SetType(model.TypeIncome)
	assert.Equal(t, StateEditing, form.State())
	require.True(t, form.Validate())
	require.NoError(t, form.Save(context.Background()))

	require.Len(t, repo.created, 1)
	assert.Equal(t, "42", repo.created[0].Amount.String())
	assert.Equal(t, "Dinner", repo.created[0].Note)
}

func TestTransactionForm_SaveNotReentrant(t *testing.T) {
	repo := &fakeTransactionRepo{}
	form := NewTransactionForm(repo)

	form.SetAmount("10")
	form.SetNote("Lunch")
	require.True(t, form.Validate())

	require.NoError(t, form.Save(context.Background()))

	// The form already saved; a second request without re-validation is
	// rejected rather than run again against the same entity.
	assert.Error(t, form.Save(context.Background()))
	assert.Len(t, repo.created, 1)
}

func TestTransactionForm_EditMode(t *testing.T) {
	repo := &fakeTransactionRepo{}
	existing := &model.Transaction{
		ID:     "txn-1",
		Amount: decimal.RequireFromString("85.50"),
		Type:   model.TypeExpense,
		Date:   time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		Note:   "Grocery Store",
	}

	form := NewEditForm(repo, existing)
	assert.True(t, form.IsEdit())
	assert.Equal(t, StateEditing, form.State())

	form.SetAmount("90.00")
	require.True(t, form.Validate())
	require.NoError(t, form.Save(context.Background()))

	require.Len(t, repo.updated, 1)
	assert.Empty(t, repo.created)
	assert.Equal(t, "90", repo.updated[0].Amount.String())
	assert.Equal(t, "txn-1", repo.updated[0].ID)
}

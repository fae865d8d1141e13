package form

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-app/cashflow/internal/model"
	"github.com/cashflow-app/cashflow/internal/service"
)

// State is the lifecycle state of a transaction form.
type State string

const (
	// StateEmpty is a freshly created form with no input yet.
	StateEmpty State = "empty"
	// StateEditing means fields have changed since the last validation.
	StateEditing State = "editing"
	// StateValid means the current input passed validation.
	StateValid State = "valid"
	// StateInvalid means the current input failed validation.
	StateInvalid State = "invalid"
	// StateSaving means a save is in flight. Further save requests are
	// ignored until it settles.
	StateSaving State = "saving"
	// StateSaved means the last save succeeded.
	StateSaved State = "saved"
	// StateFailed means the last save hit a store error. The input is
	// preserved; the next field change returns the form to editing.
	StateFailed State = "failed"
)

// TransactionForm drives the create/edit transaction workflow. It validates
// user input, tracks the form lifecycle, and writes through the transaction
// repository. It is meant to be owned by a single coordinating goroutine.
type TransactionForm struct {
	date     time.Time
	repo     service.TransactionRepository
	existing *model.Transaction
	category *model.Category

	amountText string
	note       string
	txType     model.TransactionType
	state      State

	amount decimal.Decimal

	// Err holds the validation or save error to surface to the user.
	Err error
}

// NewTransactionForm creates an empty form for recording a new transaction.
func NewTransactionForm(repo service.TransactionRepository) *TransactionForm {
	return &TransactionForm{
		repo:   repo,
		txType: model.TypeExpense,
		state:  StateEmpty,
	}
}

// NewEditForm creates a form seeded from an existing transaction. Saving
// updates the entity in place instead of creating a new one.
func NewEditForm(repo service.TransactionRepository, txn *model.Transaction) *TransactionForm {
	return &TransactionForm{
		repo:       repo,
		existing:   txn,
		amountText: txn.Amount.StringFixed(2),
		note:       txn.Note,
		date:       txn.Date,
		category:   txn.Category,
		txType:     txn.Type,
		state:      StateEditing,
	}
}

// State returns the current lifecycle state.
func (f *TransactionForm) State() State {
	return f.state
}

// IsEdit reports whether the form updates an existing transaction.
func (f *TransactionForm) IsEdit() bool {
	return f.existing != nil
}

// SetAmount records new amount text and returns the form to editing.
func (f *TransactionForm) SetAmount(text string) {
	f.amountText = text
	f.edited()
}

// SetNote records a new note and returns the form to editing.
func (f *TransactionForm) SetNote(note string) {
	f.note = note
	f.edited()
}

// SetDate records a new date and returns the form to editing.
func (f *TransactionForm) SetDate(date time.Time) {
	f.date = date
	f.edited()
}

// SetType records a new transaction type and returns the form to editing.
func (f *TransactionForm) SetType(txType model.TransactionType) {
	f.txType = txType
	f.edited()
}

// SetCategory records the selected category (nil for uncategorized) and
// returns the form to editing.
func (f *TransactionForm) SetCategory(category *model.Category) {
	f.category = category
	f.edited()
}

func (f *TransactionForm) edited() {
	if f.state == StateSaving {
		return
	}
	f.state = StateEditing
	f.Err = nil
}

// Validate checks the current input and moves the form to valid or invalid.
// The amount must parse to a positive decimal and the note must be non-empty
// after trimming.
func (f *TransactionForm) Validate() bool {
	if f.state == StateSaving {
		return false
	}

	amount, err := ParseAmount(f.amountText)
	if err != nil {
		f.state = StateInvalid
		f.Err = err
		return false
	}

	note, err := ValidateNote(f.note)
	if err != nil {
		f.state = StateInvalid
		f.Err = err
		return false
	}

	f.amount = amount
	f.note = note
	f.state = StateValid
	f.Err = nil
	return true
}

// Save writes the form through the repository. It only runs from the valid
// state; a save request while another is in flight is ignored. On success the
// form moves to saved. On a store error the form moves to failed with the
// input preserved and Err surfaced; the next field change resumes editing.
func (f *TransactionForm) Save(ctx context.Context) error {
	switch f.state {
	case StateSaving:
		return nil // non-reentrant: a save is already in flight
	case StateValid:
	default:
		return fmt.Errorf("form is not ready to save (state %s)", f.state)
	}

	f.state = StateSaving

	var err error
	if f.existing != nil {
		f.existing.Amount = f.amount
		f.existing.Type = f.txType
		f.existing.Date = f.date
		f.existing.Note = f.note
		f.existing.Category = f.category
		err = f.repo.UpdateTransaction(ctx, f.existing)
	} else {
		var categoryID string
		if f.category != nil {
			categoryID = f.category.ID
		}
		_, err = f.repo.CreateTransaction(ctx, f.amount, f.txType, f.date, f.note, categoryID)
	}

	if err != nil {
		f.state = StateFailed
		f.Err = err
		return err
	}

	f.state = StateSaved
	f.Err = nil
	return nil
}

// Package storage provides the SQLite persistence layer for the cashflow
// ledger: the entity store adapter plus the category and transaction
// repositories built on top of it.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-app/cashflow/internal/common"
	"github.com/cashflow-app/cashflow/internal/model"
)

// storageErr wraps a store failure so callers can match common.ErrStorage
// while keeping the underlying driver error in the chain.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrStorage, err)
}

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("%w: nil context", common.ErrValidation)
	}
	return nil
}

// validateString ensures a string parameter is not empty after trimming.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", common.ErrValidation, paramName)
	}
	return nil
}

// validateAmount ensures a transaction amount is a positive magnitude.
// Amount positivity is enforced here, at the repository boundary, even though
// forms pre-validate: the repository is reachable without any form.
func validateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %s", common.ErrValidation, amount)
	}
	return nil
}

// validateType ensures the transaction type is one of the two known values.
func validateType(txType model.TransactionType) error {
	if !txType.Valid() {
		return fmt.Errorf("%w: invalid transaction type %q", common.ErrValidation, txType)
	}
	return nil
}

// validateDateRange ensures start does not come after end. Both bounds are
// inclusive, so equal timestamps are a valid single-instant range.
func validateDateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start date %v is after end date %v", common.ErrValidation, start, end)
	}
	return nil
}

// Package form implements input validation and the transaction form
// workflow that sits between user input and the repositories.
package form

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashflow-app/cashflow/internal/common"
)

// ParseAmount parses a user-facing amount string into a positive decimal.
// Thousands separators are stripped before parsing. Non-numeric or
// non-positive input fails with common.ErrValidation.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", common.ErrValidation)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a valid amount", common.ErrValidation, text)
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive, got %s", common.ErrValidation, amount)
	}

	return amount, nil
}

// ValidateCategoryName trims the name and rejects empty-after-trim input.
// Returns the trimmed name.
func ValidateCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: category name cannot be empty", common.ErrValidation)
	}
	return trimmed, nil
}

// ValidateNote rejects an empty-after-trim note. This is a form-level rule:
// the repositories accept empty notes, but the transaction form requires a
// description.
func ValidateNote(note string) (string, error) {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return "", fmt.Errorf("%w: description cannot be empty", common.ErrValidation)
	}
	return trimmed, nil
}

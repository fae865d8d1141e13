// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cashflow-app/cashflow/internal/model"
)

var (
	// IncomeColor marks amounts flowing in.
	IncomeColor = lipgloss.Color("#95E1D3") // Teal
	// ExpenseColor marks amounts flowing out.
	ExpenseColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#45B7D1") // Blue
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(InfoColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ErrorStyle formats errors or failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	incomeStyle  = lipgloss.NewStyle().Foreground(IncomeColor)
	expenseStyle = lipgloss.NewStyle().Foreground(ExpenseColor)
)

// FormatAmount renders a transaction amount with its sign and type color:
// +1,234.00 in teal for income, -1,234.00 in red for expense.
func FormatAmount(amount decimal.Decimal, txType model.TransactionType) string {
	if txType == model.TypeIncome {
		return incomeStyle.Render("+" + amount.StringFixed(2))
	}
	return expenseStyle.Render("-" + amount.StringFixed(2))
}

// FormatSigned renders an already-signed value (such as a balance), colored
// by whether it is non-negative.
func FormatSigned(value decimal.Decimal) string {
	if value.Sign() < 0 {
		return expenseStyle.Render(value.StringFixed(2))
	}
	return incomeStyle.Render(value.StringFixed(2))
}

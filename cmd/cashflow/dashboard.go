package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cashflow-app/cashflow/internal/cli"
	"github.com/cashflow-app/cashflow/internal/ledger"
)

const recentTransactionCount = 10

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show balance, monthly totals, and top spending categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			all, err := store.GetTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			start, end := ledger.MonthWindow(time.Now())
			month, err := store.GetTransactionsByDateRange(ctx, start, end)
			if err != nil {
				return fmt.Errorf("failed to get this month's transactions: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("💸 Cashflow"))

			fmt.Printf("%s %s\n\n",
				cli.BoldStyle.Render("Current balance:"),
				cli.FormatSigned(ledger.Balance(all)))

			fmt.Println(cli.BoldStyle.Render(start.Format("January 2006")))
			fmt.Printf("  Income:   %s\n", cli.FormatSigned(ledger.IncomeTotal(month)))
			fmt.Printf("  Expenses: %s\n\n", cli.FormatSigned(ledger.ExpenseTotal(month).Neg()))

			top := ledger.TopCategories(month, ledger.DefaultTopCategories)
			if len(top) > 0 {
				fmt.Println(cli.BoldStyle.Render("Top spending categories"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for i, entry := range top {
					fmt.Fprintf(w, "  %d. %s\t%s\n",
						i+1, entry.Category.Name, entry.Total.StringFixed(2))
				}
				_ = w.Flush()
				fmt.Println()
			}

			if len(all) > 0 {
				recent := all
				if len(recent) > recentTransactionCount {
					recent = recent[:recentTransactionCount]
				}
				fmt.Println(cli.BoldStyle.Render("Recent activity"))
				printTransactionGroups(ledger.GroupByDay(recent))
			} else {
				fmt.Println(cli.InfoStyle.Render("No transactions yet. Use 'cashflow tx add' to record one."))
			}

			return nil
		},
	}
}

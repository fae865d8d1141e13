package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cashflow-app/cashflow/internal/cli"
	"github.com/cashflow-app/cashflow/internal/common"
	"github.com/cashflow-app/cashflow/internal/form"
	"github.com/cashflow-app/cashflow/internal/ledger"
	"github.com/cashflow-app/cashflow/internal/model"
	"github.com/cashflow-app/cashflow/internal/storage"
	"github.com/cashflow-app/cashflow/internal/storage/query"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and browse transactions",
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txType   string
		note     string
		category string
		dateStr  string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a new transaction",
		Long: `Record a new income or expense. The amount is a positive number;
whether it adds to or subtracts from the balance follows from --type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			parsedType, err := model.ParseTransactionType(txType)
			if err != nil {
				return err
			}

			f := form.NewTransactionForm(store)
			f.SetAmount(args[0])
			f.SetType(parsedType)
			f.SetNote(note)

			if dateStr != "" {
				date, dateErr := parseDate(dateStr)
				if dateErr != nil {
					return dateErr
				}
				f.SetDate(date)
			} else {
				f.SetDate(time.Now())
			}

			if category != "" {
				cat, catErr := store.GetCategoryByName(ctx, category)
				if catErr != nil {
					return fmt.Errorf("failed to look up category: %w", catErr)
				}
				if cat == nil {
					return fmt.Errorf("category %q not found", category)
				}
				f.SetCategory(cat)
			}

			if !f.Validate() {
				return f.Err
			}
			if err := f.Save(ctx); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Recorded %s %s",
				parsedType, args[0])))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVar(&note, "note", "", "description of the transaction")
	cmd.Flags().StringVar(&category, "category", "", "category name to tag the transaction with")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("note")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		typeStr string
		search  string
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Long: `List transactions grouped by day. Type and date filters are pushed
down to the store; --search matches notes and category names.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter, ok := ledger.ParseTypeFilter(typeStr)
			if !ok {
				return fmt.Errorf("invalid type filter %q (expected all, income, or expense)", typeStr)
			}

			txns, err := fetchTransactions(ctx, store, filter, fromStr, toStr)
			if err != nil {
				return err
			}

			txns = ledger.Search(txns, search)

			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match."))
				return nil
			}

			printTransactionGroups(ledger.GroupByDay(txns))

			fmt.Printf("\n%s %s\n",
				cli.BoldStyle.Render("Balance:"),
				cli.FormatSigned(ledger.Balance(txns)))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "all", "filter by type (all, income, expense)")
	cmd.Flags().StringVar(&search, "search", "", "match against note or category name")
	cmd.Flags().StringVar(&fromStr, "from", "", "earliest date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "latest date to include (YYYY-MM-DD)")

	return cmd
}

// fetchTransactions builds the push-down predicate from the type and date
// flags and queries the store, newest first.
func fetchTransactions(ctx context.Context, store *storage.SQLiteStorage, filter ledger.TypeFilter, fromStr, toStr string) ([]model.Transaction, error) {
	pred := filter.Predicate()

	if fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			return nil, err
		}
		pred = query.And(pred, query.Gte("date", from))
	}
	if toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			return nil, err
		}
		pred = query.And(pred, query.Lte("date", endOfDay(to)))
	}

	return store.QueryTransactions(ctx, pred, []query.SortKey{query.Desc("date")})
}

func printTransactionGroups(groups []ledger.DayGroup) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	for _, group := range groups {
		fmt.Fprintf(w, "%s\n", cli.TitleStyle.Render(group.Day.Format("Mon, Jan 2 2006")))
		for _, txn := range group.Transactions {
			note := txn.Note
			if note == "" {
				note = cli.SubtleStyle.Render("(no description)")
			}
			categoryName := txn.CategoryName()
			if categoryName == "" {
				categoryName = cli.SubtleStyle.Render("uncategorized")
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				cli.FormatAmount(txn.Amount, txn.Type),
				note,
				categoryName,
				cli.SubtleStyle.Render(txn.ID))
		}
	}
}

func editTxCmd() *cobra.Command {
	var (
		amount   string
		txType   string
		note     string
		category string
		dateStr  string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := store.GetTransactionByID(ctx, args[0])
			if err != nil {
				if common.IsNotFound(err) {
					return fmt.Errorf("transaction %q not found", args[0])
				}
				return err
			}

			f := form.NewEditForm(store, txn)

			if cmd.Flags().Changed("amount") {
				f.SetAmount(amount)
			}
			if cmd.Flags().Changed("type") {
				parsedType, typeErr := model.ParseTransactionType(txType)
				if typeErr != nil {
					return typeErr
				}
				f.SetType(parsedType)
			}
			if cmd.Flags().Changed("note") {
				f.SetNote(note)
			}
			if cmd.Flags().Changed("date") {
				date, dateErr := parseDate(dateStr)
				if dateErr != nil {
					return dateErr
				}
				f.SetDate(date)
			}
			if cmd.Flags().Changed("category") {
				if category == "" {
					f.SetCategory(nil)
				} else {
					cat, catErr := store.GetCategoryByName(ctx, category)
					if catErr != nil {
						return fmt.Errorf("failed to look up category: %w", catErr)
					}
					if cat == nil {
						return fmt.Errorf("category %q not found", category)
					}
					f.SetCategory(cat)
				}
			}

			if !f.Validate() {
				return f.Err
			}
			if err := f.Save(ctx); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Updated transaction"))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&txType, "type", "", "new type (income, expense)")
	cmd.Flags().StringVar(&note, "note", "", "new description")
	cmd.Flags().StringVar(&category, "category", "", "new category name (empty to clear)")
	cmd.Flags().StringVar(&dateStr, "date", "", "new date (YYYY-MM-DD)")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			err = store.DeleteTransaction(ctx, args[0])
			if err != nil && !common.IsNotFound(err) {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			// NotFound on delete means the desired end state already holds.
			fmt.Println(cli.SuccessStyle.Render("✓ Deleted transaction"))
			return nil
		},
	}
}

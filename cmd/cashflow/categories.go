package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cashflow-app/cashflow/internal/cli"
	"github.com/cashflow-app/cashflow/internal/common"
	"github.com/cashflow-app/cashflow/internal/form"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long:  `List, add, edit, and delete the categories used to tag transactions.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'cashflow categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Icon"),
				cli.BoldStyle.Render("Color"),
				cli.BoldStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 16),
				strings.Repeat("-", 8),
				strings.Repeat("-", 36))

			for _, cat := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cat.Name, cat.Icon, cat.Color, cli.SubtleStyle.Render(cat.ID))
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name, err := form.ValidateCategoryName(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			// Names are not unique in the store; checking here keeps the
			// CLI from creating accidental duplicates.
			existing, err := store.GetCategoryByName(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to check existing category: %w", err)
			}
			if existing != nil {
				return fmt.Errorf("category %q already exists", name)
			}

			created, err := store.CreateCategory(ctx, name, icon, color)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Created category %q (%s %s)",
				created.Name, created.Icon, created.Color)))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "glyph name for the category icon")
	cmd.Flags().StringVar(&color, "color", "", "hex color token, e.g. #FF6B6B")

	return cmd
}

func editCategoryCmd() *cobra.Command {
	var (
		newName string
		icon    string
		color   string
	)

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit an existing category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			category, err := store.GetCategoryByName(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to look up category: %w", err)
			}
			if category == nil {
				return fmt.Errorf("category %q not found", args[0])
			}

			if cmd.Flags().Changed("name") {
				trimmed, nameErr := form.ValidateCategoryName(newName)
				if nameErr != nil {
					return nameErr
				}
				category.Name = trimmed
			}
			if cmd.Flags().Changed("icon") {
				category.Icon = icon
			}
			if cmd.Flags().Changed("color") {
				category.Color = color
			}

			if err := store.UpdateCategory(ctx, category); err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated category %q", category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "new category name")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon glyph")
	cmd.Flags().StringVar(&color, "color", "", "new hex color token")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a category",
		Long: `Delete a category. Transactions tagged with it are kept and
become uncategorized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			category, err := store.GetCategoryByName(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to look up category: %w", err)
			}
			if category == nil {
				// Already gone: the desired end state holds.
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Category %q does not exist.", args[0])))
				return nil
			}

			if err := store.DeleteCategory(ctx, category.ID); err != nil && !common.IsNotFound(err) {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted category %q", category.Name)))
			return nil
		},
	}
}

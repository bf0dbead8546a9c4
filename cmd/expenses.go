package cmd

import (
	"fmt"
	"time"

	"inventa/cli/internal/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	expenseTitle    string
	expenseAmount   float64
	expenseCategory string
	expenseNote     string
	expenseDate     string
	expensesLimit   int
	expensesOffset  int
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Track business expenses",
}

var expensesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		expenses, err := a.api.Expenses.List(cmd.Context(), api.ListOptions{Limit: expensesLimit, Offset: expensesOffset})
		if err != nil {
			return err
		}
		if len(expenses) == 0 {
			pterm.Println("No expenses found")
			return nil
		}
		rows := make([][]string, 0, len(expenses))
		for _, e := range expenses {
			rows = append(rows, []string{e.ID, e.Date.Format("2006-01-02"), e.Title, e.Category, money(e.Amount)})
		}
		renderTable([]string{"ID", "Date", "Title", "Category", "Amount"}, rows)
		return nil
	},
}

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		date := time.Now()
		if expenseDate != "" {
			d, err := time.Parse("2006-01-02", expenseDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", expenseDate)
			}
			date = d
		}
		e, err := a.api.Expenses.Create(cmd.Context(), api.Expense{
			Title:    expenseTitle,
			Amount:   expenseAmount,
			Category: expenseCategory,
			Note:     expenseNote,
			Date:     date,
		})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Expense %s recorded (%s)\n", e.ID, money(e.Amount))
		return nil
	},
}

var expensesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		if err := a.api.Expenses.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		pterm.Printf("✅ Deleted expense %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expensesCmd)
	expensesCmd.AddCommand(expensesListCmd, expensesAddCmd, expensesDeleteCmd)

	expensesListCmd.Flags().IntVar(&expensesLimit, "limit", 50, "Maximum number of rows")
	expensesListCmd.Flags().IntVar(&expensesOffset, "offset", 0, "Rows to skip")

	expensesAddCmd.Flags().StringVar(&expenseTitle, "title", "", "Expense title")
	expensesAddCmd.Flags().Float64Var(&expenseAmount, "amount", 0, "Amount")
	expensesAddCmd.Flags().StringVar(&expenseCategory, "category", "", "Expense category")
	expensesAddCmd.Flags().StringVar(&expenseNote, "note", "", "Optional note")
	expensesAddCmd.Flags().StringVar(&expenseDate, "date", "", "Date as YYYY-MM-DD (default today)")
	_ = expensesAddCmd.MarkFlagRequired("title")
	_ = expensesAddCmd.MarkFlagRequired("amount")
}

// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	reportFrom string
	reportTo   string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Sales and expense summaries",
}

// parsePeriod resolves the --from/--to flags, defaulting to the last 30
// days ending now.
func parsePeriod() (time.Time, time.Time, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if reportFrom != "" {
		d, err := time.Parse("2006-01-02", reportFrom)
		if err != nil {
			return from, to, fmt.Errorf("invalid --from %q, want YYYY-MM-DD", reportFrom)
		}
		from = d
	}
	if reportTo != "" {
		d, err := time.Parse("2006-01-02", reportTo)
		if err != nil {
			return from, to, fmt.Errorf("invalid --to %q, want YYYY-MM-DD", reportTo)
		}
		to = d.AddDate(0, 0, 1) // inclusive end day
	}
	return from, to, nil
}

var reportsSalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Sales summary for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		from, to, err := parsePeriod()
		if err != nil {
			return err
		}

		cursor.Hide()
		stop := startInlineSpinner(os.Stdout, "Aggregating sales", 120*time.Millisecond)
		summary, err := a.api.Reports.SalesSummary(cmd.Context(), from, to)
		stop()
		cursor.Show()
		if err != nil {
			return err
		}

		body := fmt.Sprintf("Period:  %s — %s\nSales:   %d\nRevenue: %s",
			summary.From.Format("2006-01-02"), summary.To.Format("2006-01-02"),
			summary.Count, money(summary.Total))
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Sales report")).
			Println(body)

		if len(summary.TopProducts) > 0 {
			pterm.Println()
			rows := make([][]string, 0, len(summary.TopProducts))
			for _, p := range summary.TopProducts {
				rows = append(rows, []string{p.Name, qty(p.Quantity), money(p.Total)})
			}
			renderTable([]string{"Product", "Qty sold", "Revenue"}, rows)
		}
		return nil
	},
}

var reportsExpensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Expense summary for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		from, to, err := parsePeriod()
		if err != nil {
			return err
		}

		cursor.Hide()
		stop := startInlineSpinner(os.Stdout, "Aggregating expenses", 120*time.Millisecond)
		summary, err := a.api.Reports.ExpenseSummary(cmd.Context(), from, to)
		stop()
		cursor.Show()
		if err != nil {
			return err
		}

		body := fmt.Sprintf("Period:   %s — %s\nEntries:  %d\nTotal:    %s",
			summary.From.Format("2006-01-02"), summary.To.Format("2006-01-02"),
			summary.Count, money(summary.Total))
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Expense report")).
			Println(body)

		if len(summary.ByCategory) > 0 {
			pterm.Println()
			rows := make([][]string, 0, len(summary.ByCategory))
			for cat, total := range summary.ByCategory {
				rows = append(rows, []string{cat, money(total)})
			}
			renderTable([]string{"Category", "Total"}, rows)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(reportsSalesCmd, reportsExpensesCmd)

	reportsCmd.PersistentFlags().StringVar(&reportFrom, "from", "", "Period start as YYYY-MM-DD (default 30 days ago)")
	reportsCmd.PersistentFlags().StringVar(&reportTo, "to", "", "Period end as YYYY-MM-DD (default today)")
}

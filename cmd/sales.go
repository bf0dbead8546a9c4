// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"inventa/cli/internal/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	saleItems     []string
	salePayment   string
	saleCustomer  string
	saleWarehouse string
	salesLimit    int
	salesOffset   int
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Record and review sales",
}

var salesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sales",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		sales, err := a.api.Sales.List(cmd.Context(), api.ListOptions{Limit: salesLimit, Offset: salesOffset})
		if err != nil {
			return err
		}
		if len(sales) == 0 {
			pterm.Println("No sales found")
			return nil
		}
		rows := make([][]string, 0, len(sales))
		for _, s := range sales {
			rows = append(rows, []string{
				s.ID,
				s.CreatedAt.Format("2006-01-02 15:04"),
				strconv.Itoa(len(s.Items)),
				money(s.Total),
				s.PaymentMethod,
			})
		}
		renderTable([]string{"ID", "Date", "Items", "Total", "Payment"}, rows)
		return nil
	},
}

var salesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a sale",
	Long: `Record a sale with one or more line items. Each --item takes the form
product-id:quantity[:unit-price]; when unit-price is omitted the backend
uses the product's sale price.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		items, err := parseSaleItems(saleItems)
		if err != nil {
			return err
		}
		s, err := a.api.Sales.Create(cmd.Context(), api.Sale{
			Items:         items,
			PaymentMethod: salePayment,
			CustomerName:  saleCustomer,
			WarehouseID:   saleWarehouse,
		})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Sale %s recorded, total %s\n", s.ID, money(s.Total))
		return nil
	},
}

var salesVoidCmd = &cobra.Command{
	Use:   "void <id>",
	Short: "Void a sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		if err := a.api.Sales.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		pterm.Printf("✅ Voided sale %s\n", args[0])
		return nil
	},
}

// parseSaleItems converts "product:qty[:price]" specs into sale items.
func parseSaleItems(specs []string) ([]api.SaleItem, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one --item is required")
	}
	items := make([]api.SaleItem, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid item %q, want product-id:quantity[:unit-price]", spec)
		}
		q, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || q <= 0 {
			return nil, fmt.Errorf("invalid quantity in item %q", spec)
		}
		item := api.SaleItem{ProductID: parts[0], Quantity: q}
		if len(parts) == 3 {
			p, err := strconv.ParseFloat(parts[2], 64)
			if err != nil || p < 0 {
				return nil, fmt.Errorf("invalid unit price in item %q", spec)
			}
			item.UnitPrice = p
		}
		items = append(items, item)
	}
	return items, nil
}

func init() {
	rootCmd.AddCommand(salesCmd)
	salesCmd.AddCommand(salesListCmd, salesAddCmd, salesVoidCmd)

	salesListCmd.Flags().IntVar(&salesLimit, "limit", 50, "Maximum number of rows")
	salesListCmd.Flags().IntVar(&salesOffset, "offset", 0, "Rows to skip")

	salesAddCmd.Flags().StringArrayVar(&saleItems, "item", nil, "Line item as product-id:quantity[:unit-price] (repeatable)")
	salesAddCmd.Flags().StringVar(&salePayment, "payment", "cash", "Payment method")
	salesAddCmd.Flags().StringVar(&saleCustomer, "customer", "", "Customer name")
	salesAddCmd.Flags().StringVar(&saleWarehouse, "warehouse", "", "Warehouse ID")
	_ = salesAddCmd.MarkFlagRequired("item")
}

// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"inventa/cli/internal/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	listLimit  int
	listOffset int
	listSearch string

	productName      string
	productSKU       string
	productBarcode   string
	productCategory  string
	productWarehouse string
	productUnit      string
	productCost      float64
	productPrice     float64
	productQty       float64
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		products, err := a.api.Products.List(cmd.Context(), api.ListOptions{Limit: listLimit, Offset: listOffset, Search: listSearch})
		if err != nil {
			return err
		}
		if len(products) == 0 {
			pterm.Println("No products found")
			return nil
		}
		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, []string{p.ID, p.Name, p.SKU, qty(p.Quantity), money(p.SalePrice)})
		}
		renderTable([]string{"ID", "Name", "SKU", "Qty", "Price"}, rows)
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		p, err := a.api.Products.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		body := fmt.Sprintf("Name:      %s\nSKU:       %s\nBarcode:   %s\nUnit:      %s\nQuantity:  %s\nCost:      %s\nPrice:     %s",
			p.Name, p.SKU, p.Barcode, p.Unit, qty(p.Quantity), money(p.CostPrice), money(p.SalePrice))
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Product "+p.ID)).
			Println(body)
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		p, err := a.api.Products.Create(cmd.Context(), api.Product{
			Name:        productName,
			SKU:         productSKU,
			Barcode:     productBarcode,
			CategoryID:  productCategory,
			WarehouseID: productWarehouse,
			Unit:        productUnit,
			CostPrice:   productCost,
			SalePrice:   productPrice,
			Quantity:    productQty,
		})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Created product %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		current, err := a.api.Products.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		// Only flags the user set override the current values.
		if cmd.Flags().Changed("name") {
			current.Name = productName
		}
		if cmd.Flags().Changed("sku") {
			current.SKU = productSKU
		}
		if cmd.Flags().Changed("cost") {
			current.CostPrice = productCost
		}
		if cmd.Flags().Changed("price") {
			current.SalePrice = productPrice
		}
		if cmd.Flags().Changed("qty") {
			current.Quantity = productQty
		}
		p, err := a.api.Products.Update(cmd.Context(), args[0], *current)
		if err != nil {
			return err
		}
		pterm.Printf("✅ Updated product %s\n", p.ID)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		if err := a.api.Products.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		pterm.Printf("✅ Deleted product %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsAddCmd, productsUpdateCmd, productsDeleteCmd)

	productsListCmd.Flags().IntVar(&listLimit, "limit", 50, "Maximum number of rows")
	productsListCmd.Flags().IntVar(&listOffset, "offset", 0, "Rows to skip")
	productsListCmd.Flags().StringVar(&listSearch, "search", "", "Filter by name or SKU")

	for _, c := range []*cobra.Command{productsAddCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().StringVar(&productSKU, "sku", "", "Stock keeping unit")
		c.Flags().StringVar(&productBarcode, "barcode", "", "Barcode")
		c.Flags().StringVar(&productCategory, "category", "", "Category ID")
		c.Flags().StringVar(&productWarehouse, "warehouse", "", "Warehouse ID")
		c.Flags().StringVar(&productUnit, "unit", "", "Unit of measure")
		c.Flags().Float64Var(&productCost, "cost", 0, "Cost price")
		c.Flags().Float64Var(&productPrice, "price", 0, "Sale price")
		c.Flags().Float64Var(&productQty, "qty", 0, "Quantity on hand")
	}
	_ = productsAddCmd.MarkFlagRequired("name")
}

package cmd

import (
	"inventa/cli/internal/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	transferProduct string
	transferFrom    string
	transferTo      string
	transferQty     float64
	transferNote    string
)

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Move stock between warehouses",
}

var transfersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transfers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		transfers, err := a.api.Transfers.List(cmd.Context(), api.ListOptions{})
		if err != nil {
			return err
		}
		if len(transfers) == 0 {
			pterm.Println("No transfers found")
			return nil
		}
		rows := make([][]string, 0, len(transfers))
		for _, t := range transfers {
			rows = append(rows, []string{t.ID, t.ProductID, t.FromWarehouseID, t.ToWarehouseID, qty(t.Quantity)})
		}
		renderTable([]string{"ID", "Product", "From", "To", "Qty"}, rows)
		return nil
	},
}

var transfersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a stock transfer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		t, err := a.api.Transfers.Create(cmd.Context(), api.Transfer{
			ProductID:       transferProduct,
			FromWarehouseID: transferFrom,
			ToWarehouseID:   transferTo,
			Quantity:        transferQty,
			Note:            transferNote,
		})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Transfer %s recorded\n", t.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transfersCmd)
	transfersCmd.AddCommand(transfersListCmd, transfersAddCmd)

	transfersAddCmd.Flags().StringVar(&transferProduct, "product", "", "Product ID")
	transfersAddCmd.Flags().StringVar(&transferFrom, "from", "", "Source warehouse ID")
	transfersAddCmd.Flags().StringVar(&transferTo, "to", "", "Destination warehouse ID")
	transfersAddCmd.Flags().Float64Var(&transferQty, "qty", 0, "Quantity to move")
	transfersAddCmd.Flags().StringVar(&transferNote, "note", "", "Optional note")
	_ = transfersAddCmd.MarkFlagRequired("product")
	_ = transfersAddCmd.MarkFlagRequired("from")
	_ = transfersAddCmd.MarkFlagRequired("to")
	_ = transfersAddCmd.MarkFlagRequired("qty")
}

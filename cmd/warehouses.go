// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"inventa/cli/internal/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	warehouseName    string
	warehouseAddress string
)

var warehousesCmd = &cobra.Command{
	Use:   "warehouses",
	Short: "Manage stock locations",
}

var warehousesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List warehouses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		warehouses, err := a.api.Warehouses.List(cmd.Context(), api.ListOptions{})
		if err != nil {
			return err
		}
		if len(warehouses) == 0 {
			pterm.Println("No warehouses found")
			return nil
		}
		rows := make([][]string, 0, len(warehouses))
		for _, w := range warehouses {
			rows = append(rows, []string{w.ID, w.Name, w.Address})
		}
		renderTable([]string{"ID", "Name", "Address"}, rows)
		return nil
	},
}

var warehousesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a warehouse",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		w, err := a.api.Warehouses.Create(cmd.Context(), api.Warehouse{Name: warehouseName, Address: warehouseAddress})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Created warehouse %s (%s)\n", w.Name, w.ID)
		return nil
	},
}

var warehousesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a warehouse",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		current, err := a.api.Warehouses.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("name") {
			current.Name = warehouseName
		}
		if cmd.Flags().Changed("address") {
			current.Address = warehouseAddress
		}
		w, err := a.api.Warehouses.Update(cmd.Context(), args[0], *current)
		if err != nil {
			return err
		}
		pterm.Printf("✅ Updated warehouse %s\n", w.ID)
		return nil
	},
}

var warehousesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a warehouse",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		if err := a.api.Warehouses.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		pterm.Printf("✅ Deleted warehouse %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(warehousesCmd)
	warehousesCmd.AddCommand(warehousesListCmd, warehousesAddCmd, warehousesUpdateCmd, warehousesDeleteCmd)

	for _, c := range []*cobra.Command{warehousesAddCmd, warehousesUpdateCmd} {
		c.Flags().StringVar(&warehouseName, "name", "", "Warehouse name")
		c.Flags().StringVar(&warehouseAddress, "address", "", "Warehouse address")
	}
	_ = warehousesAddCmd.MarkFlagRequired("name")
}

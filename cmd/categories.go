package cmd

import (
	"inventa/cli/internal/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var categoryName string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage product categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		categories, err := a.api.Categories.List(cmd.Context(), api.ListOptions{})
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			pterm.Println("No categories found")
			return nil
		}
		rows := make([][]string, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, []string{c.ID, c.Name})
		}
		renderTable([]string{"ID", "Name"}, rows)
		return nil
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		c, err := a.api.Categories.Create(cmd.Context(), api.Category{Name: args[0]})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Created category %s (%s)\n", c.Name, c.ID)
		return nil
	},
}

var categoriesRenameCmd = &cobra.Command{
	Use:   "rename <id>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		c, err := a.api.Categories.Update(cmd.Context(), args[0], api.Category{Name: categoryName})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Renamed category %s\n", c.ID)
		return nil
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		if err := a.api.Categories.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		pterm.Printf("✅ Deleted category %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd, categoriesRenameCmd, categoriesDeleteCmd)

	categoriesRenameCmd.Flags().StringVar(&categoryName, "name", "", "New category name")
	_ = categoriesRenameCmd.MarkFlagRequired("name")
}

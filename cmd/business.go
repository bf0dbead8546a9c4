package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	businessName     string
	businessCurrency string
	businessAddress  string
	businessPhone    string
)

var businessCmd = &cobra.Command{
	Use:   "business",
	Short: "View and update the business profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		b, err := a.api.Business.Get(cmd.Context())
		if err != nil {
			return err
		}
		body := fmt.Sprintf("Name:     %s\nCurrency: %s\nAddress:  %s\nPhone:    %s",
			b.Name, b.Currency, b.Address, b.Phone)
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Business")).
			Println(body)
		return nil
	},
}

var businessUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the business profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		current, err := a.api.Business.Get(cmd.Context())
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("name") {
			current.Name = businessName
		}
		if cmd.Flags().Changed("currency") {
			current.Currency = businessCurrency
		}
		if cmd.Flags().Changed("address") {
			current.Address = businessAddress
		}
		if cmd.Flags().Changed("phone") {
			current.Phone = businessPhone
		}
		b, err := a.api.Business.Update(cmd.Context(), *current)
		if err != nil {
			return err
		}
		pterm.Printf("✅ Business profile updated (%s)\n", b.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(businessCmd)
	businessCmd.AddCommand(businessUpdateCmd)

	businessUpdateCmd.Flags().StringVar(&businessName, "name", "", "Business name")
	businessUpdateCmd.Flags().StringVar(&businessCurrency, "currency", "", "Currency code")
	businessUpdateCmd.Flags().StringVar(&businessAddress, "address", "", "Address")
	businessUpdateCmd.Flags().StringVar(&businessPhone, "phone", "", "Phone number")
}

// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Inventa client.
// Each subcommand is a thin consumer of the gateway client: the original
// app's screens (products, sales, expenses, reports, administration) map
// one-to-one onto cobra commands rendered with pterm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showVersion bool

// rootCmd is the entry point when inventa is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "inventa",
	Short:         "Inventa CLI for inventory, sales and expense tracking",
	Long:          `Inventa is a command-line client for the Inventa inventory, sales and expense-tracking service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("inventa %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}

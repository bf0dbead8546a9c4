// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd clears the local session and invalidates it server-side
// (best-effort; local credentials are removed even when offline).
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove saved credentials",
	Long: `The logout command clears the stored session from the OS keychain and
attempts to invalidate the session on the backend (best-effort).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		if a.session.Token() != "" {
			_ = a.api.Auth.Logout(cmd.Context()) // best effort
		}
		a.session.Clear()

		pterm.Println("✅ Signed out; credentials removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

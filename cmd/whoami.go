package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd shows the current authenticated user. It prefers a fresh
// profile from the backend and falls back to the locally persisted
// identity when offline.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated
account. It validates the session with the backend when reachable and falls
back to the locally stored identity otherwise.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}

		if u, err := a.api.Auth.Me(cmd.Context()); err == nil {
			fmt.Printf("👤 %s <%s> — %s\n", u.Name, u.Email, u.Role)
			return nil
		}

		// Offline or server trouble: the cached identity is still useful.
		if u := a.session.User(); u != nil {
			fmt.Printf("👤 %s — %s (cached)\n", u.Name, u.Role)
			return nil
		}
		fmt.Println("🔒 You're not logged in yet!")
		fmt.Println("   Run 'inventa login' to get started.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

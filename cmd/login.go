// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"inventa/cli/internal/logging"
	"inventa/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var loginEmail string

// loginCmd authenticates against the backend with email and password.
// The access token and user identity are stored in the session store
// (keychain-persisted); the refresh token arrives as an HTTP-only cookie
// handled by the gateway client's cookie jar.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to your Inventa account",
	Long: `The login command authenticates this device with your Inventa account.
You will be prompted for your email and password unless provided via flags.
On success the access token is stored securely in the OS keychain and
subsequent commands run authenticated.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		// Already logged in with a live session? Short-circuit.
		if u := a.session.User(); u != nil && a.session.Token() != "" {
			if _, err := a.api.Auth.Me(ctx); err == nil {
				fmt.Printf("Already logged in as %s\n", u.Name)
				return nil
			}
		}

		email := loginEmail
		if email == "" {
			email, err = pterm.DefaultInteractiveTextInput.Show("Email")
			if err != nil {
				return err
			}
		}
		password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}

		resp, err := a.api.Auth.Login(ctx, email, password)
		if err != nil {
			pterm.Println("❌ Login failed")
			pterm.Println(logging.PresentError("", err))
			return err
		}

		var user *session.User
		if resp.User != nil {
			user = &session.User{ID: resp.User.ID, Name: resp.User.Name, Role: resp.User.Role, BusinessID: resp.User.BusinessID}
		} else if u, err := session.UserFromToken(resp.AccessToken); err == nil {
			// Older backends omit the profile; fall back to token claims.
			user = u
		}
		a.session.Set(resp.AccessToken, user)

		name := email
		if user != nil && user.Name != "" {
			name = user.Name
		}
		pterm.Printf("✅ Welcome back, %s!\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
}

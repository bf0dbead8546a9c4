// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"inventa/cli/internal/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	userName     string
	userEmail    string
	userRole     string
	userPassword string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Administer business account members",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List members",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		users, err := a.api.Users.List(cmd.Context(), api.ListOptions{})
		if err != nil {
			return err
		}
		if len(users) == 0 {
			pterm.Println("No users found")
			return nil
		}
		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{u.ID, u.Name, u.Email, u.Role})
		}
		renderTable([]string{"ID", "Name", "Email", "Role"}, rows)
		return nil
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Invite a member",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		password := userPassword
		if password == "" {
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Initial password")
			if err != nil {
				return err
			}
		}
		u, err := a.api.Users.Create(cmd.Context(), api.CreateUserRequest{
			Name:     userName,
			Email:    userEmail,
			Role:     userRole,
			Password: password,
		})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Added %s (%s) as %s\n", u.Name, u.Email, u.Role)
		return nil
	},
}

var usersSetRoleCmd = &cobra.Command{
	Use:   "set-role <id>",
	Short: "Change a member's role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		u, err := a.api.Users.Update(cmd.Context(), args[0], api.User{Role: userRole})
		if err != nil {
			return err
		}
		pterm.Printf("✅ %s is now %s\n", u.Name, u.Role)
		return nil
	},
}

var usersRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		if err := a.api.Users.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		pterm.Printf("✅ Removed user %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersAddCmd, usersSetRoleCmd, usersRemoveCmd)

	usersAddCmd.Flags().StringVar(&userName, "name", "", "Member name")
	usersAddCmd.Flags().StringVar(&userEmail, "email", "", "Member email")
	usersAddCmd.Flags().StringVar(&userRole, "role", "staff", "Role (owner, admin, staff)")
	usersAddCmd.Flags().StringVar(&userPassword, "password", "", "Initial password (prompted when omitted)")
	_ = usersAddCmd.MarkFlagRequired("name")
	_ = usersAddCmd.MarkFlagRequired("email")

	usersSetRoleCmd.Flags().StringVar(&userRole, "role", "", "New role")
	_ = usersSetRoleCmd.MarkFlagRequired("role")
}

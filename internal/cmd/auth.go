package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wanderly/wanderly-cli/pkg/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  "Log in, register, log out, and inspect the current session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Wanderly",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().Login()
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Wanderly account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().Register()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().WhoAmI()
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}

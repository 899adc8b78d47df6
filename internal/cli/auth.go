package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var user User
			err := client.Post("/register", map[string]string{
				"username": args[0],
				"password": password,
			}, &user)
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(user)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password for the new account")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and store the bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var result TokenResult
			err := client.Post("/login", map[string]string{
				"username": args[0],
				"password": password,
			}, &result)
			if err != nil {
				out.PrintError(err)
				return err
			}

			if err := cfg.SaveToken(result.Token); err != nil {
				out.PrintError(fmt.Errorf("failed to save token: %w", err))
				return err
			}
			client.SetToken(result.Token)

			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if err := cfg.ClearToken(); err != nil {
				out.PrintError(err)
				return err
			}

			out.PrintMessage("Logged out")
			return nil
		},
	}
}

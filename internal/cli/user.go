package cli

import (
	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersCreateCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var users []User
			if err := client.Get("/users", &users); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(users)
			return nil
		},
	}
}

func newUsersCreateCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a user (authenticated variant of register)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var user User
			err := client.Post("/users", map[string]string{
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

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if err := client.Delete("/users/" + args[0]); err != nil {
				out.PrintError(err)
				return err
			}

			out.PrintMessage("Deleted")
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

// resourceCommand describes one registry's CLI surface
type resourceCommand struct {
	use   string
	path  string
	short string
}

var resourceCommands = []resourceCommand{
	{use: "apps", path: "/apps", short: "Manage application records"},
	{use: "storage", path: "/storage", short: "Manage storage bucket records"},
	{use: "databases", path: "/databases", short: "Manage database records"},
	{use: "static-sites", path: "/static-sites", short: "Manage static site records"},
}

func newResourceCmd(rc resourceCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   rc.use,
		Short: rc.short,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var resources []Resource
			if err := client.Get(rc.path, &resources); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(resources)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var res Resource
			if err := client.Post(rc.path, map[string]string{"name": args[0]}, &res); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(res)
			return nil
		},
	})

	return cmd
}

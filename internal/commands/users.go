package commands

import (
	"github.com/spf13/cobra"

	"github.com/provtools/provctl/internal/output"
)

func usersCommand(deps *Deps) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "get-users <url> <id>",
		Short: "List the users of a customer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}

			client, err := deps.connect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			users, err := client.ListCustomerUsers(cmd.Context(), id, flags.params(cmd))
			if err != nil {
				return err
			}
			return output.Users(deps.Out, deps.format(flags.csv), users)
		},
	}

	flags.register(cmd)

	return cmd
}

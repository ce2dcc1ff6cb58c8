package commands

import (
	"github.com/spf13/cobra"

	"github.com/provtools/provctl/internal/output"
)

func getCommand(deps *Deps) *cobra.Command {
	var flagAttributes bool
	var flagCSV bool

	cmd := &cobra.Command{
		Use:   "get <url> <id>",
		Short: "Show a single customer",
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

			customer, err := client.GetCustomer(cmd.Context(), id, flagAttributes)
			if err != nil {
				return err
			}
			return output.Customer(deps.Out, deps.format(flagCSV), customer)
		},
	}

	cmd.Flags().BoolVar(&flagAttributes, "attributes", false, "Include customer attributes")
	cmd.Flags().BoolVar(&flagCSV, "csv", false, "Print CSV instead of the configured format")

	return cmd
}

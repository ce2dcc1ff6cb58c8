package commands

import (
	"github.com/spf13/cobra"

	"github.com/provtools/provctl/internal/output"
	"github.com/provtools/provctl/internal/progress"
)

func listCommand(deps *Deps) *cobra.Command {
	var flags listFlags
	var flagAll bool
	var flagAttributes bool

	cmd := &cobra.Command{
		Use:   "list <url>",
		Short: "List customers",
		Long:  "List customers of the provisioning endpoint, one page at a time or all pages with --all.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := deps.connect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			params := flags.params(cmd)
			format := deps.format(flags.csv)
			if flagAll {
				indicator := progress.NewIndicator(deps.Err)
				if format != output.FormatPretty {
					// Scripted output, keep stderr free of progress noise.
					indicator.Disable()
				}
				list, err := client.ListAllCustomers(cmd.Context(), params, flagAttributes, indicator.PageFetched)
				if err != nil {
					return err
				}
				return output.Customers(deps.Out, format, list)
			}

			list, err := client.ListCustomers(cmd.Context(), params, flagAttributes)
			if err != nil {
				return err
			}
			return output.Customers(deps.Out, format, list)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flagAll, "all", false, "Fetch every page, not just one")
	cmd.Flags().BoolVar(&flagAttributes, "attributes", false, "Include customer attributes")

	return cmd
}

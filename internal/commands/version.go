package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the provctl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version := deps.Version
			if version == "" {
				version = "dev"
			}
			fmt.Fprintf(deps.Out, "provctl %s\n", version)
			return nil
		},
	}
}

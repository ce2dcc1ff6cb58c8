package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/provtools/provctl/internal/credentials"
)

func configCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored credentials",
		Long:  "Store, inspect and remove the service token kept per endpoint in the OS keychain.",
	}

	cmd.AddCommand(configSetCommand(deps))
	cmd.AddCommand(configGetCommand(deps))
	cmd.AddCommand(configDeleteCommand(deps))

	return cmd
}

func configSetCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set <url> <token>",
		Short: "Store a token for an endpoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := deps.normalizeURL(args[0])

			start := time.Now()
			err := deps.Store.Set(credentials.ServiceName, url, args[1])
			deps.record("credentials.set", "provctl config set", map[string]string{
				"url":   url,
				"token": args[1],
			}, start, err)
			if err != nil {
				return err
			}

			fmt.Fprintf(deps.Out, "Stored credentials for %s\n", url)
			return nil
		},
	}
}

func configGetCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Show the stored token for an endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := deps.normalizeURL(args[0])

			token, err := deps.Store.Get(credentials.ServiceName, url)
			if err != nil {
				return err
			}

			fmt.Fprintf(deps.Out, "Stored token for %s is %s\n", url, token)
			return nil
		},
	}
}

func configDeleteCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <url>",
		Short: "Remove the stored token for an endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := deps.normalizeURL(args[0])

			start := time.Now()
			err := deps.Store.Delete(credentials.ServiceName, url)
			deps.record("credentials.delete", "provctl config delete", map[string]string{
				"url": url,
			}, start, err)
			if err != nil {
				return err
			}

			fmt.Fprintf(deps.Out, "Deleted credentials for %s\n", url)
			return nil
		},
	}
}

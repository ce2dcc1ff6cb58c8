package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func deleteCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <url> <id>",
		Short: "Delete a customer",
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

			start := time.Now()
			err = client.DeleteCustomer(cmd.Context(), id)
			deps.record("customer.delete", "provctl delete", map[string]string{
				"url":         args[0],
				"customer_id": args[1],
			}, start, err)
			if err != nil {
				return err
			}

			fmt.Fprintf(deps.Out, "Customer with id %d deleted.\n", id)
			return nil
		},
	}
}

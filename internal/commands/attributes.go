package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/provtools/provctl/internal/client/provisioning"
	"github.com/provtools/provctl/internal/output"
)

func attributesGetCommand(deps *Deps) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "get-attributes <url> <id>",
		Short: "List the attributes of a customer",
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

			attrs, err := client.GetCustomerAttributes(cmd.Context(), id, flags.params(cmd))
			if err != nil {
				return err
			}
			return output.Attributes(deps.Out, deps.format(flags.csv), id, attrs)
		},
	}

	flags.register(cmd)

	return cmd
}

func attributesSetCommand(deps *Deps) *cobra.Command {
	var flagAttrs []string

	cmd := &cobra.Command{
		Use:   "set-attributes <url> <id>",
		Short: "Set attributes on a customer",
		Long:  "Set key-value attributes on a customer. Existing keys are overwritten, other keys stay untouched.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			if len(flagAttrs) == 0 {
				return fmt.Errorf("at least one --attribute key=value is required")
			}

			attrs := provisioning.NewCustomerAttributes()
			for _, raw := range flagAttrs {
				key, value, err := parseKeyValue(raw)
				if err != nil {
					return err
				}
				attrs.Add(key, value)
			}

			client, err := deps.connect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			customer, err := client.UpdateCustomerAttributes(cmd.Context(), id, attrs)
			deps.record("customer.attributes.update", "provctl set-attributes", map[string]string{
				"url":         args[0],
				"customer_id": args[1],
			}, start, err)
			if err != nil {
				return err
			}

			fmt.Fprintf(deps.Out, "Attributes updated for customer %d (%s).\n", customer.ID, customer.CompanyName)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&flagAttrs, "attribute", "a", nil, "Attribute as key=value, repeatable")

	return cmd
}

package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/provtools/provctl/internal/client/provisioning"
)

func updateCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a customer",
		Long:  "Update a single customer field. Fields not named stay untouched.",
	}

	cmd.AddCommand(updateCompanyNameCommand(deps))
	cmd.AddCommand(updateQuotaMaxCommand(deps))
	cmd.AddCommand(updateUserMaxCommand(deps))

	return cmd
}

func updateCompanyNameCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "company-name <url> <id> <name>",
		Short: "Rename a customer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := provisioning.UpdateCustomerRequest{
				CompanyName: provisioning.String(args[2]),
			}
			return runUpdate(cmd, deps, args[0], args[1], "provctl update company-name", req)
		},
	}
}

func updateQuotaMaxCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "quota-max <url> <id> <bytes>",
		Short: "Set the customer quota in bytes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quota, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quota %q", args[2])
			}
			req := provisioning.UpdateCustomerRequest{
				QuotaMax: provisioning.Int64(quota),
			}
			return runUpdate(cmd, deps, args[0], args[1], "provctl update quota-max", req)
		},
	}
}

func updateUserMaxCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "user-max <url> <id> <count>",
		Short: "Set the customer user limit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user limit %q", args[2])
			}
			req := provisioning.UpdateCustomerRequest{
				UserMax: provisioning.Int64(users),
			}
			return runUpdate(cmd, deps, args[0], args[1], "provctl update user-max", req)
		},
	}
}

func runUpdate(cmd *cobra.Command, deps *Deps, url, idArg, command string, req provisioning.UpdateCustomerRequest) error {
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	client, err := deps.connect(cmd.Context(), url)
	if err != nil {
		return err
	}

	start := time.Now()
	updated, err := client.UpdateCustomer(cmd.Context(), id, req)
	deps.record("customer.update", command, map[string]string{
		"url":         url,
		"customer_id": idArg,
	}, start, err)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Out, "Customer updated.")
	fmt.Fprintf(deps.Out, "Company name: %s | user max: %d | quota max: %d | id: %d\n",
		updated.CompanyName, updated.UserMax, updated.QuotaMax, updated.ID)
	return nil
}

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/provtools/provctl/internal/client/provisioning"
	"github.com/provtools/provctl/internal/errors"
	"github.com/provtools/provctl/internal/prompt"
)

func createCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a customer from a JSON file or interactively.",
	}

	cmd.AddCommand(createFromFileCommand(deps))
	cmd.AddCommand(createPromptCommand(deps))

	return cmd
}

func createFromFileCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "from-file <url> <path>",
		Short: "Create a customer from a JSON request file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readCustomerFile(args[1])
			if err != nil {
				return err
			}
			return runCreate(cmd, deps, args[0], "provctl create from-file", req)
		},
	}
}

func createPromptCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <url>",
		Short: "Create a customer interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := prompt.NewCustomer(deps.In, deps.Err)
			if err != nil {
				return err
			}
			return runCreate(cmd, deps, args[0], "provctl create prompt", req)
		},
	}
}

func readCustomerFile(path string) (*provisioning.NewCustomerRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO(err)
	}
	var req provisioning.NewCustomerRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, errors.NewIO(err)
	}
	return &req, nil
}

func runCreate(cmd *cobra.Command, deps *Deps, url, command string, req *provisioning.NewCustomerRequest) error {
	client, err := deps.connect(cmd.Context(), url)
	if err != nil {
		return err
	}

	start := time.Now()
	created, err := client.CreateCustomer(cmd.Context(), *req)
	params := map[string]string{"url": url, "contract_type": req.CustomerContractType}
	if req.CompanyName != nil {
		params["company_name"] = *req.CompanyName
	}
	deps.record("customer.create", command, params, start, err)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Out, "Customer created.")
	fmt.Fprintf(deps.Out, "Company name: %s | user max: %d | quota max: %d | id: %d\n",
		created.CompanyName, created.UserMax, created.QuotaMax, created.ID)
	return nil
}

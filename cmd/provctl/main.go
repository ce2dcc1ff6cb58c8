// Command provctl is the provisioning API command-line client.
//
// Purpose:
//
//	Manage customers of a provisioning endpoint: list, inspect, create,
//	update and delete customers, read and set their attributes, list
//	their users, and keep the per-endpoint service token in the OS
//	keychain.
//
// Dependencies:
//   - internal/commands: Cobra command implementations
//   - internal/client/provisioning: Typed API client
//   - internal/credentials: OS keychain access
package main

import (
	"fmt"
	"os"

	"github.com/provtools/provctl/internal/commands"
)

var version = "dev"

func main() {
	deps := commands.NewDeps(version)
	root := commands.NewRootCommand(deps)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

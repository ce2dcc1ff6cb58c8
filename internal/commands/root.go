// Package commands wires the provctl command tree.
//
// Purpose:
//
//	Customer lifecycle commands (list, get, create, update, delete),
//	customer attribute and user commands, and credential management,
//	all bound to an injected dependency set so tests can swap the
//	credential store, prompter and streams.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/provtools/provctl/internal/audit"
	"github.com/provtools/provctl/internal/client/provisioning"
	"github.com/provtools/provctl/internal/config"
	"github.com/provtools/provctl/internal/credentials"
	"github.com/provtools/provctl/internal/logger"
	"github.com/provtools/provctl/internal/output"
	"github.com/provtools/provctl/internal/prompt"
	"github.com/provtools/provctl/internal/session"
)

// Deps carries every capability a command needs. Production wiring
// lives in main; tests substitute in-memory implementations.
type Deps struct {
	Store         credentials.Store
	Prompter      prompt.Prompter
	In            io.Reader
	Out           io.Writer
	Err           io.Writer
	ClientOptions []provisioning.Option
	Config        *config.Config
	Log           *zap.Logger
	Audit         *audit.Logger
	Version       string

	// Normalize overrides endpoint normalization; nil uses the
	// default https upgrade.
	Normalize func(string) string

	token   string
	verbose bool
}

// NewDeps returns the production dependency set.
func NewDeps(version string) *Deps {
	return &Deps{
		Store:    credentials.NewKeyringStore(),
		Prompter: prompt.NewTerminalPrompter(),
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Version:  version,
	}
}

// NewRootCommand builds the provctl command tree.
func NewRootCommand(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "provctl",
		Short:         "Manage provisioning customers",
		Long:          "provctl manages customers, their attributes and users through the provisioning API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return deps.init()
		},
	}

	root.PersistentFlags().StringVar(&deps.token, "token", "", "Service token (overrides stored credentials, never persisted)")
	root.PersistentFlags().BoolVar(&deps.verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(listCommand(deps))
	root.AddCommand(getCommand(deps))
	root.AddCommand(createCommand(deps))
	root.AddCommand(updateCommand(deps))
	root.AddCommand(deleteCommand(deps))
	root.AddCommand(attributesGetCommand(deps))
	root.AddCommand(attributesSetCommand(deps))
	root.AddCommand(usersCommand(deps))
	root.AddCommand(configCommand(deps))
	root.AddCommand(versionCommand(deps))

	return root
}

// init fills in the dependencies commands resolve lazily: config,
// logger and audit sink.
func (d *Deps) init() error {
	if d.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		d.Config = cfg
	}
	if d.Log == nil {
		level := d.Config.LogLevel
		if d.verbose {
			level = "debug"
		}
		d.Log = logger.New(level)
	}
	if d.Audit == nil {
		d.Audit = audit.NewLogger(d.Log)
	}
	return nil
}

// connect resolves credentials for url and returns a validated client.
func (d *Deps) connect(ctx context.Context, url string) (*provisioning.Client, error) {
	opts := append([]provisioning.Option{provisioning.WithLogger(d.Log)}, d.ClientOptions...)
	b := session.NewBootstrap(d.Store, d.Prompter, opts...)
	if d.Normalize != nil {
		b.Normalize = d.Normalize
	}
	return b.Connect(ctx, url, d.token)
}

// normalizeURL applies the same endpoint rewrite the bootstrap uses.
func (d *Deps) normalizeURL(raw string) string {
	if d.Normalize != nil {
		return d.Normalize(raw)
	}
	return session.NormalizeURL(raw)
}

// format picks the output format: the csv flag wins, then the
// configured default.
func (d *Deps) format(csv bool) output.Format {
	if csv {
		return output.FormatCSV
	}
	if d.Config != nil && d.Config.OutputFormat != "" {
		return output.Format(d.Config.OutputFormat)
	}
	return output.FormatPretty
}

// record writes one audit entry for a mutating command.
func (d *Deps) record(opType, command string, params map[string]string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	d.Audit.Record(audit.Operation{
		Type:       opType,
		Command:    command,
		Parameters: params,
		Outcome:    outcome,
		Duration:   time.Since(start),
		Err:        err,
	})
}

// listFlags are the pagination and filter flags shared by every
// listing command.
type listFlags struct {
	filter string
	sort   string
	offset int64
	limit  int64
	csv    bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.filter, "filter", "f", "", "Filter expression")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", "", "Sort expression")
	cmd.Flags().Int64VarP(&f.offset, "offset", "o", 0, "Range offset")
	cmd.Flags().Int64VarP(&f.limit, "limit", "l", 0, "Range limit (default 500)")
	cmd.Flags().BoolVar(&f.csv, "csv", false, "Print CSV instead of the configured format")
}

// params converts the flags into list parameters, distinguishing unset
// flags from explicit zero values.
func (f *listFlags) params(cmd *cobra.Command) provisioning.ListParams {
	p := provisioning.ListParams{Filter: f.filter, Sort: f.sort}
	if cmd.Flags().Changed("offset") {
		p.Offset = provisioning.Int64(f.offset)
	}
	if cmd.Flags().Changed("limit") {
		p.Limit = provisioning.Int64(f.limit)
	}
	return p
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid customer id %q", arg)
	}
	return id, nil
}

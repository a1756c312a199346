// Package cli implements favctl, the administration tool of fave-tweets.
//
// Every subcommand loads the same configuration as the server (environment
// plus an optional JSON file) and talks to the database directly.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fave-tweets/internal/app"
	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/models"
)

// RootOptions holds the global flags and the hooks shared by all commands.
type RootOptions struct {
	ConfigPath string
	Format     string // "text" | "json"
	LogLevel   string

	// AppOptions are passed to app.NewApp. Tests use them to replace the
	// favorites source.
	AppOptions app.Options
}

// ValidFormats are the accepted values of --format.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the favctl command tree.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&RootOptions{AppOptions: app.Options{BuildInfo: build}})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favctl",
		Short: "Administer a fave-tweets installation",
		Long: `favctl applies database migrations, synchronises favorites outside of
the web flow, lists accounts and issues development session tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level written to stderr")

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newSyncCommand(opts))
	cmd.AddCommand(newUsersCommand(opts))
	cmd.AddCommand(newSessionCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))

	return cmd
}

// env is what a command needs to run: the loaded configuration, a logger
// writing to stderr and the output formatter.
type env struct {
	cfg    *config.StructuredConfig
	log    *logger.Logger
	output *OutputFormatter
}

func loadEnv(opts *RootOptions, cmd *cobra.Command) (*env, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading configuration", err)
	}

	return &env{
		cfg: cfg,
		log: logger.NewLoggerWithWriter(cmd.ErrOrStderr(), "favctl", opts.LogLevel),
		output: &OutputFormatter{
			Format: opts.Format,
			Writer: cmd.OutOrStdout(),
		},
	}, nil
}

// openApp loads the configuration and builds the application over it.
func openApp(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*env, *app.App, error) {
	e, err := loadEnv(opts, cmd)
	if err != nil {
		return nil, nil, err
	}

	a, err := app.NewApp(ctx, e.cfg, opts.AppOptions, e.log)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "initialising application", err)
	}

	return e, a, nil
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fave-tweets/internal/store"
)

type migrateResult struct {
	Dialect string `json:"dialect"`
	Version int64  `json:"version"`
}

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(opts, cmd)
		},
	}
}

func runMigrate(opts *RootOptions, cmd *cobra.Command) error {
	e, err := loadEnv(opts, cmd)
	if err != nil {
		return err
	}

	db, err := store.NewConnect(cmd.Context(), e.cfg.Storage.DB, e.log)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return WrapExitError(ExitFailure, "applying migrations", err)
	}

	version, err := db.SchemaVersion()
	if err != nil {
		return WrapExitError(ExitFailure, "reading schema version", err)
	}

	result := migrateResult{Dialect: db.Dialect(), Version: version}
	return e.output.Print(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s schema at version %d\n", result.Dialect, result.Version)
		return err
	})
}

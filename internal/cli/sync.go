package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fave-tweets/internal/service"
	"github.com/MKhiriev/fave-tweets/internal/workers"
	"github.com/MKhiriev/fave-tweets/models"
)

type syncOptions struct {
	uid int64
	all bool
}

type syncAllResult struct {
	Synced int `json:"synced"`
	Failed int `json:"failed"`
}

func newSyncCommand(opts *RootOptions) *cobra.Command {
	so := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronise favorites of one account or of every known user",
		Example: `  favctl sync --uid 783214
  favctl sync --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(opts, so, cmd)
		},
	}

	cmd.Flags().Int64Var(&so.uid, "uid", 0, "external account id to synchronise")
	cmd.Flags().BoolVar(&so.all, "all", false, "synchronise every known user")
	cmd.MarkFlagsMutuallyExclusive("uid", "all")
	cmd.MarkFlagsOneRequired("uid", "all")

	return cmd
}

func runSync(opts *RootOptions, so *syncOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()

	e, a, err := openApp(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if so.all {
		resync := workers.NewResyncWorker(a.Services.UserService, a.Services.SyncService, 0, e.log)
		synced, failed := resync.ResyncAll(ctx)

		result := syncAllResult{Synced: synced, Failed: failed}
		if err := e.output.Print(result, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "synced %d users, %d failed\n", synced, failed)
			return err
		}); err != nil {
			return err
		}
		if failed > 0 {
			return NewExitError(ExitFailure, fmt.Sprintf("%d users failed to synchronise", failed))
		}
		return nil
	}

	user, err := a.Services.UserService.FindOrCreateByExternalID(ctx, so.uid)
	if err != nil {
		return WrapExitError(ExitCommandError, "resolving user", err)
	}

	report, syncErr := a.Services.SyncService.Synchronize(ctx, user)
	if syncErr != nil && !errors.Is(syncErr, service.ErrSyncIterationLimit) {
		return WrapExitError(ExitFailure, "synchronising favorites", syncErr)
	}

	return e.output.Print(report, func(w io.Writer) error {
		return printReport(w, report)
	})
}

func printReport(w io.Writer, r models.SyncReport) error {
	_, err := fmt.Fprintf(w,
		"user %d: %d new, %d total, %d iterations, %d requests, complete=%t, took %s\n",
		r.UserID, r.Inserted, r.Total, r.Iterations, r.Requests, r.Complete, r.Duration)
	return err
}

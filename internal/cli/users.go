package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newUsersCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List local accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, a, err := openApp(ctx, opts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			users, err := a.Services.UserService.ListUsers(ctx)
			if err != nil {
				return WrapExitError(ExitFailure, "listing users", err)
			}

			return e.output.Print(users, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tUID\tCREATED")
				for _, u := range users {
					fmt.Fprintf(tw, "%d\t%d\t%s\n", u.UserID, u.UID, u.CreatedAt.Format(time.RFC3339))
				}
				return tw.Flush()
			})
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

type sessionResult struct {
	Cookie    string    `json:"cookie"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// newSessionCommand issues a session token for an account id, so that the
// API can be exercised locally without the identity provider.
func newSessionCommand(opts *RootOptions) *cobra.Command {
	var uid int64

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Issue a development session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, a, err := openApp(ctx, opts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if e.cfg.App.SessionSignKey == "" {
				return NewExitError(ExitCommandError, "APP_SESSION_SIGN_KEY is not set")
			}

			session, err := a.Services.AuthService.CreateSession(ctx, uid)
			if err != nil {
				return WrapExitError(ExitFailure, "creating session", err)
			}

			result := sessionResult{Cookie: e.cfg.App.SessionCookie, Token: session.SignedString}
			if session.ExpiresAt != nil {
				result.ExpiresAt = session.ExpiresAt.Time
			}

			return e.output.Print(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s=%s\n", result.Cookie, result.Token)
				return err
			})
		},
	}

	cmd.Flags().Int64Var(&uid, "uid", 0, "external account id carried by the session")
	cmd.MarkFlagRequired("uid")

	return cmd
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type versionResult struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			build := opts.AppOptions.BuildInfo
			output := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

			result := versionResult{
				Version: build.BuildVersion(),
				Date:    build.BuildDate(),
				Commit:  build.BuildCommit(),
			}
			return output.Print(result, func(w io.Writer) error {
				_, err := fmt.Fprint(w, build)
				return err
			})
		},
	}
}

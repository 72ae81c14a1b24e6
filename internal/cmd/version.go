package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/iocontext"
	"github.com/reinfolib/reinfolib-cli/internal/update"
)

// Set via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			var result *update.CheckResult
			if check {
				result = update.CheckForUpdate(cmdContext(cmd), version)
			}

			if isJSON(cmd) {
				payload := map[string]any{
					"version": version,
					"commit":  commit,
					"date":    date,
				}
				if result != nil {
					payload["latest_version"] = result.LatestVersion
					payload["update_available"] = result.UpdateAvailable
					payload["update_url"] = result.UpdateURL
				}
				return printJSON(cmd, payload)
			}

			ioStreams := iocontext.GetIO(cmd.Context())
			_, _ = fmt.Fprintf(ioStreams.Out, "reinfo %s (%s, %s)\n", version, commit, date)
			if result != nil {
				if result.UpdateAvailable {
					_, _ = fmt.Fprintf(ioStreams.Out, "Update available: %s -> %s\n  %s\n",
						result.CurrentVersion, result.LatestVersion, result.UpdateURL)
				} else {
					_, _ = fmt.Fprintln(ioStreams.Out, "Up to date.")
				}
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check for a newer release")

	return cmd
}

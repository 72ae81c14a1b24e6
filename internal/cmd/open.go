package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/dryrun"
)

const portalURL = "https://www.reinfolib.mlit.go.jp"

// openBrowser launches the platform browser; swapped in tests.
var openBrowser = func(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}

func newOpenCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "open",
		Short:   "Open the library portal in a browser",
		Example: `  reinfo open`,
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if done, err := maybeDryRun(cmd, &dryrun.Preview{
				Operation:   "OPEN",
				Resource:    "portal",
				Description: "Open the library portal in a browser",
				Details:     map[string]any{"url": portalURL},
			}); done {
				return err
			}

			if printOnly || isJSON(cmd) {
				if isJSON(cmd) {
					return printJSON(cmd, map[string]any{"url": portalURL})
				}
				printIfNotQuiet(cmd, "%s\n", portalURL)
				return nil
			}

			if err := openBrowser(portalURL); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}
			printAction(cmd, "Opened", portalURL, "")
			return nil
		}),
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the URL instead of opening a browser")

	return cmd
}

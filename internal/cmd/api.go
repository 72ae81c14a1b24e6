package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/dryrun"
	"github.com/reinfolib/reinfolib-cli/internal/iocontext"
)

func newAPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api <path> [key=value ...]",
		Short: "Raw authenticated GET against any API path",
		Long: `Raw authenticated GET against any API path.

The escape hatch for endpoints without a typed binding yet. The path is
requested as-is with the subscription key header; key=value arguments
become query parameters. The response body passes through untouched
except for --jq/--fields/--template filtering when it is JSON.`,
		Example: `  reinfo api /ex-api/external/XIT001 year=2023 area=13
  reinfo api /ex-api/external/XIT002 area=13 --jq '.data[].id'`,
		Args: cobra.MinimumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			path := args[0]
			query := url.Values{}
			for _, arg := range args[1:] {
				key, value, ok := strings.Cut(arg, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid argument %q: expected key=value", arg)
				}
				query.Add(key, value)
			}

			if done, err := maybeDryRun(cmd, &dryrun.Preview{
				Operation:   "GET",
				Resource:    path,
				Description: "Raw API request",
				Details:     map[string]any{"query": query.Encode()},
			}); done {
				return err
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			body, err := client.Raw(cmdContext(cmd), path, query)
			if err != nil {
				return err
			}

			var decoded any
			if err := json.Unmarshal(body, &decoded); err == nil {
				return printRawJSON(cmd, decoded)
			}
			ioStreams := iocontext.GetIO(cmd.Context())
			_, err = ioStreams.Out.Write(body)
			return err
		}),
	}
	return cmd
}

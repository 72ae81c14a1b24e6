package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/dryrun"
	"github.com/reinfolib/reinfolib-cli/internal/iocontext"
)

func newTileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Raw binary vector tiles",
	}

	cmd.AddCommand(newTilePBFCmd())

	return cmd
}

func newTilePBFCmd() *cobra.Command {
	var (
		tf     tileFlags
		params []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "pbf <endpoint>",
		Short: "Fetch one binary vector tile from a tile endpoint",
		Long: `Fetch one binary vector tile (Mapbox pbf) from a tile endpoint.

The endpoint is a catalog name such as use-districts; see 'reinfo schema
list'. Endpoint-specific parameters (from/to, year, area filters) pass
through --param. Output goes to stdout unless --out names a file.`,
		Example: `  reinfo tile pbf use-districts --tile 11/1819/806 --out tile.pbf
  reinfo tile pbf transaction-points --tile 13/7312/3008 --param from=20151 --param to=20154 --out -`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, info := range api.Endpoints() {
				if info.Tile {
					names = append(names, info.Name+"\t"+info.Summary)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			endpoint := args[0]

			tiles, err := tf.resolve(cmd)
			if err != nil {
				return err
			}
			if len(tiles) != 1 {
				return fmt.Errorf("pbf fetches exactly one tile; ranges are not supported")
			}

			extra := make(map[string]string, len(params))
			for _, p := range params {
				key, value, ok := strings.Cut(p, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid --param %q: expected key=value", p)
				}
				extra[key] = value
			}

			if done, err := maybeDryRun(cmd, &dryrun.Preview{
				Operation:   "GET",
				Resource:    endpoint,
				Description: "Fetch one binary vector tile",
				Details: map[string]any{
					"tile":   tileString(tiles[0]),
					"params": extra,
					"out":    output,
				},
			}); done {
				return err
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			data, err := client.Tiles().PBF(cmdContext(cmd), endpoint, api.TileOptions{
				Tile:  tiles[0],
				Extra: extra,
			})
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				ioStreams := iocontext.GetIO(cmd.Context())
				_, err := ioStreams.Out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			printAction(cmd, "Wrote", output, fmt.Sprintf("%d bytes", len(data)))
			return nil
		}),
	}

	addTileFlags(cmd, &tf)
	cmd.Flags().StringArrayVar(&params, "param", nil, "Endpoint parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&output, "out", "-", "Output file, or - for stdout")
	flagAlias(cmd.Flags(), "param", "pm")

	return cmd
}

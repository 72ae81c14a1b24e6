package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/schema"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Endpoint catalog and record schemas",
	}

	cmd.AddCommand(newSchemaListCmd())
	cmd.AddCommand(newSchemaShowCmd())
	cmd.AddCommand(newSchemaResourcesCmd())

	return cmd
}

func newSchemaListCmd() *cobra.Command {
	var tileOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every upstream endpoint",
		Example: `  reinfo schema list
  reinfo schema list --tile-only --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			infos := api.Endpoints()
			if tileOnly {
				var kept []api.EndpointInfo
				for _, info := range infos {
					if info.Tile {
						kept = append(kept, info)
					}
				}
				infos = kept
			}

			if isJSON(cmd) {
				return printRawJSON(cmd, map[string]any{"items": infos, "count": len(infos)})
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "NAME\tID\tTILE\tSUMMARY")
			for _, info := range infos {
				tile := ""
				if info.Tile {
					tile = "yes"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.ID, tile, info.Summary)
			}
			return w.Flush()
		}),
	}

	cmd.Flags().BoolVar(&tileOnly, "tile-only", false, "Keep only the GeoJSON tile endpoints")

	return cmd
}

func endpointNameCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, info := range api.Endpoints() {
		names = append(names, info.Name+"\t"+info.Summary)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newSchemaShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show <endpoint>",
		Short:             "Show one endpoint's path and parameters",
		Example:           `  reinfo schema show transaction-prices`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: endpointNameCompletion,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			info, ok := api.Endpoint(args[0])
			if !ok {
				names := make([]string, 0, len(api.Endpoints()))
				for _, e := range api.Endpoints() {
					names = append(names, e.Name)
				}
				return fmt.Errorf("unknown endpoint %q; known endpoints: %s", args[0], strings.Join(names, ", "))
			}

			if isJSON(cmd) {
				return printRawJSON(cmd, info)
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintf(w, "Name\t%s\n", info.Name)
			_, _ = fmt.Fprintf(w, "ID\t%s\n", info.ID)
			_, _ = fmt.Fprintf(w, "Path\t%s\n", info.Path)
			_, _ = fmt.Fprintf(w, "Summary\t%s\n", info.Summary)
			_, _ = fmt.Fprintf(w, "Tile\t%t\n", info.Tile)
			if err := w.Flush(); err != nil {
				return err
			}

			if len(info.Params) > 0 {
				w = newTabWriterFromCmd(cmd)
				_, _ = fmt.Fprintln(w, "\nPARAM\tREQUIRED\tDESCRIPTION")
				for _, p := range info.Params {
					req := ""
					if p.Required {
						req = "yes"
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Key, req, p.Description)
				}
				return w.Flush()
			}
			return nil
		}),
	}
	return cmd
}

func newSchemaResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources [name]",
		Short: "Show decoded record shapes",
		Long:  "Show the JSON shape of decoded records, for building --jq and --fields expressions without live data",
		Example: `  reinfo schema resources
  reinfo schema resources transaction-price --json`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return schema.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := schema.List()
				if isJSON(cmd) {
					return printRawJSON(cmd, map[string]any{"items": names, "count": len(names)})
				}
				for _, name := range names {
					printIfNotQuiet(cmd, "%s\n", name)
				}
				return nil
			}

			s, err := schema.Get(args[0])
			if err != nil {
				return fmt.Errorf("%w; known resources: %s", err, strings.Join(schema.List(), ", "))
			}
			return printRawJSON(cmd, s)
		}),
	}
	return cmd
}

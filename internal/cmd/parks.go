package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

func newParksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parks",
		Aliases: []string{"park"},
		Short:   "Natural park areas (自然公園地域)",
	}

	cmd.AddCommand(newParksListCmd())

	return cmd
}

func newParksListCmd() *cobra.Command {
	var (
		tf       tileFlags
		pref     string
		district string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List natural park polygons by tile (zoom 9-15)",
		Example: `  reinfo parks list --tile 10/905/404
  reinfo parks list --tile 10/905/404 --pref hokkaido --district 10`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			opts := api.NaturalParksOptions{DistrictCode: district}
			if pref != "" {
				code, err := resolve.PrefectureCode(pref)
				if err != nil {
					return err
				}
				opts.PrefectureCode = code
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "natural-parks", renderNaturalParks,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.NaturalPark], error) {
					return client.Parks().NaturalParks(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	cmd.Flags().StringVar(&pref, "pref", "", "Prefecture code or name to keep")
	cmd.Flags().StringVar(&district, "district", "", "Hokkaido subprefecture district codes, comma-separated")
	registerPrefectureCompletions(cmd, "pref")
	return cmd
}

func renderNaturalParks(cmd *cobra.Command, features []api.Feature[api.NaturalPark]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tCITY\tPREF\tFISCAL YEAR")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			p.Name, p.CityName, p.PrefectureCode, p.FiscalYear.Int())
	}
	return w.Flush()
}

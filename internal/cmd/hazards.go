package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

func newHazardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hazards",
		Aliases: []string{"hazard", "hz"},
		Short:   "Disaster risk, filled land, and slope hazard layers",
	}

	cmd.AddCommand(newHazardsDisasterCmd())
	cmd.AddCommand(newHazardsEmbankmentCmd())
	cmd.AddCommand(newHazardsLandslideCmd())
	cmd.AddCommand(newHazardsSteepSlopeCmd())

	return cmd
}

func newHazardsDisasterCmd() *cobra.Command {
	var (
		tf       tileFlags
		areaCode string
	)
	cmd := &cobra.Command{
		Use:     "disaster",
		Aliases: []string{"disaster-risk"},
		Short:   "Disaster risk areas (災害危険区域)",
		Example: `  reinfo hazards disaster --tile 11/1819/806
  reinfo hazards disaster --z 11 --x 1816:1819 --y 806 --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			opts := api.HazardAreaOptions{AdministrativeAreaCode: areaCode}
			return runFeatureFetch(cmd, &tf, "disaster-risk-areas", renderDisasterRiskAreas,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.DisasterRiskArea], error) {
					return client.Hazards().DisasterRiskAreas(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	addAreaCodeFlag(cmd, &areaCode)
	return cmd
}

func renderDisasterRiskAreas(cmd *cobra.Command, features []api.Feature[api.DisasterRiskArea]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "CITY\tNAME\tREASON\tNOTICE")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.CityName, p.Name, p.Reason, p.NoticeDate)
	}
	return w.Flush()
}

func newHazardsEmbankmentCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "embankment",
		Aliases: []string{"filled-land"},
		Short:   "Large-scale filled land areas (大規模盛土造成地)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "embankment-areas", renderEmbankmentAreas,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.EmbankmentArea], error) {
					return client.Hazards().EmbankmentAreas(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderEmbankmentAreas(cmd *cobra.Command, features []api.Feature[api.EmbankmentArea]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "PREFECTURE\tCITY\tCLASS\tNUMBER")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.PrefectureName, p.CityName, p.Classification, p.EmbankmentNumber)
	}
	return w.Flush()
}

// slopeAreaOptions resolves the shared --pref/--area-code narrowing of the
// landslide and steep slope layers.
func slopeAreaOptions(pref, areaCode string) (api.SlopeAreaOptions, error) {
	opts := api.SlopeAreaOptions{AdministrativeAreaCode: areaCode}
	if pref != "" {
		code, err := resolve.PrefectureCode(pref)
		if err != nil {
			return opts, err
		}
		opts.PrefectureCode = code
	}
	return opts, nil
}

func newHazardsLandslideCmd() *cobra.Command {
	var (
		tf       tileFlags
		pref     string
		areaCode string
	)
	cmd := &cobra.Command{
		Use:     "landslide",
		Aliases: []string{"ls-prevention"},
		Short:   "Landslide prevention districts (地すべり防止地区)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			opts, err := slopeAreaOptions(pref, areaCode)
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "landslide-areas", renderLandslideAreas,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.LandslideArea], error) {
					return client.Hazards().LandslideAreas(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	addAreaCodeFlag(cmd, &areaCode)
	cmd.Flags().StringVar(&pref, "pref", "", "Prefecture code or name to keep")
	registerPrefectureCompletions(cmd, "pref")
	return cmd
}

func renderLandslideAreas(cmd *cobra.Command, features []api.Feature[api.LandslideArea]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "PREFECTURE\tCITY\tREGION\tNOTICE")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.PrefectureName, p.CityName, p.RegionName, p.NoticeDate)
	}
	return w.Flush()
}

func newHazardsSteepSlopeCmd() *cobra.Command {
	var (
		tf       tileFlags
		pref     string
		areaCode string
	)
	cmd := &cobra.Command{
		Use:     "steep-slope",
		Aliases: []string{"ss"},
		Short:   "Steep slope failure danger districts (急傾斜地崩壊危険区域)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			opts, err := slopeAreaOptions(pref, areaCode)
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "steep-slope-areas", renderSteepSlopeAreas,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.SteepSlopeArea], error) {
					return client.Hazards().SteepSlopeAreas(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	addAreaCodeFlag(cmd, &areaCode)
	cmd.Flags().StringVar(&pref, "pref", "", "Prefecture code or name to keep")
	registerPrefectureCompletions(cmd, "pref")
	return cmd
}

func renderSteepSlopeAreas(cmd *cobra.Command, features []api.Feature[api.SteepSlopeArea]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "PREFECTURE\tCITY\tREGION\tNOTICE")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.PrefectureName, p.CityName, p.RegionName, p.PublicNoticeDate)
	}
	return w.Flush()
}

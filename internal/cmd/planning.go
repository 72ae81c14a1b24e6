package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

func newPlanningCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "planning",
		Aliases: []string{"plan"},
		Short:   "City planning layers",
		Long:    "Zone divisions, use districts, location optimization plans, fire prevention districts, district plans, and high utilization districts",
	}

	cmd.AddCommand(newPlanningZonesCmd())
	cmd.AddCommand(newPlanningUseDistrictsCmd())
	cmd.AddCommand(newPlanningLocationCmd())
	cmd.AddCommand(newPlanningFireCmd())
	cmd.AddCommand(newPlanningDistrictPlansCmd())
	cmd.AddCommand(newPlanningHighUtilizationCmd())

	return cmd
}

func newPlanningZonesCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "zones",
		Aliases: []string{"zone-divisions"},
		Short:   "Urbanization promotion and control areas (区域区分)",
		Example: `  reinfo planning zones --tile 11/1819/806
  reinfo planning zones --lat 35.68 --lon 139.77 --z 11`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "zone-divisions", renderZoneDivisions,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.ZoneDivision], error) {
					return client.Planning().ZoneDivisions(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderZoneDivisions(cmd *cobra.Command, features []api.Feature[api.ZoneDivision]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "CITY\tAREA\tDECIDED\tBY")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.CityName, p.AreaClassification, p.DecisionDate, p.DecisionMaker)
	}
	return w.Flush()
}

func newPlanningUseDistrictsCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "use-districts",
		Aliases: []string{"use", "ud"},
		Short:   "Use districts with building ratios (用途地域)",
		Example: `  reinfo planning use-districts --tile 11/1819/806
  reinfo planning use-districts --z 11 --x 1818:1819 --y 806 --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "use-districts", renderUseDistricts,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.UseDistrict], error) {
					return client.Planning().UseDistricts(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderUseDistricts(cmd *cobra.Command, features []api.Feature[api.UseDistrict]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "CITY\tUSE\tFLOOR RATIO\tCOVERAGE\tDECIDED")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.CityName, p.UseArea, p.FloorAreaRatio, p.BuildingCoverageRatio, p.DecisionDate)
	}
	return w.Flush()
}

func newPlanningLocationCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "location-optimization",
		Aliases: []string{"location", "lo"},
		Short:   "Residence and urban function inducement areas (立地適正化計画)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "location-optimization", renderLocationOptimization,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.LocationOptimizationArea], error) {
					return client.Planning().LocationOptimization(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderLocationOptimization(cmd *cobra.Command, features []api.Feature[api.LocationOptimizationArea]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "CITY\tKUBUN\tAREA\tDECIDED")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.CityName, p.KubunName, p.AreaClassification, p.DecisionDate)
	}
	return w.Flush()
}

func newPlanningFireCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "fire-prevention",
		Aliases: []string{"fire"},
		Short:   "Fire and quasi-fire prevention districts (防火・準防火地域)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "fire-prevention", renderFirePrevention,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.FirePreventionArea], error) {
					return client.Planning().FirePreventionAreas(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderFirePrevention(cmd *cobra.Command, features []api.Feature[api.FirePreventionArea]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "CITY\tCLASS\tDECIDED\tBY")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.CityName, p.FirePrevention, p.DecisionDate, p.DecisionMaker)
	}
	return w.Flush()
}

func newPlanningDistrictPlansCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "district-plans",
		Aliases: []string{"dp"},
		Short:   "District planning areas (地区計画)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "district-plans", renderDistrictPlans,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.DistrictPlan], error) {
					return client.Planning().DistrictPlans(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderDistrictPlans(cmd *cobra.Command, features []api.Feature[api.DistrictPlan]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "CITY\tPLAN\tTYPE\tDECIDED")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.CityName, p.PlanName, p.PlanType, p.DecisionDate)
	}
	return w.Flush()
}

func newPlanningHighUtilizationCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "high-utilization",
		Aliases: []string{"hu"},
		Short:   "High-level land utilization districts (高度利用地区)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "high-utilization-districts", renderHighUtilization,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.HighUtilizationDistrict], error) {
					return client.Planning().HighUtilizationDistricts(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderHighUtilization(cmd *cobra.Command, features []api.Feature[api.HighUtilizationDistrict]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "CITY\tNAME\tTYPE\tDECIDED")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.CityName, p.AdvancedName, p.AdvancedType, p.DecisionDate)
	}
	return w.Flush()
}

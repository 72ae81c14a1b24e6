package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

func newMeshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Population projections and station ridership",
	}

	cmd.AddCommand(newMeshPopulationCmd())
	cmd.AddCommand(newMeshPassengersCmd())

	return cmd
}

func newMeshPopulationCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "population",
		Aliases: []string{"pop"},
		Short:   "Future population projections on the 500m mesh",
		Example: `  reinfo mesh population --tile 11/1819/806
  reinfo mesh population --lat 35.68 --lon 139.77 --z 11 --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "future-population", renderPopulationMeshes,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.PopulationMesh], error) {
					return client.Demographics().FuturePopulation(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderPopulationMeshes(cmd *cobra.Command, features []api.Feature[api.PopulationMesh]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "MESH\tCITY CODE\tPROJECTIONS")
	for _, f := range features {
		p := f.Properties
		proj := ""
		for i, year := range p.Years() {
			v, ok := p.Value("PTN_" + year)
			if !ok {
				continue
			}
			if i > 0 {
				proj += " "
			}
			proj += fmt.Sprintf("%s:%.0f", year, v)
		}
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\n", p.MeshID.Int(), p.CityCode.Int(), proj)
	}
	return w.Flush()
}

func newMeshPassengersCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "passengers",
		Aliases: []string{"ridership"},
		Short:   "Station boarding counts from the S12 survey",
		Example: `  reinfo mesh passengers --tile 11/1819/806`,
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "station-passengers", renderStationPassengers,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.StationPassengers], error) {
					return client.Demographics().StationPassengers(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderStationPassengers(cmd *cobra.Command, features []api.Feature[api.StationPassengers]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "STATION\tOPERATOR\tLINE\tLATEST RIDERSHIP")
	for _, f := range features {
		p := f.Properties
		latest := "-"
		if year, count, ok := p.LatestRidership(); ok {
			latest = fmt.Sprintf("%d (%d)", count, year)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Operator, p.Line, latest)
	}
	return w.Flush()
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

func newFacilitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "facilities",
		Aliases: []string{"fac"},
		Short:   "Medical, welfare, library, and town hall locations",
		Long:    "Public facility point layers, all addressed by tile at zoom 13-15",
	}

	cmd.AddCommand(newFacilitiesMedicalCmd())
	cmd.AddCommand(newFacilitiesWelfareCmd())
	cmd.AddCommand(newFacilitiesLibrariesCmd())
	cmd.AddCommand(newFacilitiesTownHallsCmd())

	return cmd
}

func newFacilitiesMedicalCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "medical",
		Aliases: []string{"med"},
		Short:   "Hospitals and clinics",
		Example: `  reinfo facilities medical --tile 13/7272/3225
  reinfo facilities medical --lat 35.68 --lon 139.77 --z 13 --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "medical-facilities", renderMedicalFacilities,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.MedicalFacility], error) {
					return client.Facilities().Medical(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderMedicalFacilities(cmd *cobra.Command, features []api.Feature[api.MedicalFacility]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tCLASS\tDEPARTMENTS\tADDRESS")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.ClassName, p.Departments, p.Address)
	}
	return w.Flush()
}

func newFacilitiesWelfareCmd() *cobra.Command {
	var (
		tf          tileFlags
		areaCode    string
		classCode   string
		middleClass string
		minorClass  string
	)
	cmd := &cobra.Command{
		Use:     "welfare",
		Aliases: []string{"wel"},
		Short:   "Welfare facilities",
		Example: `  reinfo facilities welfare --tile 13/7272/3225
  reinfo facilities welfare --tile 13/7272/3225 --class-code 05`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			opts := api.WelfareOptions{
				AdministrativeAreaCode: areaCode,
				ClassCode:              classCode,
				MiddleClassCode:        middleClass,
				MinorClassCode:         minorClass,
			}
			return runFeatureFetch(cmd, &tf, "welfare-facilities", renderWelfareFacilities,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.WelfareFacility], error) {
					return client.Facilities().Welfare(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	addAreaCodeFlag(cmd, &areaCode)
	cmd.Flags().StringVar(&classCode, "class-code", "", "Comma-separated 2-digit major class codes")
	cmd.Flags().StringVar(&middleClass, "middle-class-code", "", "Comma-separated 4-digit middle class codes")
	cmd.Flags().StringVar(&minorClass, "minor-class-code", "", "Comma-separated 6-digit minor class codes")
	return cmd
}

func renderWelfareFacilities(cmd *cobra.Command, features []api.Feature[api.WelfareFacility]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tCLASS\tMIDDLE CLASS\tADDRESS")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.ClassName, p.MiddleClassName, p.Address)
	}
	return w.Flush()
}

func newFacilitiesLibrariesCmd() *cobra.Command {
	var (
		tf       tileFlags
		areaCode string
	)
	cmd := &cobra.Command{
		Use:     "libraries",
		Aliases: []string{"lib"},
		Short:   "Libraries",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			opts := api.FacilityAreaOptions{AdministrativeAreaCode: areaCode}
			return runFeatureFetch(cmd, &tf, "libraries", renderLibraries,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.Library], error) {
					return client.Facilities().Libraries(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	addAreaCodeFlag(cmd, &areaCode)
	return cmd
}

func renderLibraries(cmd *cobra.Command, features []api.Feature[api.Library]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tCLASS\tADDRESS\tBUILT")
	for _, f := range features {
		p := f.Properties
		built := ""
		if y := p.BuiltYear.Int(); y > 0 {
			built = fmt.Sprintf("%d", y)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.MinorClassName, p.Address, built)
	}
	return w.Flush()
}

func newFacilitiesTownHallsCmd() *cobra.Command {
	var (
		tf       tileFlags
		areaCode string
	)
	cmd := &cobra.Command{
		Use:     "town-halls",
		Aliases: []string{"th"},
		Short:   "Municipal offices and branches",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			opts := api.FacilityAreaOptions{AdministrativeAreaCode: areaCode}
			return runFeatureFetch(cmd, &tf, "town-halls", renderTownHalls,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.TownHall], error) {
					return client.Facilities().TownHalls(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	addAreaCodeFlag(cmd, &areaCode)
	return cmd
}

func renderTownHalls(cmd *cobra.Command, features []api.Feature[api.TownHall]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tCLASS\tADDRESS\tAREA CODE")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.ClassName, p.Address, p.AdministrativeAreaCode)
	}
	return w.Flush()
}

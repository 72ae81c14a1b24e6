package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

func newSchoolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schools",
		Aliases: []string{"school"},
		Short:   "School districts, schools, and preschools",
	}

	cmd.AddCommand(newSchoolsElementaryCmd())
	cmd.AddCommand(newSchoolsJuniorHighCmd())
	cmd.AddCommand(newSchoolsListCmd())
	cmd.AddCommand(newSchoolsPreschoolsCmd())

	return cmd
}

func addAreaCodeFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "area-code", "", "Comma-separated 5-digit municipality codes to keep")
	flagAlias(cmd.Flags(), "area-code", "ac")
}

func newSchoolsElementaryCmd() *cobra.Command {
	var (
		tf       tileFlags
		areaCode string
	)
	cmd := &cobra.Command{
		Use:     "elementary",
		Aliases: []string{"elem"},
		Short:   "Elementary school districts (小学校区)",
		Example: `  reinfo schools elementary --tile 11/1819/806
  reinfo schools elementary --z 11 --x 1819 --y 806 --area-code 13101`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			opts := api.SchoolDistrictsOptions{AdministrativeAreaCode: areaCode}
			return runFeatureFetch(cmd, &tf, "elementary-school-districts", renderElementaryDistricts,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.ElementarySchoolDistrict], error) {
					return client.Schools().ElementaryDistricts(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	addAreaCodeFlag(cmd, &areaCode)
	return cmd
}

func renderElementaryDistricts(cmd *cobra.Command, features []api.Feature[api.ElementarySchoolDistrict]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tOPERATOR\tADDRESS\tAREA CODE")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.Name, p.Operator, p.Address, p.AdministrativeAreaCode)
	}
	return w.Flush()
}

func newSchoolsJuniorHighCmd() *cobra.Command {
	var (
		tf       tileFlags
		areaCode string
	)
	cmd := &cobra.Command{
		Use:     "junior-high",
		Aliases: []string{"jh"},
		Short:   "Junior high school districts (中学校区)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			opts := api.SchoolDistrictsOptions{AdministrativeAreaCode: areaCode}
			return runFeatureFetch(cmd, &tf, "junior-high-school-districts", renderJuniorHighDistricts,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.JuniorHighSchoolDistrict], error) {
					return client.Schools().JuniorHighDistricts(ctx, t, opts)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	addAreaCodeFlag(cmd, &areaCode)
	return cmd
}

func renderJuniorHighDistricts(cmd *cobra.Command, features []api.Feature[api.JuniorHighSchoolDistrict]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tOPERATOR\tADDRESS\tAREA CODE")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.Name, p.Operator, p.Address, p.AdministrativeAreaCode)
	}
	return w.Flush()
}

func newSchoolsListCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "School locations (zoom 13-15)",
		Example: `  reinfo schools list --tile 13/7272/3225`,
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "schools", renderSchools,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.School], error) {
					return client.Schools().List(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderSchools(cmd *cobra.Command, features []api.Feature[api.School]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tCLASS\tADDRESS")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.ClassName, p.Address)
	}
	return w.Flush()
}

func newSchoolsPreschoolsCmd() *cobra.Command {
	var tf tileFlags
	cmd := &cobra.Command{
		Use:     "preschools",
		Aliases: []string{"pre"},
		Short:   "Kindergarten, certified child center, and nursery locations (zoom 13-15)",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "preschools", renderPreschools,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.Preschool], error) {
					return client.Schools().Preschools(ctx, t)
				})
		}),
	}
	addTileFlags(cmd, &tf)
	return cmd
}

func renderPreschools(cmd *cobra.Command, features []api.Feature[api.Preschool]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "NAME\tCLASS\tADDRESS")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.ClassName, p.Address)
	}
	return w.Flush()
}

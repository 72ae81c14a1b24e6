package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/dryrun"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

func newCitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cities",
		Aliases: []string{"city", "municipalities"},
		Short:   "Municipalities within a prefecture",
	}

	cmd.AddCommand(newCitiesListCmd())

	return cmd
}

func newCitiesListCmd() *cobra.Command {
	var (
		pref string
		lang string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List municipalities of a prefecture",
		Example: `  reinfo cities list --pref 13
  reinfo cities list --pref osaka --lang en
  reinfo cities list --pref 北海道 --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			area, err := resolve.PrefectureCode(pref)
			if err != nil {
				return err
			}

			if done, err := maybeDryRun(cmd, &dryrun.Preview{
				Operation:   "GET",
				Resource:    "municipalities",
				Description: "List municipalities of a prefecture",
				Details:     map[string]any{"area": area, "language": lang},
			}); done {
				return err
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			cities, err := client.Municipalities().List(cmdContext(cmd), api.MunicipalitiesOptions{
				Area:     area,
				Language: lang,
			})
			if err != nil {
				return err
			}

			if isJSON(cmd) {
				if isAgent(cmd) {
					return printJSON(cmd, cities)
				}
				return printJSON(cmd, map[string]any{"items": cities, "count": len(cities)})
			}

			if len(cities) == 0 {
				printIfNotQuiet(cmd, "No municipalities found.\n")
				return nil
			}
			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "CODE\tNAME")
			for _, c := range cities {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", c.Code, c.Name)
			}
			return w.Flush()
		}),
	}

	cmd.Flags().StringVar(&pref, "pref", "", "Prefecture code or name (required)")
	cmd.Flags().StringVar(&lang, "lang", "", "Output language: ja|en")
	_ = cmd.MarkFlagRequired("pref")
	flagAlias(cmd.Flags(), "pref", "prefecture")
	registerStaticCompletions(cmd, "lang", []string{"ja", "en"})
	registerPrefectureCompletions(cmd, "pref")

	return cmd
}

// resolveCityCode turns a municipality flag value into a 5-digit code.
// Codes pass through; names are matched against the live municipality
// list of the prefecture, which therefore must be known.
func resolveCityCode(ctx context.Context, client *api.Client, prefCode, query string) (string, error) {
	query = strings.TrimSpace(query)
	if len(query) == 5 && isAllDigits(query) {
		return query, nil
	}
	if prefCode == "" {
		return "", fmt.Errorf("municipality name %q needs --pref to resolve; pass the 5-digit code to skip the lookup", query)
	}

	cities, err := client.Municipalities().List(ctx, api.MunicipalitiesOptions{Area: prefCode})
	if err != nil {
		return "", fmt.Errorf("resolving municipality %q: %w", query, err)
	}
	named := make([]resolve.Named, len(cities))
	for i, c := range cities {
		named[i] = resolve.Named{Code: c.Code, Name: c.Name}
	}
	return resolve.FuzzyMatch(query, named)
}

func registerPrefectureCompletions(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			prefs := resolve.Prefectures()
			out := make([]string, len(prefs))
			for i, p := range prefs {
				out[i] = fmt.Sprintf("%s\t%s (%s)", p.Code, p.NameJa, p.NameEn)
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		})
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

// The completions command exposes the static code tables as plain listings,
// for scripts and agents that want the codes without shell completion
// machinery. Cobra's own `completion` command covers bash/zsh/fish scripts.
func newCompletionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completions",
		Short: "List codes for shell completion and scripting",
	}

	cmd.AddCommand(newCompletionsPrefecturesCmd())
	cmd.AddCommand(newCompletionsEndpointsCmd())
	cmd.AddCommand(newCompletionsDivisionsCmd())

	return cmd
}

func newCompletionsPrefecturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prefectures",
		Aliases: []string{"prefs"},
		Short:   "List the 47 JIS prefecture codes",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			prefs := resolve.Prefectures()

			if isJSON(cmd) {
				return printRawJSON(cmd, map[string]any{"items": prefs, "count": len(prefs)})
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "CODE\tNAME\tENGLISH")
			for _, p := range prefs {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Code, p.NameJa, p.NameEn)
			}
			return w.Flush()
		}),
	}
	return cmd
}

func newCompletionsEndpointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the endpoint catalog names",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			infos := api.Endpoints()

			if isJSON(cmd) {
				items := make([]map[string]any, 0, len(infos))
				for _, info := range infos {
					items = append(items, map[string]any{"name": info.Name, "id": info.ID})
				}
				return printRawJSON(cmd, map[string]any{"items": items, "count": len(items)})
			}

			for _, info := range infos {
				printIfNotQuiet(cmd, "%s\n", info.Name)
			}
			return nil
		}),
	}
	return cmd
}

func newCompletionsDivisionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "divisions",
		Short: "List the appraisal use division codes",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			type division struct {
				Name string `json:"name"`
				Code string `json:"code"`
			}
			divisions := []division{
				{"residential", appraisalDivisions["residential"]},
				{"prospective", appraisalDivisions["prospective"]},
				{"commercial", appraisalDivisions["commercial"]},
				{"forest", appraisalDivisions["forest"]},
			}

			if isJSON(cmd) {
				return printRawJSON(cmd, map[string]any{"items": divisions, "count": len(divisions)})
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "NAME\tCODE")
			for _, d := range divisions {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Code)
			}
			return w.Flush()
		}),
	}
	return cmd
}

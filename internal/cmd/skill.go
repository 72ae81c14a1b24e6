package cmd

import (
	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/dryrun"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
	"github.com/reinfolib/reinfolib-cli/internal/skill"
)

func newSkillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Agent workspace skill files",
	}

	cmd.AddCommand(newSkillGenerateCmd())

	return cmd
}

func newSkillGenerateCmd() *cobra.Command {
	var pref string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a workspace skill file with endpoint and area-code context",
		Long: `Write a workspace skill file with endpoint and area-code context.

The file summarizes the endpoint catalog, the prefecture code table, and
quick commands. With --pref, the municipality list of that prefecture is
fetched live and included.`,
		Example: `  reinfo skill generate
  reinfo skill generate --pref tokyo`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			var prefCode string
			if pref != "" {
				code, err := resolve.PrefectureCode(pref)
				if err != nil {
					return err
				}
				prefCode = code
			}

			path, err := skill.SkillPath()
			if err != nil {
				return err
			}

			if done, err := maybeDryRun(cmd, &dryrun.Preview{
				Operation:   "WRITE",
				Resource:    "workspace-skill",
				Description: "Generate the workspace skill file",
				Details:     map[string]any{"path": path, "pref": prefCode},
			}); done {
				return err
			}

			// The catalog and prefecture table are static, so generation
			// works without credentials; the client only enriches --pref.
			var client *api.Client
			if prefCode != "" {
				if client, err = getClient(); err != nil {
					return err
				}
			}

			if err := skill.GenerateWorkspaceSkill(cmdContext(cmd), client, prefCode); err != nil {
				return err
			}

			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{"status": "generated", "path": path})
			}
			printAction(cmd, "Generated", "workspace skill", path)
			return nil
		}),
	}

	cmd.Flags().StringVar(&pref, "pref", "", "Prefecture whose municipalities to include")
	registerPrefectureCompletions(cmd, "pref")

	return cmd
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/config"
	"github.com/reinfolib/reinfolib-cli/internal/validation"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored profiles and settings",
		Long: `Manage stored profiles and settings.

Settings live in the system keyring, one record per profile. Keys:

  base-url   API host override (empty means the production host)
  api-key    subscription key
  profile    the active profile name`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

const configKeys = "base-url, api-key, profile"

func newConfigGetCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Example: `  reinfo config get base-url
  reinfo config get api-key --profile staging`,
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			key, err := normalizeEnum("key", args[0], []string{"base-url", "api-key", "profile"})
			if err != nil {
				return err
			}

			if key == "profile" {
				current, err := config.CurrentProfile()
				if err != nil {
					return err
				}
				if isJSON(cmd) {
					return printJSON(cmd, map[string]any{"key": key, "value": current})
				}
				printIfNotQuiet(cmd, "%s\n", current)
				return nil
			}

			name := profile
			if name == "" {
				if name, err = config.CurrentProfile(); err != nil {
					return err
				}
			}
			account, err := config.LoadProfile(name)
			if err != nil {
				return err
			}

			var value string
			switch key {
			case "base-url":
				value = account.BaseURL
				if value == "" {
					value = "https://www.reinfolib.mlit.go.jp"
				}
			case "api-key":
				value = maskKey(account.APIKey)
			}

			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{"key": key, "profile": name, "value": value})
			}
			printIfNotQuiet(cmd, "%s\n", value)
			return nil
		}),
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile to read (default: the active one)")
	flagAlias(cmd.Flags(), "profile", "p")
	registerStaticCompletions(cmd, "profile", nil)

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Example: `  reinfo config set base-url https://staging.example.test
  reinfo config set profile staging`,
		Args: cobra.ExactArgs(2),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			key, err := normalizeEnum("key", args[0], []string{"base-url", "api-key", "profile"})
			if err != nil {
				return err
			}
			value := strings.TrimSpace(args[1])

			if key == "profile" {
				if _, err := config.LoadProfile(value); err != nil {
					return fmt.Errorf("profile %q: %w", value, err)
				}
				if err := config.SetCurrentProfile(value); err != nil {
					return err
				}
				printAction(cmd, "Switched to", "profile", value)
				return nil
			}

			name := profile
			if name == "" {
				if name, err = config.CurrentProfile(); err != nil {
					return err
				}
			}
			account, err := config.LoadProfile(name)
			if err != nil {
				return err
			}

			switch key {
			case "base-url":
				value = strings.TrimSuffix(value, "/")
				if value != "" {
					if err := validation.ValidateBaseURL(value); err != nil {
						return err
					}
				}
				account.BaseURL = value
			case "api-key":
				if value == "" {
					return fmt.Errorf("api-key cannot be empty; use 'reinfo auth logout' to remove the profile")
				}
				account.APIKey = value
			}

			if err := config.SaveProfile(name, account); err != nil {
				return err
			}
			printAction(cmd, "Updated", key, "profile "+name)
			return nil
		}),
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile to change (default: the active one)")
	flagAlias(cmd.Flags(), "profile", "p")

	return cmd
}

func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored profiles",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			profiles, err := config.ListProfiles()
			if err != nil {
				return err
			}
			current, err := config.CurrentProfile()
			if err != nil {
				current = ""
			}

			if isJSON(cmd) {
				items := make([]map[string]any, 0, len(profiles))
				for _, p := range profiles {
					items = append(items, map[string]any{"name": p, "current": p == current})
				}
				return printJSON(cmd, map[string]any{"items": items, "count": len(items)})
			}

			if len(profiles) == 0 {
				printIfNotQuiet(cmd, "No profiles stored. Run 'reinfo auth login' first.\n")
				return nil
			}
			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "NAME\tCURRENT")
			for _, p := range profiles {
				mark := ""
				if p == current {
					mark = "*"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\n", p, mark)
			}
			return w.Flush()
		}),
	}
	return cmd
}

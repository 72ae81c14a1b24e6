package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reinfolib/reinfolib-cli/internal/config"
	"github.com/reinfolib/reinfolib-cli/internal/iocontext"
	"github.com/reinfolib/reinfolib-cli/internal/validation"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with the Real Estate Information Library",
		Long:  "Store, inspect, and remove the subscription key used for API requests",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var (
		apiKey      string
		baseURL     string
		profile     string
		fromEnvFile string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a subscription key in the system keyring",
		Long: `Store a subscription key in the system keyring.

The key is read from --api-key, from --from-env-file (a dotenv file with
REINFOLIB_API_KEY), or interactively. Keys are issued at
https://www.reinfolib.mlit.go.jp after applying for API access.`,
		Example: `  reinfo auth login --api-key <key>
  reinfo auth login --from-env-file ./.env
  reinfo auth login --profile staging --base-url https://staging.example.test`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if fromEnvFile != "" {
				env, err := godotenv.Read(fromEnvFile)
				if err != nil {
					return fmt.Errorf("failed to read env file %s: %w", fromEnvFile, err)
				}
				if apiKey == "" {
					apiKey = strings.TrimSpace(env["REINFOLIB_API_KEY"])
				}
				if baseURL == "" {
					baseURL = strings.TrimSpace(env["REINFOLIB_BASE_URL"])
				}
				if apiKey == "" {
					return fmt.Errorf("env file %s does not set REINFOLIB_API_KEY", fromEnvFile)
				}
			}

			if apiKey == "" {
				key, err := promptForKey(cmd)
				if err != nil {
					return err
				}
				apiKey = key
			}
			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return fmt.Errorf("no subscription key provided")
			}

			baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
			if baseURL != "" {
				if err := validation.ValidateBaseURL(baseURL); err != nil {
					return err
				}
			}

			if err := config.SaveProfile(profile, config.Account{
				BaseURL: baseURL,
				APIKey:  apiKey,
			}); err != nil {
				return err
			}

			if isJSON(cmd) {
				name := profile
				if name == "" {
					name = "default"
				}
				return printJSON(cmd, map[string]any{
					"status":  "authenticated",
					"profile": name,
					"api_key": maskKey(apiKey),
				})
			}
			printAction(cmd, "Logged in", "reinfolib", maskKey(apiKey))
			return nil
		}),
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Subscription key (prompted when omitted)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API host override stored with the profile")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile name (default \"default\")")
	cmd.Flags().StringVar(&fromEnvFile, "from-env-file", "", "Import REINFOLIB_API_KEY from a dotenv file")
	flagAlias(cmd.Flags(), "api-key", "key")
	flagAlias(cmd.Flags(), "profile", "p")

	return cmd
}

// promptForKey reads the subscription key without echo when stdin is a
// terminal, or as a single line otherwise. --no-input forbids both.
func promptForKey(cmd *cobra.Command) (string, error) {
	if flags.NoInput {
		return "", fmt.Errorf("no subscription key provided and --no-input is set; pass --api-key or --from-env-file")
	}

	ioStreams := iocontext.GetIO(cmd.Context())
	if f, ok := ioStreams.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(ioStreams.ErrOut, "Subscription key: ")
		key, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(ioStreams.ErrOut)
		if err != nil {
			return "", fmt.Errorf("failed to read key: %w", err)
		}
		return string(key), nil
	}

	reader := bufio.NewReader(ioStreams.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read key from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func newAuthStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active credential and where it came from",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			source := "keyring"
			if strings.TrimSpace(os.Getenv("REINFOLIB_API_KEY")) != "" {
				source = "environment"
			}

			account, err := config.LoadAccount()
			if err != nil {
				return err
			}
			profile, perr := config.CurrentProfile()
			if perr != nil {
				profile = "default"
			}
			baseURL := account.BaseURL
			if baseURL == "" {
				baseURL = "https://www.reinfolib.mlit.go.jp"
			}

			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{
					"status":   "authenticated",
					"source":   source,
					"profile":  profile,
					"base_url": baseURL,
					"api_key":  maskKey(account.APIKey),
				})
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintf(w, "Status\tauthenticated\n")
			_, _ = fmt.Fprintf(w, "Source\t%s\n", source)
			_, _ = fmt.Fprintf(w, "Profile\t%s\n", profile)
			_, _ = fmt.Fprintf(w, "Base URL\t%s\n", baseURL)
			_, _ = fmt.Fprintf(w, "Key\t%s\n", maskKey(account.APIKey))
			return w.Flush()
		}),
	}
	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove a stored subscription key",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if err := config.DeleteProfile(profile); err != nil {
				return err
			}
			name := profile
			if name == "" {
				name = "default"
			}
			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{"status": "logged_out", "profile": name})
			}
			printAction(cmd, "Logged out", "profile", name)
			return nil
		}),
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile to remove (default \"default\")")
	flagAlias(cmd.Flags(), "profile", "p")

	return cmd
}

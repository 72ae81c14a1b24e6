package config

import (
	"os"
	"strings"
)

// ClientConfig contains resolved API client settings. BaseURL may be empty,
// in which case the client falls back to the production host.
type ClientConfig struct {
	BaseURL string
	APIKey  string
}

// ResolveClientConfig resolves client settings, applying flag overrides on
// top of the stored account. Precedence: flags, then environment, then the
// keyring profile.
func ResolveClientConfig(baseURLOverride, apiKeyOverride string) (ClientConfig, error) {
	var cfg ClientConfig

	account, err := LoadAccount()
	if err == nil {
		cfg.BaseURL = account.BaseURL
		cfg.APIKey = account.APIKey
	}

	if envURL := strings.TrimSpace(os.Getenv(envBaseURL)); envURL != "" {
		cfg.BaseURL = strings.TrimSuffix(envURL, "/")
	}

	if baseURLOverride != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURLOverride, "/")
	}
	if apiKeyOverride != "" {
		cfg.APIKey = apiKeyOverride
	}

	if cfg.APIKey == "" {
		if err != nil {
			return ClientConfig{}, err
		}
		return ClientConfig{}, ErrNotConfigured
	}

	return cfg, nil
}

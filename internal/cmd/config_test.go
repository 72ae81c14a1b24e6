package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/reinfolib/reinfolib-cli/internal/config"
)

func TestConfigGetCommand_BaseURL(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{
		BaseURL: "https://staging.example.test",
		APIKey:  "key-123456789012",
	}); err != nil {
		t.Fatal(err)
	}

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"config", "get", "base-url"})
		if err != nil {
			t.Errorf("config get failed: %v", err)
		}
	})

	if strings.TrimSpace(output) != "https://staging.example.test" {
		t.Errorf("base-url = %q", output)
	}
}

func TestConfigGetCommand_BaseURLDefault(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{APIKey: "key-123456789012"}); err != nil {
		t.Fatal(err)
	}

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"config", "get", "base-url"})
		if err != nil {
			t.Errorf("config get failed: %v", err)
		}
	})

	if strings.TrimSpace(output) != "https://www.reinfolib.mlit.go.jp" {
		t.Errorf("default base-url = %q", output)
	}
}

func TestConfigGetCommand_APIKeyMasked(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{APIKey: "supersecret12345"}); err != nil {
		t.Fatal(err)
	}

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"config", "get", "api-key"})
		if err != nil {
			t.Errorf("config get failed: %v", err)
		}
	})

	if strings.Contains(output, "supersecret12345") {
		t.Errorf("raw key leaked: %s", output)
	}
	if !strings.Contains(output, "supe********2345") {
		t.Errorf("masked key missing: %s", output)
	}
}

func TestConfigGetCommand_UnknownKey(t *testing.T) {
	withMockKeyring(t)

	err := Execute(context.Background(), []string{"config", "get", "frobnicate"})
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "base-url") {
		t.Errorf("error should list valid keys: %v", err)
	}
}

func TestConfigGetCommand_KeyPrefix(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{APIKey: "key-123456789012"}); err != nil {
		t.Fatal(err)
	}

	// Unique prefixes are accepted: "base" resolves to base-url.
	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"config", "get", "base"})
		if err != nil {
			t.Errorf("config get with prefix failed: %v", err)
		}
	})
	if !strings.Contains(output, "reinfolib.mlit.go.jp") {
		t.Errorf("prefix lookup wrong: %s", output)
	}
}

func TestConfigSetCommand_BaseURL(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{APIKey: "key-123456789012"}); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), []string{"config", "set", "base-url", "https://staging.example.test/", "-Q"})
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	account, err := config.LoadProfile("default")
	if err != nil {
		t.Fatal(err)
	}
	// Trailing slash is stripped before storing.
	if account.BaseURL != "https://staging.example.test" {
		t.Errorf("stored base URL = %q", account.BaseURL)
	}
	if account.APIKey != "key-123456789012" {
		t.Errorf("api key clobbered: %q", account.APIKey)
	}
}

func TestConfigSetCommand_EmptyAPIKey(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{APIKey: "key-123456789012"}); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), []string{"config", "set", "api-key", ""})
	if err == nil {
		t.Fatal("expected error for empty api-key")
	}
	if !strings.Contains(err.Error(), "auth logout") {
		t.Errorf("error should point at auth logout: %v", err)
	}
}

func TestConfigSetCommand_SwitchProfile(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{APIKey: "key-a-1234567890"}); err != nil {
		t.Fatal(err)
	}
	if err := config.SaveProfile("staging", config.Account{APIKey: "key-b-1234567890"}); err != nil {
		t.Fatal(err)
	}
	if err := config.SetCurrentProfile("default"); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), []string{"config", "set", "profile", "staging", "-Q"})
	if err != nil {
		t.Fatalf("config set profile failed: %v", err)
	}

	current, err := config.CurrentProfile()
	if err != nil || current != "staging" {
		t.Errorf("current profile = %q, %v; want staging", current, err)
	}
}

func TestConfigSetCommand_SwitchToMissingProfile(t *testing.T) {
	withMockKeyring(t)

	err := Execute(context.Background(), []string{"config", "set", "profile", "nonexistent"})
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestConfigListCommand(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{APIKey: "key-a-1234567890"}); err != nil {
		t.Fatal(err)
	}
	if err := config.SaveProfile("staging", config.Account{APIKey: "key-b-1234567890"}); err != nil {
		t.Fatal(err)
	}

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"config", "list"})
		if err != nil {
			t.Errorf("config list failed: %v", err)
		}
	})

	if !strings.Contains(output, "default") || !strings.Contains(output, "staging") {
		t.Errorf("profiles missing: %s", output)
	}
	// SaveProfile makes the last saved profile current.
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "staging") && !strings.Contains(line, "*") {
			t.Errorf("staging should be marked current: %s", output)
		}
	}
}

func TestConfigListCommand_JSON(t *testing.T) {
	withMockKeyring(t)

	if err := config.SaveProfile("default", config.Account{APIKey: "key-a-1234567890"}); err != nil {
		t.Fatal(err)
	}

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"config", "list", "-o", "json"})
		if err != nil {
			t.Errorf("config list failed: %v", err)
		}
	})

	var payload struct {
		Items []map[string]any `json:"items"`
		Count int              `json:"count"`
	}
	if err := json.Unmarshal([]byte(output), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if payload.Count != 1 || payload.Items[0]["name"] != "default" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.Items[0]["current"] != true {
		t.Errorf("default should be current: %+v", payload.Items[0])
	}
}

func TestConfigListCommand_Empty(t *testing.T) {
	withMockKeyring(t)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"config", "list"})
		if err != nil {
			t.Errorf("config list failed: %v", err)
		}
	})

	if !strings.Contains(output, "No profiles stored") {
		t.Errorf("expected empty message, got: %s", output)
	}
}

package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestCompletionsPrefecturesCommand(t *testing.T) {
	t.Setenv("REINFO_OUTPUT", "text")

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"completions", "prefectures"})
		if err != nil {
			t.Errorf("completions prefectures failed: %v", err)
		}
	})

	if !strings.Contains(output, "CODE") || !strings.Contains(output, "ENGLISH") {
		t.Errorf("missing headers: %s", output)
	}
	if !strings.Contains(output, "13") || !strings.Contains(output, "東京都") || !strings.Contains(output, "Tokyo") {
		t.Errorf("missing Tokyo row: %s", output)
	}
	if !strings.Contains(output, "01") || !strings.Contains(output, "北海道") {
		t.Errorf("missing Hokkaido row: %s", output)
	}
	if !strings.Contains(output, "47") || !strings.Contains(output, "沖縄県") {
		t.Errorf("missing Okinawa row: %s", output)
	}

	// 47 prefectures plus the header line.
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 48 {
		t.Errorf("expected 48 lines, got %d", len(lines))
	}
}

func TestCompletionsPrefecturesCommand_JSON(t *testing.T) {
	t.Setenv("REINFO_OUTPUT", "text")

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"completions", "prefectures", "-o", "json"})
		if err != nil {
			t.Errorf("completions prefectures failed: %v", err)
		}
	})

	var payload struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(output), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if payload.Count != 47 {
		t.Errorf("count = %d, want 47", payload.Count)
	}
}

func TestCompletionsEndpointsCommand(t *testing.T) {
	t.Setenv("REINFO_OUTPUT", "text")

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"completions", "endpoints"})
		if err != nil {
			t.Errorf("completions endpoints failed: %v", err)
		}
	})

	for _, name := range []string{"transaction-prices", "municipalities", "use-districts", "disaster-risk-areas"} {
		if !strings.Contains(output, name) {
			t.Errorf("missing endpoint %s: %s", name, output)
		}
	}
}

func TestCompletionsDivisionsCommand(t *testing.T) {
	t.Setenv("REINFO_OUTPUT", "text")

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"completions", "divisions"})
		if err != nil {
			t.Errorf("completions divisions failed: %v", err)
		}
	})

	if !strings.Contains(output, "residential") || !strings.Contains(output, "00") {
		t.Errorf("missing residential division: %s", output)
	}
	if !strings.Contains(output, "commercial") || !strings.Contains(output, "05") {
		t.Errorf("missing commercial division: %s", output)
	}
}

package skill

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

func TestSkillPath_UsesHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := SkillPath()
	if err != nil {
		t.Fatalf("SkillPath() error: %v", err)
	}

	want := filepath.Join(home, ".claude", "skills", "reinfolib-workspace", "SKILL.md")
	if path != want {
		t.Fatalf("SkillPath() = %q, want %q", path, want)
	}
}

func newTestClient(t *testing.T, baseURL string) *api.Client {
	t.Helper()
	t.Setenv("REINFOLIB_TESTING", "1")
	client, err := api.NewWithBaseURL(baseURL, "key")
	if err != nil {
		t.Fatalf("NewWithBaseURL() error: %v", err)
	}
	return client
}

func TestGenerateWorkspaceSkill_Success(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ex-api/external/XIT002" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"status":"OK","data":[{"id":"13101","name":"千代田区"},{"id":"13104","name":"新宿区"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	if err := GenerateWorkspaceSkill(context.Background(), client, "13"); err != nil {
		t.Fatalf("GenerateWorkspaceSkill() error: %v", err)
	}

	path, err := SkillPath()
	if err != nil {
		t.Fatalf("SkillPath() error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) error: %v", path, err)
	}
	text := string(content)

	for _, want := range []string{
		"# Real Estate Information Library Workspace",
		"| transaction-prices | XIT001 | - |",
		"| valuation-points | XPT002 | 13-15 |",
		"| natural-parks | XKT019 | 9-15 |",
		"| 13 | 東京都 | Tokyo |",
		"| 47 | 沖縄県 | Okinawa |",
		"## Municipalities of 東京都",
		"| 13104 | 新宿区 |",
		"reinfo prices list --year 2023 --city 13101",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("generated skill missing %q\ncontent:\n%s", want, text)
		}
	}
}

func TestGenerateWorkspaceSkill_ContinuesOnFetchErrors(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	if err := GenerateWorkspaceSkill(context.Background(), client, "13"); err != nil {
		t.Fatalf("GenerateWorkspaceSkill() should tolerate fetch errors, got: %v", err)
	}

	path, err := SkillPath()
	if err != nil {
		t.Fatalf("SkillPath() error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) error: %v", path, err)
	}
	text := string(content)

	if strings.Contains(text, "## Municipalities of") {
		t.Fatalf("expected municipality section omitted when fetch fails, got:\n%s", text)
	}
	if !strings.Contains(text, "reinfo prices list --year 2023 --city <city-code>") {
		t.Fatalf("expected city placeholder when municipalities are unavailable, got:\n%s", text)
	}
	// Static sections survive without upstream access
	if !strings.Contains(text, "| municipalities | XIT002 | - |") {
		t.Fatalf("expected endpoint table in skill, got:\n%s", text)
	}
}

func TestGenerateWorkspaceSkill_NoHomePrefecture(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := GenerateWorkspaceSkill(context.Background(), nil, ""); err != nil {
		t.Fatalf("GenerateWorkspaceSkill() error: %v", err)
	}

	path, err := SkillPath()
	if err != nil {
		t.Fatalf("SkillPath() error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) error: %v", path, err)
	}
	if strings.Contains(string(content), "## Municipalities of") {
		t.Fatalf("expected no municipality section without a prefecture:\n%s", string(content))
	}
}

func TestGenerateWorkspaceSkill_MkdirAllFailure(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// Block creation of ~/.claude/skills/... by creating ~/.claude as a file.
	if err := os.WriteFile(filepath.Join(home, ".claude"), []byte("not a directory"), 0o600); err != nil {
		t.Fatalf("WriteFile(.claude) error: %v", err)
	}

	err := GenerateWorkspaceSkill(context.Background(), nil, "")
	if err == nil {
		t.Fatal("expected error from mkdir failure, got nil")
	}
	if !strings.Contains(err.Error(), "failed to create skill directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateWorkspaceSkill_CreateFailure(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	skillDir := filepath.Join(home, ".claude", "skills", "reinfolib-workspace")
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatalf("MkdirAll(skillDir) error: %v", err)
	}
	// Force os.Create to fail by occupying the target path with a directory.
	if err := os.Mkdir(filepath.Join(skillDir, "SKILL.md"), 0o755); err != nil {
		t.Fatalf("Mkdir(SKILL.md as dir) error: %v", err)
	}

	err := GenerateWorkspaceSkill(context.Background(), nil, "")
	if err == nil {
		t.Fatal("expected error from create failure, got nil")
	}
	if !strings.Contains(err.Error(), "failed to create skill file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestZoomRange(t *testing.T) {
	var tile, flat api.EndpointInfo
	for _, info := range api.Endpoints() {
		switch info.Name {
		case "use-districts":
			tile = info
		case "appraisal-reports":
			flat = info
		}
	}
	if got := zoomRange(tile); got != "11-15" {
		t.Errorf("zoomRange(use-districts) = %q, want %q", got, "11-15")
	}
	if got := zoomRange(flat); got != "-" {
		t.Errorf("zoomRange(appraisal-reports) = %q, want %q", got, "-")
	}
}

// Package skill provides workspace skill file generation for Claude agents.
package skill

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

const skillTemplate = `---
name: reinfolib-workspace
description: Endpoint and area-code context for the Real Estate Information Library API
---

# Real Estate Information Library Workspace

Auto-generated skill with endpoint and area-code context.

## Endpoints

| Name | ID | Zoom | Summary |
|------|----|------|---------|
{{- range .Endpoints}}
| {{.Name}} | {{.ID}} | {{.Zoom}} | {{.Summary}} |
{{- end}}

## Prefecture Codes

| Code | Name | |
|------|------|--|
{{- range .Prefectures}}
| {{.Code}} | {{.NameJa}} | {{.NameEn}} |
{{- end}}
{{if .Municipalities}}
## Municipalities of {{.HomePrefecture}}

| Code | Name |
|------|------|
{{- range .Municipalities}}
| {{.Code}} | {{.Name}} |
{{- end}}
{{end}}
## Quick Commands

` + "```" + `bash
# Transaction prices for one municipality and year
reinfo prices list --year 2023 --city {{if .FirstCityCode}}{{.FirstCityCode}}{{else}}<city-code>{{end}}

# Municipalities of a prefecture
reinfo cities list --pref tokyo

# Official land valuation points around a coordinate
reinfo prices valuations --year 2020 --lat 35.68 --lon 139.77 --z 13

# Use districts for one tile
reinfo planning use-districts --tile 11/1819/806

# Raw endpoint access
reinfo api /ex-api/external/XIT001 year=2023 area=13
` + "```" + `
`

// EndpointRow is one endpoint table line of the generated skill.
type EndpointRow struct {
	Name    string
	ID      string
	Zoom    string
	Summary string
}

// WorkspaceData holds the data needed to generate a workspace skill.
type WorkspaceData struct {
	Endpoints      []EndpointRow
	Prefectures    []resolve.Prefecture
	Municipalities []api.Municipality
	HomePrefecture string
	FirstCityCode  string
}

// zoomRange extracts the zoom bounds from an endpoint's z parameter, or "-"
// for the non-tile endpoints.
func zoomRange(info api.EndpointInfo) string {
	for _, p := range info.Params {
		if p.Key != "z" {
			continue
		}
		r := strings.TrimPrefix(p.Description, "zoom level (")
		return strings.TrimSuffix(r, ")")
	}
	return "-"
}

// GenerateWorkspaceSkill creates a workspace-specific skill file. The
// endpoint catalog and prefecture table are static; the municipality list
// for prefCode is fetched live and skipped on error. The skill is written
// to ~/.claude/skills/reinfolib-workspace/SKILL.md
func GenerateWorkspaceSkill(ctx context.Context, client *api.Client, prefCode string) error {
	data := WorkspaceData{Prefectures: resolve.Prefectures()}

	for _, info := range api.Endpoints() {
		data.Endpoints = append(data.Endpoints, EndpointRow{
			Name:    info.Name,
			ID:      info.ID,
			Zoom:    zoomRange(info),
			Summary: info.Summary,
		})
	}

	// Fetch municipalities of the home prefecture
	if prefCode != "" && client != nil {
		if name, ok := resolve.PrefectureName(prefCode); ok {
			data.HomePrefecture = name
		} else {
			data.HomePrefecture = prefCode
		}
		opts := api.MunicipalitiesOptions{Area: prefCode}
		if cities, err := client.Municipalities().List(ctx, opts); err == nil {
			data.Municipalities = cities
			if len(cities) > 0 {
				data.FirstCityCode = cities[0].Code
			}
		}
	}

	// Generate skill file
	tmpl, err := template.New("skill").Parse(skillTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	// Create skill directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	skillDir := filepath.Join(homeDir, ".claude", "skills", "reinfolib-workspace")
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}

	// Write skill file
	skillPath := filepath.Join(skillDir, "SKILL.md")
	f, err := os.Create(skillPath)
	if err != nil {
		return fmt.Errorf("failed to create skill file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to write skill: %w", err)
	}

	return nil
}

// SkillPath returns the path where the workspace skill is stored.
func SkillPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".claude", "skills", "reinfolib-workspace", "SKILL.md"), nil
}

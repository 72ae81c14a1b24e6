package cmd

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

const municipalitiesBody = `{
	"status": "OK",
	"data": [
		{"id": "13101", "name": "千代田区"},
		{"id": "13102", "name": "中央区"},
		{"id": "13103", "name": "港区"}
	]
}`

func TestCitiesListCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XIT002", func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("area"); got != "13" {
				t.Errorf("area = %q, want 13", got)
			}
			jsonResponse(200, municipalitiesBody)(w, r)
		})

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"cities", "list", "--pref", "東京都"})
		if err != nil {
			t.Errorf("cities list failed: %v", err)
		}
	})

	if !strings.Contains(output, "13101") || !strings.Contains(output, "千代田区") {
		t.Errorf("output missing municipality: %s", output)
	}
	if !strings.Contains(output, "CODE") || !strings.Contains(output, "NAME") {
		t.Errorf("output missing headers: %s", output)
	}
}

func TestCitiesListCommand_JSON(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XIT002", jsonResponse(200, municipalitiesBody))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"cities", "list", "--pref", "13", "-o", "json"})
		if err != nil {
			t.Errorf("cities list failed: %v", err)
		}
	})

	items := decodeItems(t, output)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0]["id"] != "13101" {
		t.Errorf("first item has wrong code: %v", items[0])
	}
}

func TestCitiesListCommand_UnknownPrefecture(t *testing.T) {
	setupTestEnvWithHandler(t, newRouteHandler())

	err := Execute(context.Background(), []string{"cities", "list", "--pref", "atlantis"})
	if err == nil {
		t.Fatal("expected error for unknown prefecture")
	}
}

func TestResolveCityCode_PassesThroughCodes(t *testing.T) {
	got, err := resolveCityCode(context.Background(), nil, "", "13101")
	if err != nil {
		t.Fatalf("resolveCityCode failed: %v", err)
	}
	if got != "13101" {
		t.Errorf("resolveCityCode = %q, want 13101", got)
	}
}

package cmd

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestHazardsDisasterCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT016", geoJSONResponse(200, `{
			"type": "Feature",
			"geometry": {"type": "Polygon", "coordinates": [[[139.7,35.6],[139.8,35.6],[139.8,35.7],[139.7,35.6]]]},
			"properties": {"A48_002": "熱海市", "A48_005_ja": "急傾斜地崩壊危険区域", "A48_007_name_ja": "急傾斜地の崩壊", "A48_009": "1978-03-17"}
		}`))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"hazards", "disaster", "--tile", "11/1816/806"})
		if err != nil {
			t.Errorf("hazards disaster failed: %v", err)
		}
	})

	if !strings.Contains(output, "熱海市") || !strings.Contains(output, "急傾斜地の崩壊") {
		t.Errorf("output missing hazard fields: %s", output)
	}
}

func TestHazardsDisasterCommand_PartialTileFailure(t *testing.T) {
	// One tile of the grid returns 500; the whole command must fail and
	// name the failing tile.
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT016", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("x") == "1817" {
				jsonResponse(500, `{"message": "internal error"}`)(w, r)
				return
			}
			geoJSONResponse(200, ``)(w, r)
		})

	setupTestEnvWithHandler(t, handler)

	err := Execute(context.Background(), []string{"hazards", "disaster", "--z", "11", "--x", "1816:1817", "--y", "806"})
	if err == nil {
		t.Fatal("expected error when a grid tile fails")
	}
	if !strings.Contains(err.Error(), "11/1817/806") {
		t.Errorf("error should name the failing tile: %v", err)
	}
}

func TestHazardsLandslideCommand_PrefectureFilter(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT021", func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("prefectureCode"); got != "22" {
				t.Errorf("prefectureCode = %q, want 22", got)
			}
			geoJSONResponse(200, `{
				"type": "Feature",
				"geometry": {"type": "Polygon", "coordinates": [[[138.3,34.9],[138.4,34.9],[138.4,35.0],[138.3,34.9]]]},
				"properties": {"prefecture_name": "静岡県", "city_name": "静岡市", "region_name": "由比", "notice_date": "1967-08-03"}
			}`)(w, r)
		})

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"hazards", "landslide", "--tile", "11/1812/810", "--pref", "shizuoka"})
		if err != nil {
			t.Errorf("hazards landslide failed: %v", err)
		}
	})

	if !strings.Contains(output, "由比") {
		t.Errorf("output missing region: %s", output)
	}
}

func TestHazardsEmbankmentCommand_JSON(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT020", geoJSONResponse(200, `{
			"type": "Feature",
			"geometry": {"type": "Polygon", "coordinates": [[[139.7,35.6],[139.8,35.6],[139.8,35.7],[139.7,35.6]]]},
			"properties": {"embankment_classification": "谷埋め型", "prefecture_name": "東京都", "city_name": "八王子市", "embankment_number": "204"}
		}`))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"hazards", "embankment", "--tile", "11/1816/806", "-o", "json"})
		if err != nil {
			t.Errorf("hazards embankment failed: %v", err)
		}
	})

	items := decodeItems(t, output)
	if len(items) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(items))
	}
}

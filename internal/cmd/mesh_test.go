package cmd

import (
	"context"
	"strings"
	"testing"
)

func TestMeshPopulationCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT013", geoJSONResponse(200, `{
			"type": "Feature",
			"geometry": {"type": "Polygon", "coordinates": [[[139.7,35.6],[139.8,35.6],[139.8,35.7],[139.7,35.6]]]},
			"properties": {"MESH_ID": 53394611, "SHICODE": 13101, "PTN_2030": "1820.5", "PTN_2040": 1650, "PTN_2050": 1480}
		}`))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"mesh", "population", "--tile", "11/1819/806"})
		if err != nil {
			t.Errorf("mesh population failed: %v", err)
		}
	})

	if !strings.Contains(output, "53394611") || !strings.Contains(output, "13101") {
		t.Errorf("output missing mesh identity: %s", output)
	}
	// Projection vintages print ascending with rounded counts.
	if !strings.Contains(output, "2030:1821") && !strings.Contains(output, "2030:1820") {
		t.Errorf("output missing 2030 projection: %s", output)
	}
	if !strings.Contains(output, "2050:1480") {
		t.Errorf("output missing 2050 projection: %s", output)
	}
}

func TestMeshPassengersCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT015", geoJSONResponse(200, `{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [139.767, 35.681]},
			"properties": {"S12_001_ja": "東京", "S12_002_ja": "東日本旅客鉄道", "S12_003_ja": "東海道線", "S12_043": 1, "S12_045": 280000, "S12_047": 0, "S12_051": 0}
		}`))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"mesh", "passengers", "--tile", "11/1819/806"})
		if err != nil {
			t.Errorf("mesh passengers failed: %v", err)
		}
	})

	if !strings.Contains(output, "東京") || !strings.Contains(output, "東海道線") {
		t.Errorf("output missing station fields: %s", output)
	}
	// 2020 is the latest year whose availability code is 1.
	if !strings.Contains(output, "280000 (2020)") {
		t.Errorf("output missing latest ridership: %s", output)
	}
}

func TestMeshPassengersCommand_NoSurveyData(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT015", geoJSONResponse(200, `{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [139.767, 35.681]},
			"properties": {"S12_001_ja": "廃駅", "S12_002_ja": "某社", "S12_003_ja": "某線"}
		}`))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"mesh", "passengers", "--tile", "11/1819/806"})
		if err != nil {
			t.Errorf("mesh passengers failed: %v", err)
		}
	})

	if !strings.Contains(output, "廃駅") || !strings.Contains(output, "-") {
		t.Errorf("stations without survey data should print a dash: %s", output)
	}
}

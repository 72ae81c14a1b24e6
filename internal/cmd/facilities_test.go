package cmd

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestFacilitiesMedicalCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT010", geoJSONResponse(200, `{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [139.74, 35.69]},
			"properties": {"P04_002_ja": "九段坂病院", "P04_001_name_ja": "病院", "medical_subject_ja": "内科 整形外科", "P04_003_ja": "千代田区九段南1-6-12"}
		}`))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"facilities", "medical", "--tile", "13/7276/3225"})
		if err != nil {
			t.Errorf("facilities medical failed: %v", err)
		}
	})

	if !strings.Contains(output, "九段坂病院") || !strings.Contains(output, "整形外科") {
		t.Errorf("output missing facility fields: %s", output)
	}
}

func TestFacilitiesWelfareCommand_ClassFilters(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT011", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("welfareFacilityClassCode") != "16" {
				t.Errorf("welfareFacilityClassCode = %q, want 16", q.Get("welfareFacilityClassCode"))
			}
			if q.Get("welfareFacilityMiddleClassCode") != "1602" {
				t.Errorf("welfareFacilityMiddleClassCode = %q, want 1602", q.Get("welfareFacilityMiddleClassCode"))
			}
			geoJSONResponse(200, `{
				"type": "Feature",
				"geometry": {"type": "Point", "coordinates": [139.74, 35.69]},
				"properties": {"P14_008_ja": "ちよだ保育園", "P14_005_name_ja": "児童福祉施設等", "P14_006_name_ja": "保育所", "P14_004_ja": "千代田区九段北1-2-3"}
			}`)(w, r)
		})

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{
			"facilities", "welfare", "--tile", "13/7276/3225",
			"--class-code", "16", "--middle-class-code", "1602",
		})
		if err != nil {
			t.Errorf("facilities welfare failed: %v", err)
		}
	})

	if !strings.Contains(output, "ちよだ保育園") || !strings.Contains(output, "保育所") {
		t.Errorf("output missing welfare fields: %s", output)
	}
}

func TestFacilitiesLibrariesCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT017", geoJSONResponse(200, `{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [139.75, 35.69]},
			"properties": {"P27_005_ja": "千代田区立千代田図書館", "P27_003_name_ja": "図書館", "P27_006_ja": "千代田区九段南1-2-1", "P27_009": 2007}
		}`))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"facilities", "libraries", "--tile", "13/7276/3225"})
		if err != nil {
			t.Errorf("facilities libraries failed: %v", err)
		}
	})

	if !strings.Contains(output, "千代田図書館") || !strings.Contains(output, "2007") {
		t.Errorf("output missing library fields: %s", output)
	}
}

func TestFacilitiesTownHallsCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/ex-api/external/XKT018", geoJSONResponse(200, `{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [139.75, 35.69]},
			"properties": {"P05_003_ja": "千代田区役所", "P05_002_name_ja": "本庁舎", "P05_004_ja": "千代田区九段南1-2-1", "P05_001": "13101"}
		}`))

	setupTestEnvWithHandler(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"facilities", "town-halls", "--tile", "13/7276/3225"})
		if err != nil {
			t.Errorf("facilities town-halls failed: %v", err)
		}
	})

	if !strings.Contains(output, "千代田区役所") || !strings.Contains(output, "13101") {
		t.Errorf("output missing town hall fields: %s", output)
	}
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestZoneDivisions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ex-api/external/XKT001" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"type": "FeatureCollection",
			"features": [
				{
					"type": "Feature",
					"geometry": {"type": "MultiPolygon", "coordinates": [[[[139.69, 35.68], [139.70, 35.68], [139.70, 35.69], [139.69, 35.68]]]]},
					"properties": {
						"prefecture": "東京都",
						"city_code": "13104",
						"city_name": "新宿区",
						"kubun_id": "1",
						"decision_date": "2004-03-31",
						"decision_maker": "東京都",
						"area_classification_ja": "市街化区域"
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	features, err := client.Planning().ZoneDivisions(context.Background(), Tile{Z: 11, X: 1818, Y: 806})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(features) != 1 {
		t.Fatalf("Expected 1 feature, got %d", len(features))
	}
	zone := features[0].Properties
	if zone.CityName != "新宿区" || zone.KubunID != 1 {
		t.Errorf("Unexpected zone: %+v", zone)
	}
	if zone.AreaClassification != "市街化区域" {
		t.Errorf("Unexpected classification: %s", zone.AreaClassification)
	}
	if features[0].Geometry.Type != "MultiPolygon" {
		t.Errorf("Unexpected geometry type: %s", features[0].Geometry.Type)
	}
}

func TestUseDistricts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ex-api/external/XKT002" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("z") != "15" || q.Get("response_format") != "geojson" {
			t.Errorf("Unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"type": "FeatureCollection",
			"features": [
				{
					"type": "Feature",
					"geometry": {"type": "MultiPolygon", "coordinates": [[[[139.7, 35.6], [139.71, 35.6], [139.71, 35.61], [139.7, 35.6]]]]},
					"properties": {
						"youto_id": "11",
						"use_area_ja": "商業地域",
						"u_floor_area_ratio_ja": "500%",
						"u_building_coverage_ratio_ja": "80%",
						"city_code": "13103"
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	features, err := client.Planning().UseDistricts(context.Background(), Tile{Z: 15, X: 29105, Y: 12903})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(features) != 1 {
		t.Fatalf("Expected 1 feature, got %d", len(features))
	}
	district := features[0].Properties
	if district.UseArea != "商業地域" {
		t.Errorf("Unexpected use area: %s", district.UseArea)
	}
	if district.FloorAreaRatio != "500%" {
		t.Errorf("Unexpected floor area ratio: %s", district.FloorAreaRatio)
	}
}

func TestPlanningZoomBounds(t *testing.T) {
	spy := &recordingTransport{}
	client := newTestClient("https://example.com", "test-key")
	client.HTTP = &http.Client{Transport: spy}

	calls := []func() error{
		func() error {
			_, err := client.Planning().ZoneDivisions(context.Background(), Tile{Z: 10, X: 1, Y: 1})
			return err
		},
		func() error {
			_, err := client.Planning().FirePreventionAreas(context.Background(), Tile{Z: 16, X: 1, Y: 1})
			return err
		},
		func() error {
			_, err := client.Planning().DistrictPlans(context.Background(), Tile{Z: 10, X: 1, Y: 1})
			return err
		},
		func() error {
			_, err := client.Planning().HighUtilizationDistricts(context.Background(), Tile{Z: 16, X: 1, Y: 1})
			return err
		},
	}
	for _, call := range calls {
		if err := call(); !IsParameterError(err) {
			t.Errorf("Expected parameter error, got %v", err)
		}
	}
	if spy.calls != 0 {
		t.Errorf("Expected zero requests, transport saw %d", spy.calls)
	}
}

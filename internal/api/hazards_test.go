package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDisasterRiskAreas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ex-api/external/XKT016" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("administrativeAreaCode") != "13103,13104" {
			t.Errorf("Area filter not encoded: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"type": "FeatureCollection",
			"features": [
				{
					"type": "Feature",
					"geometry": {"type": "MultiPolygon", "coordinates": [[[[139.74, 35.64], [139.75, 35.64], [139.75, 35.65], [139.74, 35.64]]]]},
					"properties": {
						"A48_001": "東京都",
						"A48_002": "港区",
						"A48_003": "13103",
						"A48_005_ja": "港区災害危険区域",
						"A48_007": 2,
						"A48_007_name_ja": "急傾斜地崩壊危険",
						"A48_012": "1500.5"
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	features, err := client.Hazards().DisasterRiskAreas(context.Background(),
		Tile{Z: 12, X: 3637, Y: 1613},
		HazardAreaOptions{AdministrativeAreaCode: "13103,13104"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(features) != 1 {
		t.Fatalf("Expected 1 feature, got %d", len(features))
	}
	area := features[0].Properties
	if area.Name != "港区災害危険区域" || area.ReasonCode != 2 {
		t.Errorf("Unexpected area: %+v", area)
	}
	if area.Area != 1500.5 {
		t.Errorf("Expected area 1500.5, got %v", area.Area)
	}
}

func TestEmbankmentAreas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ex-api/external/XKT020" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"type": "FeatureCollection",
			"features": [
				{
					"type": "Feature",
					"geometry": {"type": "MultiPolygon", "coordinates": [[[[139.4, 35.4], [139.5, 35.4], [139.5, 35.5], [139.4, 35.4]]]]},
					"properties": {
						"embankment_classification": "2",
						"prefecture_code": "14",
						"prefecture_name": "神奈川県",
						"city_code": "14151",
						"city_name": "相模原市緑区",
						"embankment_number": "1"
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	features, err := client.Hazards().EmbankmentAreas(context.Background(), Tile{Z: 11, X: 1815, Y: 807})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(features) != 1 {
		t.Fatalf("Expected 1 feature, got %d", len(features))
	}
	area := features[0].Properties
	if area.CityName != "相模原市緑区" || area.Classification != "2" {
		t.Errorf("Unexpected area: %+v", area)
	}
}

func TestSlopeAreaFilters(t *testing.T) {
	var landslideQuery, steepQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ex-api/external/XKT021":
			landslideQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{
				"type": "FeatureCollection",
				"features": [
					{
						"type": "Feature",
						"geometry": {"type": "MultiPolygon", "coordinates": [[[[138.5, 35.5], [138.6, 35.5], [138.6, 35.6], [138.5, 35.5]]]]},
						"properties": {
							"prefecture_code": "19",
							"region_name": "大月地区",
							"charge_ministry_code": "2",
							"charge_ministry_name": "農林水産省"
						}
					}
				]
			}`))
		case "/ex-api/external/XKT022":
			steepQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{
				"type": "FeatureCollection",
				"features": [
					{
						"type": "Feature",
						"geometry": {"type": "MultiPolygon", "coordinates": [[[[138.5, 35.5], [138.6, 35.5], [138.6, 35.6], [138.5, 35.5]]]]},
						"properties": {
							"prefecture_code": "19",
							"region_name": "初狩地区",
							"public_notice_date": "1973-07-12",
							"public_notice_number": "第534号"
						}
					}
				]
			}`))
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	tile := Tile{Z: 11, X: 1812, Y: 807}
	opts := SlopeAreaOptions{PrefectureCode: "19"}

	landslides, err := client.Hazards().LandslideAreas(context.Background(), tile, opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(landslides) != 1 || landslides[0].Properties.ChargeMinistryName != "農林水産省" {
		t.Errorf("Unexpected landslide areas: %+v", landslides)
	}

	steep, err := client.Hazards().SteepSlopeAreas(context.Background(), tile, opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(steep) != 1 || steep[0].Properties.PublicNoticeDate != "1973-07-12" {
		t.Errorf("Unexpected steep slope areas: %+v", steep)
	}

	for _, q := range []string{landslideQuery, steepQuery} {
		if !strings.Contains(q, "prefectureCode=19") {
			t.Errorf("Prefecture filter missing from query: %s", q)
		}
	}
}

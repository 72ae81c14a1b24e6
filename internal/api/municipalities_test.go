package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMunicipalitiesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ex-api/external/XIT002" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("area") != "13" {
			t.Errorf("Unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"data": [
				{"id": "13101", "name": "千代田区"},
				{"id": "13102", "name": "中央区"},
				{"id": "13103", "name": "港区"}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	municipalities, err := client.Municipalities().List(context.Background(), MunicipalitiesOptions{Area: "13"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(municipalities) != 3 {
		t.Fatalf("Expected 3 municipalities, got %d", len(municipalities))
	}
	if municipalities[0].Code != "13101" || municipalities[0].Name != "千代田区" {
		t.Errorf("Unexpected first municipality: %+v", municipalities[0])
	}
	if municipalities[2].Code != "13103" || municipalities[2].Name != "港区" {
		t.Errorf("Unexpected last municipality: %+v", municipalities[2])
	}
}

func TestMunicipalitiesListEnglish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("area") != "01" || q.Get("language") != "en" {
			t.Errorf("Unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"status":"OK","data":[{"id":"01100","name":"Sapporo City"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	municipalities, err := client.Municipalities().List(context.Background(), MunicipalitiesOptions{Area: "01", Language: "en"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(municipalities) != 1 || municipalities[0].Name != "Sapporo City" {
		t.Errorf("Unexpected result: %+v", municipalities)
	}
}

func TestMunicipalitiesListValidation(t *testing.T) {
	spy := &recordingTransport{}
	client := newTestClient("https://example.com", "test-key")
	client.HTTP = &http.Client{Transport: spy}

	tests := []struct {
		name string
		opts MunicipalitiesOptions
	}{
		{name: "missing area", opts: MunicipalitiesOptions{}},
		{name: "area not two digits", opts: MunicipalitiesOptions{Area: "131"}},
		{name: "unsupported language", opts: MunicipalitiesOptions{Area: "13", Language: "fr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Municipalities().List(context.Background(), tt.opts)
			if !IsParameterError(err) {
				t.Errorf("Expected parameter error, got %T: %v", err, err)
			}
		})
	}

	if spy.calls != 0 {
		t.Errorf("Expected zero requests, transport saw %d", spy.calls)
	}
}

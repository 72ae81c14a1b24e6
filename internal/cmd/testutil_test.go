// Test utilities for the reinfo CLI commands.
//
// The pieces:
//
//   - routeHandler: a chainable HTTP handler routing "METHOD PATH" to mock
//     responses
//   - setupTestEnvWithHandler: httptest server + env wiring with cleanup
//   - captureStdout / captureStderr: output capture
//   - jsonResponse: canned JSON response handler
//   - decodeItems: pulls the items array out of {"items": [...]} output
//
// Minimal example:
//
//	handler := newRouteHandler().
//	    On("GET", "/ex-api/external/XIT002", jsonResponse(200, `{"status":"OK","data":[{"id":"13101","name":"千代田区"}]}`))
//	setupTestEnvWithHandler(t, handler)
//
//	output := captureStdout(t, func() {
//	    if err := Execute(context.Background(), []string{"cities", "list", "--pref", "13"}); err != nil {
//	        t.Fatalf("command failed: %v", err)
//	    }
//	})
package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

// captureStdout executes a function and captures its stdout output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// captureStderr executes a function and captures its stderr output.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// testEnv gives tests access to the mock upstream server.
type testEnv struct {
	t      *testing.T
	server *httptest.Server
}

// setupTestEnvWithHandler creates a mock upstream and points the CLI at it:
// REINFOLIB_BASE_URL at the test server, REINFOLIB_API_KEY set,
// REINFOLIB_TESTING to skip URL validation, and text output by default.
func setupTestEnvWithHandler(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("REINFOLIB_BASE_URL", server.URL)
	t.Setenv("REINFOLIB_API_KEY", "test-key")
	t.Setenv("REINFOLIB_TESTING", "1")
	t.Setenv("REINFO_OUTPUT", "text")

	return &testEnv{t: t, server: server}
}

// jsonResponse creates an http.HandlerFunc returning a canned JSON body.
func jsonResponse(statusCode int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}
}

// routeHandler routes requests by exact "METHOD PATH"; unmatched requests
// get 404.
type routeHandler struct {
	routes map[string]http.HandlerFunc
}

func newRouteHandler() *routeHandler {
	return &routeHandler{routes: make(map[string]http.HandlerFunc)}
}

// On registers a handler for the given HTTP method and path and returns the
// routeHandler for chaining.
func (rh *routeHandler) On(method, path string, handler http.HandlerFunc) *routeHandler {
	rh.routes[method+" "+path] = handler
	return rh
}

func (rh *routeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	if handler, ok := rh.routes[key]; ok {
		handler(w, r)
		return
	}
	http.NotFound(w, r)
}

// geoJSONResponse wraps features into the FeatureCollection envelope the
// tile endpoints respond with.
func geoJSONResponse(statusCode int, features string) http.HandlerFunc {
	return jsonResponse(statusCode, `{"type":"FeatureCollection","features":[`+features+`]}`)
}

// decodeItems parses {"items": [...]} JSON output from list commands.
func decodeItems(t *testing.T, output string) []map[string]any {
	t.Helper()
	var wrapper struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal([]byte(output), &wrapper); err != nil {
		t.Fatalf("output is not valid JSON: %v, output: %s", err, output)
	}
	return wrapper.Items
}

func TestTestInfrastructure(t *testing.T) {
	t.Run("routeHandler routes requests correctly", func(t *testing.T) {
		handler := newRouteHandler().
			On("GET", "/ex-api/external/XIT001", jsonResponse(200, `{"status":"OK","data":[]}`))

		env := setupTestEnvWithHandler(t, handler)

		resp, err := http.Get(env.server.URL + "/ex-api/external/XIT001")
		if err != nil {
			t.Fatalf("GET request failed: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != 200 {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}

		resp, err = http.Get(env.server.URL + "/ex-api/external/XIT999")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != 404 {
			t.Errorf("expected status 404 for unknown route, got %d", resp.StatusCode)
		}
	})
}

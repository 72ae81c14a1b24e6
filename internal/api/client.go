package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/reinfolib/reinfolib-cli/internal/debug"
	"github.com/reinfolib/reinfolib-cli/internal/validation"
)

const (
	// DefaultBaseURL is the production Real Estate Information Library host.
	DefaultBaseURL = "https://www.reinfolib.mlit.go.jp"

	DefaultTimeout = 30 * time.Second

	// authHeader carries the subscription key issued by the portal. The key
	// travels only in this header, never in the URL and never in logs.
	authHeader = "Ocp-Apim-Subscription-Key"

	// maxErrorBodyBytes bounds how much of an unexpected response body is
	// kept for diagnostics.
	maxErrorBodyBytes = 2048
)

// Client is the Real Estate Information Library API client.
//
// A Client is immutable after construction and holds no per-call state, so a
// single instance may be shared freely across goroutines — for example one
// tile fetch per grid cell. Each call dispatches exactly one GET; the client
// never retries, backs off, or caches.
type Client struct {
	BaseURL   string
	APIKey    string
	HTTP      *http.Client
	UserAgent string

	skipURLValidation bool // internal flag for testing only
}

// Compile-time interface implementation checks
var (
	_ Requester    = (*Client)(nil)
	_ PathResolver = (*Client)(nil)
	_ HTTPExecutor = (*Client)(nil)
)

var validateBaseURL = validation.ValidateBaseURL

// New creates a client for the production API host.
func New(apiKey string) (*Client, error) {
	return NewWithBaseURL(DefaultBaseURL, apiKey)
}

// NewWithBaseURL creates a client against an explicit host. The key and URL
// are checked up front; no network I/O happens until the first call.
func NewWithBaseURL(baseURL, apiKey string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, &ConfigurationError{Reason: "API key is required"}
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid base URL %q: %v", baseURL, err)}
	}

	// Allow localhost URLs when REINFOLIB_TESTING=1 is set (for integration tests)
	skipValidation := os.Getenv("REINFOLIB_TESTING") == "1"
	if !skipValidation {
		if err := validateBaseURL(baseURL); err != nil {
			return nil, &ConfigurationError{Reason: err.Error()}
		}
	}

	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12
	transport.TLSClientConfig.InsecureSkipVerify = false

	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
		skipURLValidation: skipValidation,
	}, nil
}

// NewWithHTTPClient creates a client that uses the caller's HTTP client,
// for callers that manage their own transport, timeout, or proxy settings.
func NewWithHTTPClient(baseURL, apiKey string, httpClient *http.Client) (*Client, error) {
	c, err := NewWithBaseURL(baseURL, apiKey)
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		c.HTTP = httpClient
	}
	return c, nil
}

// newTestClient creates a client with URL validation disabled for testing
func newTestClient(baseURL, apiKey string) *Client {
	c := &Client{
		BaseURL:           strings.TrimRight(baseURL, "/"),
		APIKey:            apiKey,
		HTTP:              &http.Client{Timeout: DefaultTimeout},
		skipURLValidation: true,
	}
	return c
}

// externalPath returns the full URL for an endpoint ID like "XIT001".
func (c *Client) externalPath(id string) string {
	return fmt.Sprintf("%s/ex-api/external/%s", c.BaseURL, id)
}

// get performs an authenticated GET and decodes the JSON response into
// result. The error, if any, is already classified (see errors.go).
func (c *Client) get(ctx context.Context, rawURL string, query url.Values, result any) error {
	body, err := c.getRaw(ctx, rawURL, query)
	if err != nil {
		return err
	}
	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return &DecodingError{URL: rawURL, Err: err}
		}
	}
	return nil
}

// getRaw performs an authenticated GET and returns the raw response body.
// Used directly for binary vector tile (pbf) responses.
func (c *Client) getRaw(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	if len(query) > 0 {
		// url.Values.Encode sorts keys, keeping request URLs stable.
		rawURL = rawURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(authHeader, c.APIKey)
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		if debug.IsEnabled(ctx) {
			slog.Debug("request failed", "method", http.MethodGet, "url", rawURL, "error", err)
		}
		return nil, &UpstreamError{URL: rawURL, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &UpstreamError{URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete", "method", http.MethodGet, "url", rawURL, "status", resp.StatusCode, "duration", time.Since(start))
	}

	if err := classifyStatus(resp.StatusCode, resp.Header, body, rawURL); err != nil {
		return nil, err
	}
	return body, nil
}

// Raw performs an authenticated GET against an arbitrary absolute path on
// the configured host and returns the response body verbatim. This is the
// escape hatch for paths the typed bindings do not cover; query values ride
// through unvalidated.
func (c *Client) Raw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, &InvalidParameterError{Endpoint: "raw", Param: "path", Value: path, Reason: "must be an absolute path starting with /"}
	}
	return c.getRaw(ctx, c.BaseURL+path, query)
}

// classifyStatus maps a non-2xx response onto the error taxonomy.
func classifyStatus(status int, header http.Header, body []byte, rawURL string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthenticationError{StatusCode: status, URL: rawURL}
	case status == http.StatusNotFound:
		return &NotFoundError{URL: rawURL}
	case status == http.StatusTooManyRequests:
		retryAfter, _ := retryAfterDuration(header)
		return &RateLimitedError{RetryAfter: retryAfter, URL: rawURL}
	case status >= 500:
		return &UpstreamError{StatusCode: status, URL: rawURL}
	default:
		return &UnexpectedResponseError{
			StatusCode: status,
			URL:        rawURL,
			Body:       truncateBody(body),
		}
	}
}

func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		return s[:maxErrorBodyBytes] + "... (truncated)"
	}
	return s
}

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/config"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

func TestHandleError_Nil(t *testing.T) {
	if got := HandleError(nil); got != "" {
		t.Errorf("HandleError(nil) = %q, want empty", got)
	}
}

func TestHandleError_NotConfigured(t *testing.T) {
	msg := HandleError(config.ErrNotConfigured)
	if !strings.Contains(msg, "No API key configured") {
		t.Errorf("missing headline: %s", msg)
	}
	if !strings.Contains(msg, "reinfo auth login") {
		t.Errorf("missing login suggestion: %s", msg)
	}
	if !strings.Contains(msg, "REINFOLIB_API_KEY") {
		t.Errorf("missing env var suggestion: %s", msg)
	}
}

func TestHandleError_MissingParameter(t *testing.T) {
	err := &api.MissingParameterError{Endpoint: "transaction-prices", Param: "year"}
	msg := HandleError(err)
	if !strings.Contains(msg, "Missing parameter") {
		t.Errorf("missing headline: %s", msg)
	}
	if !strings.Contains(msg, "reinfo schema show transaction-prices") {
		t.Errorf("missing schema suggestion: %s", msg)
	}
}

func TestHandleError_Authentication(t *testing.T) {
	err := &api.AuthenticationError{StatusCode: 403, URL: "http://x"}
	msg := HandleError(err)
	if !strings.Contains(msg, "Authentication failed (HTTP 403)") {
		t.Errorf("missing status: %s", msg)
	}
	if !strings.Contains(msg, "reinfo auth status") {
		t.Errorf("missing status suggestion: %s", msg)
	}
}

func TestHandleError_RateLimitedWithRetryAfter(t *testing.T) {
	err := &api.RateLimitedError{RetryAfter: 30 * time.Second, URL: "http://x"}
	msg := HandleError(err)
	if !strings.Contains(msg, "Rate limit exceeded") {
		t.Errorf("missing headline: %s", msg)
	}
	if !strings.Contains(msg, "30s") {
		t.Errorf("missing retry-after duration: %s", msg)
	}
	if !strings.Contains(msg, "--concurrency") {
		t.Errorf("missing concurrency suggestion: %s", msg)
	}
}

func TestHandleError_NotFound(t *testing.T) {
	msg := HandleError(&api.NotFoundError{URL: "http://x"})
	if !strings.Contains(msg, "No data found") {
		t.Errorf("missing headline: %s", msg)
	}
	if !strings.Contains(msg, "city planning areas") {
		t.Errorf("missing coverage hint: %s", msg)
	}
}

func TestHandleError_Ambiguous(t *testing.T) {
	err := &resolve.AmbiguousError{Query: "府中", Matches: []resolve.Match{
		{Code: "13206", Name: "府中市"},
		{Code: "34208", Name: "府中市"},
	}}
	msg := HandleError(err)
	if !strings.Contains(msg, "府中") {
		t.Errorf("missing query: %s", msg)
	}
	if !strings.Contains(msg, "exact name or the code") {
		t.Errorf("missing disambiguation suggestion: %s", msg)
	}
}

func TestHandleError_WrappedTileUpstream(t *testing.T) {
	err := fmt.Errorf("tile 11/1817/806: %w", &api.UpstreamError{StatusCode: 502, URL: "http://x"})
	msg := HandleError(err)
	if !strings.Contains(msg, "Upstream error") {
		t.Errorf("wrapped upstream error not recognized: %s", msg)
	}
}

func TestHandleError_ConnectionRefusedText(t *testing.T) {
	msg := HandleError(errors.New("dial tcp 127.0.0.1:9999: connection refused"))
	if !strings.Contains(msg, "Connection refused") {
		t.Errorf("missing headline: %s", msg)
	}
}

func TestHandleError_Default(t *testing.T) {
	msg := HandleError(errors.New("some odd failure"))
	if !strings.Contains(msg, "Error: some odd failure") {
		t.Errorf("default message wrong: %s", msg)
	}
}

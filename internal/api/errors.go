package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// The binding layer fails in exactly one of the ways below. Caller mistakes
// (missing or out-of-domain parameters) are caught before any request is
// issued; everything else classifies the upstream response. Nothing is
// swallowed or retried — callers own any retry policy.

// ConfigurationError reports invalid client setup, such as a missing API key.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// MissingParameterError reports a required parameter that was not supplied.
// No request is issued.
type MissingParameterError struct {
	Endpoint string // endpoint name, e.g. "transaction-prices"
	Param    string // query key, e.g. "year"
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Endpoint, e.Param)
}

// InvalidParameterError reports a parameter value outside its domain.
// No request is issued.
type InvalidParameterError struct {
	Endpoint string
	Param    string
	Value    string
	Reason   string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: invalid parameter %q: %s (got %q)", e.Endpoint, e.Param, e.Reason, e.Value)
}

// AuthenticationError reports a 401 or 403 from the upstream, usually a
// missing, expired, or unsubscribed API key.
type AuthenticationError struct {
	StatusCode int
	URL        string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication rejected (status %d): %s", e.StatusCode, e.URL)
}

// NotFoundError reports a 404 — typically a tile with no data for the
// requested coordinates.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no data found: %s", e.URL)
}

// RateLimitedError reports a 429. RetryAfter carries the parsed Retry-After
// header when the upstream sent one; the library itself never sleeps.
type RateLimitedError struct {
	RetryAfter time.Duration
	URL        string
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %s", e.RetryAfter, e.URL)
	}
	return fmt.Sprintf("rate limited: %s", e.URL)
}

// UpstreamError reports a 5xx response or a transport-level failure.
// StatusCode is zero when the request never completed.
type UpstreamError struct {
	StatusCode int
	URL        string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		if e.StatusCode > 0 {
			return fmt.Sprintf("upstream failure (status %d): %v: %s", e.StatusCode, e.Err, e.URL)
		}
		return fmt.Sprintf("upstream failure: %v: %s", e.Err, e.URL)
	}
	return fmt.Sprintf("upstream failure (status %d): %s", e.StatusCode, e.URL)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// DecodingError reports a 2xx body that did not match the endpoint's
// documented shape. Field names the missing envelope member when the body
// parsed but lacked it.
type DecodingError struct {
	URL   string
	Field string
	Err   error
}

func (e *DecodingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("response missing expected field %q: %s", e.Field, e.URL)
	}
	return fmt.Sprintf("failed to decode response: %v: %s", e.Err, e.URL)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// UnexpectedResponseError is the catch-all for status codes outside the
// taxonomy. It keeps a bounded copy of the body for diagnostics.
type UnexpectedResponseError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response (status %d): %s: %s", e.StatusCode, e.URL, e.Body)
}

// IsConfigurationError checks if the error reports invalid client setup.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// IsParameterError checks if the error is caller misuse detected before
// dispatch (missing or invalid parameter).
func IsParameterError(err error) bool {
	var missing *MissingParameterError
	var invalid *InvalidParameterError
	return errors.As(err, &missing) || errors.As(err, &invalid)
}

// IsAuthError checks if the error is an authentication failure.
func IsAuthError(err error) bool {
	var e *AuthenticationError
	return errors.As(err, &e)
}

// IsNotFoundError checks if the error indicates the upstream had no data.
func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsRateLimitedError checks if the error is a 429 classification.
func IsRateLimitedError(err error) bool {
	var e *RateLimitedError
	return errors.As(err, &e)
}

// IsUpstreamError checks if the error is a server-side or transport failure.
func IsUpstreamError(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}

// IsDecodingError checks if the error is a response-shape mismatch.
func IsDecodingError(err error) bool {
	var e *DecodingError
	return errors.As(err, &e)
}

// retryAfterDuration parses Retry-After header values (seconds or HTTP date).
func retryAfterDuration(h http.Header) (time.Duration, bool) {
	value := strings.TrimSpace(h.Get("Retry-After"))
	if value == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			secs = 0
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(value); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}

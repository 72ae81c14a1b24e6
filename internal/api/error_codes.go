package api

import (
	"errors"
	"fmt"
)

// ErrorCode represents machine-readable error codes for agent error handling.
type ErrorCode string

const (
	// ErrConfiguration indicates invalid client setup, such as a missing key.
	ErrConfiguration ErrorCode = "configuration"
	// ErrInvalidParameter indicates a request parameter failed validation.
	ErrInvalidParameter ErrorCode = "invalid_parameter"
	// ErrUnauthorized indicates the subscription key was rejected (HTTP 401/403).
	ErrUnauthorized ErrorCode = "unauthorized"
	// ErrNotFound indicates no data exists for the request (HTTP 404).
	ErrNotFound ErrorCode = "not_found"
	// ErrRateLimited indicates too many requests (HTTP 429).
	ErrRateLimited ErrorCode = "rate_limited"
	// ErrUpstream indicates a server-side or transport failure.
	ErrUpstream ErrorCode = "upstream_error"
	// ErrDecoding indicates a 2xx body that did not match the documented shape.
	ErrDecoding ErrorCode = "decoding_error"
	// ErrUnexpected indicates a status code outside the taxonomy.
	ErrUnexpected ErrorCode = "unexpected_response"
	// ErrUnknown indicates an unknown or unclassified error.
	ErrUnknown ErrorCode = "unknown"
)

// IsRetryable returns true if errors with this code may succeed on retry.
// The client itself never retries; this guides the caller.
func (c ErrorCode) IsRetryable() bool {
	switch c {
	case ErrRateLimited, ErrUpstream:
		return true
	default:
		return false
	}
}

// Suggestion returns a human-readable suggestion for resolving this error.
func (c ErrorCode) Suggestion() string {
	switch c {
	case ErrConfiguration:
		return "Run 'reinfo auth login' to configure access"
	case ErrInvalidParameter:
		return "Check the input values"
	case ErrUnauthorized:
		return "Verify the subscription key with 'reinfo auth status'"
	case ErrNotFound:
		return "Verify the area, period, and tile coordinates"
	case ErrRateLimited:
		return "Wait a moment and retry"
	case ErrUpstream:
		return "The server encountered an error; try again later"
	case ErrDecoding:
		return "The response did not match the documented shape; check for API changes"
	case ErrUnexpected:
		return "Inspect the response body for details"
	default:
		return ""
	}
}

// StructuredError provides machine-readable error information for agents.
type StructuredError struct {
	Code       ErrorCode      `json:"code"`
	Message    string         `json:"message"`
	Retryable  bool           `json:"retryable"`
	Suggestion string         `json:"suggestion,omitempty"`
	Context    map[string]any `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewStructuredError creates a StructuredError from an ErrorCode and message.
func NewStructuredError(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:       code,
		Message:    message,
		Retryable:  code.IsRetryable(),
		Suggestion: code.Suggestion(),
	}
}

// StructuredErrorFromError converts any error from this package into a
// StructuredError, attaching classification context where available.
func StructuredErrorFromError(err error) *StructuredError {
	if err == nil {
		return nil
	}

	var se *StructuredError
	if errors.As(err, &se) {
		return se
	}

	var confErr *ConfigurationError
	if errors.As(err, &confErr) {
		return NewStructuredError(ErrConfiguration, confErr.Error())
	}

	var missingErr *MissingParameterError
	if errors.As(err, &missingErr) {
		se := NewStructuredError(ErrInvalidParameter, missingErr.Error())
		se.Context = map[string]any{"endpoint": missingErr.Endpoint, "param": missingErr.Param}
		return se
	}

	var invalidErr *InvalidParameterError
	if errors.As(err, &invalidErr) {
		se := NewStructuredError(ErrInvalidParameter, invalidErr.Error())
		se.Context = map[string]any{"endpoint": invalidErr.Endpoint, "param": invalidErr.Param, "got": invalidErr.Value}
		return se
	}

	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		se := NewStructuredError(ErrUnauthorized, authErr.Error())
		se.Context = map[string]any{"status_code": authErr.StatusCode}
		return se
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return NewStructuredError(ErrNotFound, notFoundErr.Error())
	}

	var rateErr *RateLimitedError
	if errors.As(err, &rateErr) {
		se := NewStructuredError(ErrRateLimited, rateErr.Error())
		if rateErr.RetryAfter > 0 {
			se.Context = map[string]any{"retry_after": rateErr.RetryAfter.String()}
		}
		return se
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		se := NewStructuredError(ErrUpstream, upstreamErr.Error())
		if upstreamErr.StatusCode > 0 {
			se.Context = map[string]any{"status_code": upstreamErr.StatusCode}
		}
		return se
	}

	var decodingErr *DecodingError
	if errors.As(err, &decodingErr) {
		return NewStructuredError(ErrDecoding, decodingErr.Error())
	}

	var unexpectedErr *UnexpectedResponseError
	if errors.As(err, &unexpectedErr) {
		se := NewStructuredError(ErrUnexpected, unexpectedErr.Error())
		se.Context = map[string]any{"status_code": unexpectedErr.StatusCode}
		return se
	}

	// Generic error - classify as unknown
	return NewStructuredError(ErrUnknown, err.Error())
}

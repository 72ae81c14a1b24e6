package api

import (
	"context"
	"net/url"
)

// PathResolver builds full request URLs from upstream endpoint IDs.
// Keeping it separate from execution lets tests exercise URL construction
// without a transport, and lets bindings depend on a minimal surface.
type PathResolver interface {
	// externalPath returns the full URL for an endpoint ID.
	// Example: externalPath("XIT002") -> "https://host/ex-api/external/XIT002"
	externalPath(id string) string
}

// HTTPExecutor performs authenticated GET requests. The upstream API is
// read-only, so this is the whole execution surface.
type HTTPExecutor interface {
	// get executes a GET with the given query and decodes the JSON
	// response into result. Errors come back already classified.
	get(ctx context.Context, url string, query url.Values, result any) error

	// getRaw executes a GET and returns the raw body, used for binary
	// vector tile responses.
	getRaw(ctx context.Context, url string, query url.Values) ([]byte, error)
}

// Requester combines PathResolver and HTTPExecutor; it is the interface the
// endpoint bindings depend on, and what transport mocks implement in tests.
type Requester interface {
	PathResolver
	HTTPExecutor
}

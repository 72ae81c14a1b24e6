package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/config"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

// HandleError processes an error and returns a user-friendly message with suggestions
func HandleError(err error) string {
	if err == nil {
		return ""
	}

	var msg strings.Builder

	var confErr *api.ConfigurationError
	var missingErr *api.MissingParameterError
	var invalidErr *api.InvalidParameterError
	var authErr *api.AuthenticationError
	var notFoundErr *api.NotFoundError
	var rateErr *api.RateLimitedError
	var upstreamErr *api.UpstreamError
	var decodingErr *api.DecodingError
	var unexpectedErr *api.UnexpectedResponseError
	var ambiguousErr *resolve.AmbiguousError

	switch {
	case errors.Is(err, config.ErrNotConfigured):
		msg.WriteString("No API key configured.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Run: reinfo auth login --api-key <key>\n")
		msg.WriteString("  - Or set REINFOLIB_API_KEY in the environment\n")
		msg.WriteString("  - Request a subscription key at https://www.reinfolib.mlit.go.jp\n")

	case errors.As(err, &ambiguousErr):
		fmt.Fprintf(&msg, "%s\n\n", ambiguousErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Use the exact name or the code of the intended match\n")

	case errors.As(err, &missingErr):
		fmt.Fprintf(&msg, "Missing parameter: %s\n\n", missingErr.Error())
		msg.WriteString("Suggestions:\n")
		fmt.Fprintf(&msg, "  - Supply %s for the %s endpoint\n", missingErr.Param, missingErr.Endpoint)
		fmt.Fprintf(&msg, "  - Run: reinfo schema show %s\n", missingErr.Endpoint)

	case errors.As(err, &invalidErr):
		fmt.Fprintf(&msg, "Invalid parameter: %s\n\n", invalidErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check the value against the endpoint's parameter list\n")
		fmt.Fprintf(&msg, "  - Run: reinfo schema show %s\n", invalidErr.Endpoint)

	case errors.As(err, &authErr):
		fmt.Fprintf(&msg, "Authentication failed (HTTP %d).\n\n", authErr.StatusCode)
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Verify the subscription key: reinfo auth status\n")
		msg.WriteString("  - Run: reinfo auth login --api-key <key>\n")
		msg.WriteString("  - The key may have expired; renew it on the portal\n")

	case errors.As(err, &notFoundErr):
		msg.WriteString("No data found.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Verify the area, period, and tile coordinates\n")
		msg.WriteString("  - Some layers have no coverage outside city planning areas\n")
		msg.WriteString("  - Run: reinfo schema list to see valid endpoints\n")

	case errors.As(err, &rateErr):
		msg.WriteString("Rate limit exceeded.\n\n")
		msg.WriteString("Suggestions:\n")
		if rateErr.RetryAfter > 0 {
			fmt.Fprintf(&msg, "  - The server asks to wait %s before retrying\n", rateErr.RetryAfter)
		} else {
			msg.WriteString("  - Wait a few seconds and retry\n")
		}
		msg.WriteString("  - Lower --concurrency when fetching tile grids\n")

	case errors.As(err, &upstreamErr):
		fmt.Fprintf(&msg, "Upstream error: %s\n\n", upstreamErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - The server or network failed; retry later\n")
		msg.WriteString("  - Check connectivity to www.reinfolib.mlit.go.jp\n")
		msg.WriteString("  - Use --debug to see the failing request\n")

	case errors.As(err, &decodingErr):
		fmt.Fprintf(&msg, "Response decoding failed: %s\n\n", decodingErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - The response did not match the documented shape\n")
		msg.WriteString("  - Retry; if it persists the API may have changed\n")

	case errors.As(err, &unexpectedErr):
		fmt.Fprintf(&msg, "Unexpected response (HTTP %d).\n\n", unexpectedErr.StatusCode)
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Inspect the response body with --debug\n")
		msg.WriteString("  - Check the portal for maintenance announcements\n")

	case errors.As(err, &confErr):
		fmt.Fprintf(&msg, "Configuration error: %s\n\n", confErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Run: reinfo auth login --api-key <key>\n")
		msg.WriteString("  - Check --base-url / REINFOLIB_BASE_URL\n")

	case strings.Contains(err.Error(), "connection refused"):
		msg.WriteString("Connection refused.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Verify the base URL: reinfo auth status\n")
		msg.WriteString("  - Check your network connection\n")

	case strings.Contains(err.Error(), "no such host"):
		msg.WriteString("DNS resolution failed.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check the base URL spelling\n")
		msg.WriteString("  - Verify your DNS settings\n")

	case strings.Contains(err.Error(), "certificate"):
		msg.WriteString("TLS certificate error.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Verify the server's SSL certificate\n")
		msg.WriteString("  - Ensure the base URL uses https://\n")

	default:
		fmt.Fprintf(&msg, "Error: %s\n", err.Error())
	}

	return msg.String()
}

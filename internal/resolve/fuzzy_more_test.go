package resolve_test

import (
	"strings"
	"testing"

	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

func TestAmbiguousErrorString(t *testing.T) {
	err := &resolve.AmbiguousError{
		Query: "港区",
		Matches: []resolve.Match{
			{Code: "13103", Name: "港区"},
			{Code: "27107", Name: "港区"},
		},
	}

	msg := err.Error()
	if !strings.Contains(msg, `ambiguous match for "港区"`) {
		t.Fatalf("missing query in error message: %q", msg)
	}
	if !strings.Contains(msg, "13103: 港区") || !strings.Contains(msg, "27107: 港区") {
		t.Fatalf("missing candidates in error message: %q", msg)
	}
}

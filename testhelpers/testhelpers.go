// Package testhelpers provides utilities for testing the pricing tool's
// handlers and commands.
package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"pricingtool/services"
)

// NewTestLedger creates a ledger backed by a file in a temporary directory.
// The file does not exist until the first append.
func NewTestLedger(t *testing.T) *services.Ledger {
	t.Helper()
	return services.NewLedger(filepath.Join(t.TempDir(), "project_data.csv"))
}

// SeedLedger appends the given records and fails the test on error.
func SeedLedger(t *testing.T, ledger *services.Ledger, records ...services.ProjectRecord) {
	t.Helper()

	for _, r := range records {
		if err := ledger.Append(r); err != nil {
			t.Fatalf("failed to seed ledger: %v", err)
		}
	}
}

// NewRequestEvent builds a RequestEvent for calling a handler directly.
// A non-nil form is sent url-encoded. htmx marks the request as coming from
// an HTMX swap.
func NewRequestEvent(method, target string, form url.Values, htmx bool) (*core.RequestEvent, *httptest.ResponseRecorder) {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e, rec
}

// ToastFromHeader decodes the showToast payload of an HX-Trigger header.
// It returns nil when no toast was set.
func ToastFromHeader(t *testing.T, header http.Header) map[string]string {
	t.Helper()

	trigger := header.Get("HX-Trigger")
	if trigger == "" {
		return nil
	}
	var parsed map[string]map[string]string
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	return parsed["showToast"]
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

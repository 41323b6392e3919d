package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"pricingtool/testhelpers"
)

// call runs h against a fresh request event and fails the test if the
// handler returns an error.
func call(t *testing.T, h func(*core.RequestEvent) error, method, target string, form url.Values, htmx bool) *testResponse {
	t.Helper()

	e, rec := testhelpers.NewRequestEvent(method, target, form, htmx)
	if err := h(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return &testResponse{
		Code:   rec.Code,
		Header: rec.Header(),
		Body:   rec.Body.String(),
		Toast:  testhelpers.ToastFromHeader(t, rec.Header()),
	}
}

type testResponse struct {
	Code   int
	Header http.Header
	Body   string
	Toast  map[string]string
}

package handlers

import (
	"net/http"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pricingtool/logging"
	"pricingtool/testhelpers"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	prev := logging.Logger
	core, logs := observer.New(zapcore.DebugLevel)
	logging.UseLogger(zap.New(core))
	t.Cleanup(func() { logging.UseLogger(prev) })
	return logs
}

func TestRequestLogMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantLevel zapcore.Level
	}{
		{"page", "/history", zapcore.InfoLevel},
		{"static asset", "/static/app.css", zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)
			e, _ := testhelpers.NewRequestEvent(http.MethodGet, tt.path, nil, true)

			if err := RequestLogMiddleware()(e); err != nil {
				t.Fatalf("middleware returned error: %v", err)
			}

			entries := logs.FilterMessage("request").All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 log entry, got %d", len(entries))
			}
			entry := entries[0]
			if entry.Level != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry.Level, tt.wantLevel)
			}
			fields := entry.ContextMap()
			if fields["path"] != tt.path || fields["method"] != http.MethodGet || fields["htmx"] != true {
				t.Errorf("unexpected fields %v", fields)
			}
		})
	}
}

func TestIsStaticPath(t *testing.T) {
	tests := map[string]bool{
		"/static/toast.js": true,
		"/static":          false,
		"/history":         false,
		"/":                false,
	}
	for path, want := range tests {
		if got := isStaticPath(path); got != want {
			t.Errorf("isStaticPath(%q) = %v, want %v", path, got, want)
		}
	}
}

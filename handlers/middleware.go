package handlers

import (
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"pricingtool/logging"
)

// RequestLogMiddleware logs every request with its outcome and duration.
// Static assets are logged at debug level only.
func RequestLogMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		start := time.Now()
		err := e.Next()

		fields := []zap.Field{
			zap.String("method", e.Request.Method),
			zap.String("path", e.Request.URL.Path),
			zap.Bool("htmx", e.Request.Header.Get("HX-Request") == "true"),
			zap.Duration("took", time.Since(start)),
		}
		switch {
		case err != nil:
			logging.Warn("request failed", append(fields, zap.Error(err))...)
		case isStaticPath(e.Request.URL.Path):
			logging.Debug("request", fields...)
		default:
			logging.Info("request", fields...)
		}
		return err
	}
}

func isStaticPath(path string) bool {
	return strings.HasPrefix(path, "/static/")
}

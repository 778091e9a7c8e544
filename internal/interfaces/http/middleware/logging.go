// Package middleware provides HTTP middleware for the triage API.
package middleware

import (
	"net/http"
	"time"

	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
)

// HTTPMetricsRecorder receives per-request observations.  The monitoring
// package's Metrics satisfies it.
type HTTPMetricsRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// LoggingConfig tunes the request logging middleware.
type LoggingConfig struct {
	// SkipPaths are not logged (health probes, metrics scrapes).
	SkipPaths []string
	// SlowThreshold marks requests logged at Warn level.
	SlowThreshold time.Duration
}

// DefaultLoggingConfig skips probe paths and flags requests over 3s as slow.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		SkipPaths:     []string{"/healthz", "/readyz", "/metrics"},
		SlowThreshold: 3 * time.Second,
	}
}

// statusWriter captures the response status code and byte count.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// RequestLogging returns middleware that logs every request with method,
// path, status, duration, and size, and feeds the metrics recorder when one
// is supplied.
func RequestLogging(logger logging.Logger, metrics HTTPMetricsRecorder, config LoggingConfig) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			if metrics != nil {
				metrics.RecordHTTPRequest(r.Method, r.URL.Path, sw.status, duration)
			}

			fields := []logging.Field{
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", sw.status),
				logging.Float64("duration_ms", float64(duration.Nanoseconds())/1e6),
				logging.Int("bytes", int(sw.bytes)),
				logging.String("remote_addr", r.RemoteAddr),
			}

			switch {
			case sw.status >= 500:
				logger.Error("request completed with server error", fields...)
			case sw.status >= 400:
				logger.Warn("request completed with client error", fields...)
			case config.SlowThreshold > 0 && duration >= config.SlowThreshold:
				logger.Warn("request completed (slow)", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		})
	}
}

package interceptors

import (
	"log/slog"
	"net/http"
	"time"
)

// NewLoggingTransport wraps an http.RoundTripper with structured
// request/response logging, including payload size tracking.
func NewLoggingTransport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestSize := req.ContentLength
	if requestSize < 0 {
		requestSize = 0
	}

	t.logger.Info("request started", appendLoggerFields(req,
		"method", req.Method,
		"path", req.URL.Path,
		"host", req.URL.Host,
		"request_size_bytes", requestSize,
	)...)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error("request failed", appendLoggerFields(req,
			"method", req.Method,
			"path", req.URL.Path,
			"duration", duration.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)...)
		return resp, err
	}

	responseSize := int64(0)
	if resp.ContentLength > 0 {
		responseSize = resp.ContentLength
	}

	t.logger.Info("request completed", appendLoggerFields(req,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", duration.String(),
		"duration_ms", duration.Milliseconds(),
		"request_size_bytes", requestSize,
		"response_size_bytes", responseSize,
	)...)

	return resp, nil
}

func appendLoggerFields(req *http.Request, base ...any) []any {
	if requestID := req.Header.Get(requestIDHeader); requestID != "" {
		base = append(base, "request_id", requestID)
	}
	return base
}

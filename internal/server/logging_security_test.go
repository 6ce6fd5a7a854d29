package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the default logger into a buffer for the duration of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsOperatorKey(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
	}{
		{name: "api key header", header: HeaderAPIKey, value: "operator-secret-123"},
		{name: "bearer token", header: HeaderAuthorization, value: "Bearer operator-secret-123"},
		{name: "non-canonical header name", header: "x-api-key", value: "operator-secret-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusAccepted)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/draw/start", nil)
			req.Header[tt.header] = []string{tt.value}
			req.Header.Set("User-Agent", "kiosk-console")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			require.Contains(t, out, LogMsgRequestHeaders)
			assert.NotContains(t, out, "operator-secret-123")
			assert.Contains(t, out, RedactedValue)
			assert.Contains(t, out, "kiosk-console")
			assert.Contains(t, out, "status=202")
			assert.Contains(t, out, "request_id=")
		})
	}
}

func TestLoggingMiddleware_QuietPaths(t *testing.T) {
	for _, path := range QuietPaths {
		t.Run(path, func(t *testing.T) {
			buf := captureLogs(t)
			handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, buf.String())
		})
	}
}

func TestLoggingMiddleware_PassesFlushThrough(t *testing.T) {
	captureLogs(t)
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok, "event stream needs a flusher")
		_, _ = w.Write([]byte(": keepalive\n\n"))
		flusher.Flush()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))

	assert.True(t, rec.Flushed)
	assert.Equal(t, ": keepalive\n\n", rec.Body.String())
}

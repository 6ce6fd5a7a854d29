package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperatorAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewSuspiciousActivityDetector()
	middleware := OperatorAuthMiddleware(apiKey, nil, detector)

	tests := []struct {
		name           string
		header         string
		value          string
		expectedStatus int
	}{
		{name: "valid api key header", header: HeaderAPIKey, value: apiKey, expectedStatus: http.StatusOK},
		{name: "valid bearer token", header: HeaderAuthorization, value: "Bearer " + apiKey, expectedStatus: http.StatusOK},
		{name: "wrong key", header: HeaderAPIKey, value: "wrong-key", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: HeaderAuthorization, value: "Basic " + apiKey, expectedStatus: http.StatusUnauthorized},
		{name: "missing key", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/draw/start", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	detector.mu.Lock()
	failed := detector.failedAuthByIP["192.0.2.1"]
	detector.mu.Unlock()
	assert.Equal(t, 3, failed, "httptest requests come from 192.0.2.1")
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{name: "direct", remote: "203.0.113.5:4000", want: "203.0.113.5"},
		{name: "untrusted forwarder ignored", remote: "203.0.113.5:4000", forwarded: "198.51.100.1", want: "203.0.113.5"},
		{name: "trusted proxy", remote: "10.0.0.1:4000", forwarded: "198.51.100.1, 198.51.100.2", trusted: []string{"10.0.0.1"}, want: "198.51.100.2"},
		{name: "unparseable remote", remote: "garbage", want: "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	now := time.Now()
	detector := NewSuspiciousActivityDetector()
	detector.now = func() time.Time { return now }

	for i := 0; i < RateLimitPerWindow; i++ {
		assert.True(t, detector.RecordRequest("1.2.3.4"))
	}
	assert.False(t, detector.RecordRequest("1.2.3.4"))

	now = now.Add(RateWindow + time.Second)
	assert.True(t, detector.RecordRequest("1.2.3.4"), "a new window starts with a clean count")
}

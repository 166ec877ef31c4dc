package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"", "root"},
		{"/", "root"},
		{"/healthz", "/healthz"},
		{"/v1/push-tokens/550e8400-e29b-41d4-a716-446655440000", "/v1/push-tokens/_id"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeEndpoint(tt.path))
	}
}

func TestMetricsMiddlewarePreservesResponse(t *testing.T) {
	ResetMetricsForTesting()

	handler := MetricsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/v1/push-tokens", nil))

	require.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}

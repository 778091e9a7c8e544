package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyChecker(name string) HealthChecker {
	return CheckerFunc{ComponentName: name, Fn: func(context.Context) error { return nil }}
}

func unhealthyChecker(name string) HealthChecker {
	return CheckerFunc{ComponentName: name, Fn: func(context.Context) error {
		return fmt.Errorf("%s unreachable", name)
	}}
}

func TestLiveness(t *testing.T) {
	h := NewHealthHandler("1.0.0")

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alive", got["status"])
	assert.Equal(t, "1.0.0", got["version"])
}

func TestReadiness_AllHealthy(t *testing.T) {
	h := NewHealthHandler("1.0.0", healthyChecker("postgres"), healthyChecker("model"))

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ready", got.Status)
	assert.Len(t, got.Components, 2)
}

func TestReadiness_OneUnhealthy(t *testing.T) {
	h := NewHealthHandler("1.0.0", healthyChecker("postgres"), unhealthyChecker("model"))

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var got readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "not_ready", got.Status)
	assert.Equal(t, "unhealthy", got.Components["model"].Status)
	assert.Equal(t, "healthy", got.Components["postgres"].Status)
}

func TestReadiness_NoCheckers(t *testing.T) {
	h := NewHealthHandler("1.0.0")

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/BioTriage/internal/application/triage"
	"github.com/turtacn/BioTriage/internal/domain/candidate"
	"github.com/turtacn/BioTriage/internal/infrastructure/monitoring"
	"github.com/turtacn/BioTriage/internal/intelligence/narrative"
	"github.com/turtacn/BioTriage/internal/interfaces/http/handlers"
	"github.com/turtacn/BioTriage/internal/interfaces/http/middleware"
)

type stubService struct {
	progress triage.Progress
}

func (s *stubService) AnalyzeManual(context.Context, string, string) (*candidate.Result, error) {
	r := candidate.NewResult("Aspirin", "CC(=O)Oc1ccccc1C(=O)O", 8.0)
	return &r, nil
}

func (s *stubService) AnalyzeAuto(context.Context, string) (*triage.ScanReport, error) {
	return &triage.ScanReport{Results: []candidate.Result{}, ScanTime: 0.1}, nil
}

func (s *stubService) AnalyzeUpload(context.Context, string, string, io.Reader) (*triage.ScanReport, error) {
	return &triage.ScanReport{Results: []candidate.Result{}, ScanTime: 0.1}, nil
}

func (s *stubService) Chat(context.Context, *narrative.ChatRequest) string { return "answer" }

func (s *stubService) Optimize(context.Context, *narrative.OptimizeRequest) *narrative.Optimization {
	return &narrative.Optimization{}
}

func (s *stubService) Progress() triage.Progress { return s.progress }

func newTestRouter() http.Handler {
	metrics := monitoring.NewMetrics()
	return NewRouter(RouterConfig{
		TriageHandler:  handlers.NewTriageHandler(&stubService{progress: triage.Progress{Total: 1, Status: "Idle"}}, 0, nil),
		HealthHandler:  handlers.NewHealthHandler("test"),
		MetricsHandler: metrics.Handler(),
		Metrics:        metrics,
		CORS:           middleware.DefaultCORSConfig(),
		Logging:        middleware.DefaultLoggingConfig(),
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/progress", http.StatusOK},
		{http.MethodGet, "/api/v1/analyze", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_ProgressPayload(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got triage.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Idle", got.Status)
}

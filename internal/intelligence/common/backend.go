package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ---------------------------------------------------------------------------
// HTTP model backend
// ---------------------------------------------------------------------------

// HTTPBackendConfig configures an HTTP model-serving backend.
type HTTPBackendConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	TimeoutMs int64  `json:"timeout_ms" yaml:"timeout_ms"`
}

// httpBackend implements ModelBackend against a plain HTTP serving endpoint
// (POST /predict, GET /health).
type httpBackend struct {
	endpoint string
	client   *http.Client
}

// NewHTTPBackend creates a ModelBackend speaking JSON over HTTP.
func NewHTTPBackend(cfg HTTPBackendConfig) (ModelBackend, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("serving endpoint is required")
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpBackend{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

func (b *httpBackend) Predict(ctx context.Context, req *PredictRequest) (*PredictResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding predict request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("predict call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("predict call failed: HTTP %d: %s", resp.StatusCode, string(raw))
	}

	out := &PredictResponse{}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decoding predict response: %w", err)
	}
	if out.InferenceTimeMs == 0 {
		out.InferenceTimeMs = time.Since(start).Milliseconds()
	}
	return out, nil
}

func (b *httpBackend) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend unhealthy: HTTP %d", resp.StatusCode)
	}
	return nil
}

func (b *httpBackend) Close() error {
	b.client.CloseIdleConnections()
	return nil
}

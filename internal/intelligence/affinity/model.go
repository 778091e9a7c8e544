// Package affinity wraps the binding-affinity regression model: lifecycle
// management, batched inference, and score post-processing.
package affinity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/turtacn/BioTriage/internal/intelligence/common"
	"github.com/turtacn/BioTriage/pkg/errors"
)

// ---------------------------------------------------------------------------
// Model configuration
// ---------------------------------------------------------------------------

// ModelConfig holds all configuration for the affinity model.
type ModelConfig struct {
	ModelID         string `json:"model_id" yaml:"model_id"`
	ModelVersion    string `json:"model_version" yaml:"model_version"`
	ServingEndpoint string `json:"serving_endpoint" yaml:"serving_endpoint"`
	BatchSize       int    `json:"batch_size" yaml:"batch_size"`
	TimeoutMs       int64  `json:"timeout_ms" yaml:"timeout_ms"`
	WarmupOnLoad    bool   `json:"warmup_on_load" yaml:"warmup_on_load"`
}

// DefaultModelConfig returns a sensible default configuration.
func DefaultModelConfig() *ModelConfig {
	return &ModelConfig{
		ModelID:         "affinity-gnn-v4",
		ModelVersion:    "4.0.0",
		ServingEndpoint: "localhost:8501",
		BatchSize:       64,
		TimeoutMs:       5000,
		WarmupOnLoad:    true,
	}
}

// Validate checks the configuration for consistency.
func (c *ModelConfig) Validate() error {
	if c.ModelID == "" {
		return errors.InvalidParam("model_id is required")
	}
	if c.BatchSize <= 0 {
		return errors.InvalidParam("batch_size must be positive")
	}
	if c.TimeoutMs < 0 {
		return errors.InvalidParam("timeout_ms must not be negative")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Model lifecycle
// ---------------------------------------------------------------------------

// ModelState represents the current state of the affinity model.
type ModelState int

const (
	ModelStateUnloaded ModelState = iota
	ModelStateLoading
	ModelStateReady
	ModelStateError
	ModelStateUnloading
)

func (s ModelState) String() string {
	switch s {
	case ModelStateUnloaded:
		return "UNLOADED"
	case ModelStateLoading:
		return "LOADING"
	case ModelStateReady:
		return "READY"
	case ModelStateError:
		return "ERROR"
	case ModelStateUnloading:
		return "UNLOADING"
	default:
		return "UNKNOWN"
	}
}

// ModelManager manages the lifecycle of the affinity model backend.
type ModelManager struct {
	config  *ModelConfig
	backend common.ModelBackend
	state   ModelState
	logger  common.Logger
	metrics common.IntelligenceMetrics
	mu      sync.RWMutex
	loadErr error
}

// NewModelManager creates a new model manager.
func NewModelManager(
	config *ModelConfig,
	backend common.ModelBackend,
	logger common.Logger,
	metrics common.IntelligenceMetrics,
) (*ModelManager, error) {
	if config == nil {
		return nil, errors.InvalidParam("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, errors.InvalidParam("backend is required")
	}
	if logger == nil {
		logger = common.NewNoopLogger()
	}
	if metrics == nil {
		metrics = common.NewNoopIntelligenceMetrics()
	}
	return &ModelManager{
		config:  config,
		backend: backend,
		state:   ModelStateUnloaded,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Load initializes the model backend and optionally warms up.
func (m *ModelManager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == ModelStateReady {
		return nil
	}
	m.state = ModelStateLoading
	start := time.Now()

	if err := m.backend.Healthy(ctx); err != nil {
		m.state = ModelStateError
		m.loadErr = err
		m.metrics.RecordModelLoad(ctx, m.config.ModelID, m.config.ModelVersion, float64(time.Since(start).Milliseconds()), false)
		return fmt.Errorf("backend health check failed: %w", err)
	}

	if m.config.WarmupOnLoad {
		if err := m.warmup(ctx); err != nil {
			m.logger.Warn("warmup failed, proceeding anyway", "error", err)
		}
	}

	m.state = ModelStateReady
	m.loadErr = nil
	elapsed := float64(time.Since(start).Milliseconds())
	m.metrics.RecordModelLoad(ctx, m.config.ModelID, m.config.ModelVersion, elapsed, true)
	m.logger.Info("affinity model loaded", "model_id", m.config.ModelID, "duration_ms", elapsed)
	return nil
}

// Unload tears down the model backend.
func (m *ModelManager) Unload(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == ModelStateUnloaded {
		return nil
	}
	m.state = ModelStateUnloading
	if err := m.backend.Close(); err != nil {
		m.state = ModelStateError
		return fmt.Errorf("backend close failed: %w", err)
	}
	m.state = ModelStateUnloaded
	m.logger.Info("affinity model unloaded", "model_id", m.config.ModelID)
	return nil
}

// State returns the current model state.
func (m *ModelManager) State() ModelState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Ready reports whether the model can serve inference.
func (m *ModelManager) Ready() bool {
	return m.State() == ModelStateReady
}

// Config returns the model configuration.
func (m *ModelManager) Config() *ModelConfig {
	return m.config
}

// LastError returns the last load error, if any.
func (m *ModelManager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadErr
}

func (m *ModelManager) warmup(ctx context.Context) error {
	// A single-methane pair graph is enough to page the weights in.
	req := &common.PredictRequest{
		ModelName:   m.config.ModelID,
		InputData:   []byte(`{"graphs":[{"smiles":"C","node_features":[[1]],"edge_index":[],"num_atoms":1}]}`),
		InputFormat: common.FormatJSON,
	}
	_, err := m.backend.Predict(ctx, req)
	return err
}

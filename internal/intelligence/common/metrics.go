package common

import "context"

// ---------------------------------------------------------------------------
// Metrics interface
// ---------------------------------------------------------------------------

// InferenceMetricParams carries the observable dimensions of one inference call.
type InferenceMetricParams struct {
	ModelName    string
	ModelVersion string
	TaskType     string
	DurationMs   float64
	Success      bool
	BatchSize    int
}

// IntelligenceMetrics records model-serving observability signals.  A Prometheus
// implementation lives in the monitoring package; this interface keeps the
// intelligence layer free of a hard dependency on it.
type IntelligenceMetrics interface {
	RecordInference(ctx context.Context, params *InferenceMetricParams)
	RecordModelLoad(ctx context.Context, modelName, modelVersion string, durationMs float64, success bool)
	RecordNarrativeCall(ctx context.Context, model string, durationMs float64, success bool)
}

type noopIntelligenceMetrics struct{}

func (n *noopIntelligenceMetrics) RecordInference(context.Context, *InferenceMetricParams) {}
func (n *noopIntelligenceMetrics) RecordModelLoad(context.Context, string, string, float64, bool) {
}
func (n *noopIntelligenceMetrics) RecordNarrativeCall(context.Context, string, float64, bool) {}

// NewNoopIntelligenceMetrics returns an IntelligenceMetrics that records nothing.
func NewNoopIntelligenceMetrics() IntelligenceMetrics {
	return &noopIntelligenceMetrics{}
}

package affinity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/turtacn/BioTriage/internal/intelligence/chemistry"
	"github.com/turtacn/BioTriage/internal/intelligence/common"
	"github.com/turtacn/BioTriage/pkg/errors"
)

// ---------------------------------------------------------------------------
// Batch scorer
// ---------------------------------------------------------------------------

// scoresOutputKey is the backend output tensor holding per-graph scores.
const scoresOutputKey = "scores"

// BatchScorer runs batched affinity inference over featurized pair graphs.
//
// Scoring is resilient by construction: a failed inference call poisons only
// its own batch, whose members receive the raw fallback score (which the
// clamp later lifts to the score floor).  Output order always matches input
// order, and every input graph receives exactly one score.
type BatchScorer struct {
	manager *ModelManager
	logger  common.Logger
	metrics common.IntelligenceMetrics
}

// NewBatchScorer creates a scorer bound to a managed model.
func NewBatchScorer(manager *ModelManager, logger common.Logger, metrics common.IntelligenceMetrics) (*BatchScorer, error) {
	if manager == nil {
		return nil, errors.InvalidParam("model manager is required")
	}
	if logger == nil {
		logger = common.NewNoopLogger()
	}
	if metrics == nil {
		metrics = common.NewNoopIntelligenceMetrics()
	}
	return &BatchScorer{manager: manager, logger: logger, metrics: metrics}, nil
}

// Score runs inference over graphs in batches and returns one final
// (clamped, rounded) score per graph, in input order.
func (s *BatchScorer) Score(ctx context.Context, graphs []*chemistry.PairGraph) ([]float64, error) {
	if len(graphs) == 0 {
		return []float64{}, nil
	}
	if !s.manager.Ready() {
		return nil, errors.New(errors.ErrCodeModelNotLoaded, "affinity model is not loaded")
	}

	batchSize := s.manager.Config().BatchSize
	raw := make([]float64, 0, len(graphs))

	for start := 0; start < len(graphs); start += batchSize {
		end := start + batchSize
		if end > len(graphs) {
			end = len(graphs)
		}
		raw = append(raw, s.scoreBatch(ctx, graphs[start:end])...)
	}

	return FinalizeScores(raw), nil
}

// scoreBatch scores one batch, substituting the fallback raw score for every
// member when the backend call fails or returns a malformed tensor.
func (s *BatchScorer) scoreBatch(ctx context.Context, batch []*chemistry.PairGraph) []float64 {
	cfg := s.manager.Config()
	start := time.Now()

	scores, err := s.predict(ctx, batch)
	elapsed := float64(time.Since(start).Milliseconds())

	if err != nil {
		s.logger.Warn("batch inference failed, applying fallback scores",
			"batch_size", len(batch), "error", err)
		s.metrics.RecordInference(ctx, &common.InferenceMetricParams{
			ModelName:    cfg.ModelID,
			ModelVersion: cfg.ModelVersion,
			TaskType:     "affinity_batch",
			DurationMs:   elapsed,
			Success:      false,
			BatchSize:    len(batch),
		})
		fallback := make([]float64, len(batch))
		for i := range fallback {
			fallback[i] = failedBatchRawScore
		}
		return fallback
	}

	s.metrics.RecordInference(ctx, &common.InferenceMetricParams{
		ModelName:    cfg.ModelID,
		ModelVersion: cfg.ModelVersion,
		TaskType:     "affinity_batch",
		DurationMs:   elapsed,
		Success:      true,
		BatchSize:    len(batch),
	})
	return scores
}

func (s *BatchScorer) predict(ctx context.Context, batch []*chemistry.PairGraph) ([]float64, error) {
	cfg := s.manager.Config()

	payload, err := json.Marshal(map[string]interface{}{"graphs": batch})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "encoding batch")
	}

	resp, err := s.manager.backend.Predict(ctx, &common.PredictRequest{
		ModelName:    cfg.ModelID,
		ModelVersion: cfg.ModelVersion,
		InputData:    payload,
		InputFormat:  common.FormatJSON,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInferenceFailed, "backend predict failed")
	}

	scores, err := common.DecodeFloat64Vector(resp.Outputs[scoresOutputKey])
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "decoding scores tensor")
	}
	if len(scores) != len(batch) {
		return nil, errors.Newf(errors.ErrCodeInferenceFailed,
			"score tensor length %d does not match batch size %d", len(scores), len(batch))
	}
	return scores, nil
}

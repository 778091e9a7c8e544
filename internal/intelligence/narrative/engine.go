package narrative

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
	"github.com/turtacn/BioTriage/internal/intelligence/common"
)

// ---------------------------------------------------------------------------
// Sentinels
// ---------------------------------------------------------------------------

// OfflineSentinel is returned verbatim whenever narrative generation is
// requested but no model client is configured.
const OfflineSentinel = "AI Brain is offline. API Key Missing."

// OverloadSentinel is returned when every model in the fallback chain failed.
const OverloadSentinel = "System Overload: Could not connect to any AI model. Please check Internet or API Key."

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Config tunes the narrative engine.
type Config struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Models  []string `json:"models" yaml:"models"`
}

// Engine generates narratives with automatic model fallback: the last model
// that answered successfully is tried first on subsequent calls, and the rest
// of the configured chain backs it up.
type Engine struct {
	client  ModelClient
	config  Config
	logger  common.Logger
	metrics common.IntelligenceMetrics

	mu          sync.Mutex
	activeModel string
}

// NewEngine creates a narrative engine.  A nil client or a disabled config
// yields an engine that answers every request with OfflineSentinel-derived
// records rather than failing.
func NewEngine(client ModelClient, config Config, logger common.Logger, metrics common.IntelligenceMetrics) *Engine {
	if logger == nil {
		logger = common.NewNoopLogger()
	}
	if metrics == nil {
		metrics = common.NewNoopIntelligenceMetrics()
	}
	e := &Engine{
		client:  client,
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
	if len(config.Models) > 0 {
		e.activeModel = config.Models[0]
	}
	return e
}

// Online reports whether the engine has a usable model client.
func (e *Engine) Online() bool {
	return e.config.Enabled && e.client != nil
}

// Explain produces a structured scientific narrative for a scored candidate.
// It never returns an error: offline and malformed responses both degrade to
// well-formed records.
func (e *Engine) Explain(ctx context.Context, req *ExplainRequest) *candidate.Explanation {
	return parseExplanation(e.getResponse(ctx, buildExplainPrompt(req)))
}

// Chat answers a free-form question grounded in a candidate's context.
func (e *Engine) Chat(ctx context.Context, req *ChatRequest) string {
	return e.getResponse(ctx, buildChatPrompt(req))
}

// Optimize proposes a structural modification for a candidate.
func (e *Engine) Optimize(ctx context.Context, req *OptimizeRequest) *Optimization {
	return parseOptimization(e.getResponse(ctx, buildOptimizePrompt(req)))
}

// getResponse walks the model fallback chain and returns the first successful
// generation, or OverloadSentinel when the whole chain is exhausted.
func (e *Engine) getResponse(ctx context.Context, prompt string) string {
	if !e.Online() {
		return OfflineSentinel
	}

	for _, model := range e.candidateModels() {
		start := time.Now()
		text, err := e.client.Generate(ctx, model, prompt)
		elapsed := float64(time.Since(start).Milliseconds())
		if err == nil {
			e.metrics.RecordNarrativeCall(ctx, model, elapsed, true)
			e.promote(model)
			return text
		}
		e.metrics.RecordNarrativeCall(ctx, model, elapsed, false)
		if isModelMissing(err) {
			continue
		}
		e.logger.Warn("narrative model call failed, trying next", "model", model, "error", err)
	}

	return OverloadSentinel
}

// candidateModels returns the fallback chain with the active model first and
// duplicates removed.
func (e *Engine) candidateModels() []string {
	e.mu.Lock()
	active := e.activeModel
	e.mu.Unlock()

	ordered := make([]string, 0, len(e.config.Models)+1)
	if active != "" {
		ordered = append(ordered, active)
	}
	ordered = append(ordered, e.config.Models...)

	seen := make(map[string]struct{}, len(ordered))
	unique := ordered[:0]
	for _, m := range ordered {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}

func (e *Engine) promote(model string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if model != e.activeModel {
		e.logger.Info("switched narrative model", "model", model)
		e.activeModel = model
	}
}

func isModelMissing(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}

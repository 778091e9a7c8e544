package triage

import (
	"context"
	"io"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
	"github.com/turtacn/BioTriage/internal/intelligence/affinity"
	"github.com/turtacn/BioTriage/internal/intelligence/chemistry"
	"github.com/turtacn/BioTriage/internal/intelligence/narrative"
	"github.com/turtacn/BioTriage/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Collaborator contracts
// ─────────────────────────────────────────────────────────────────────────────

// CatalogStore lists the approved-drug catalog used by catalog scans.
type CatalogStore interface {
	ListDrugs(ctx context.Context) ([]candidate.Candidate, error)
}

// AffinityScorer scores featurized pair graphs, one final score per graph in
// input order.
type AffinityScorer interface {
	Score(ctx context.Context, graphs []*chemistry.PairGraph) ([]float64, error)
}

// Narrator produces LLM narratives for scored candidates.
type Narrator interface {
	Explain(ctx context.Context, req *narrative.ExplainRequest) *candidate.Explanation
	Chat(ctx context.Context, req *narrative.ChatRequest) string
	Optimize(ctx context.Context, req *narrative.OptimizeRequest) *narrative.Optimization
}

// ScanMetrics records completed and failed scans.  The monitoring package's
// Metrics satisfies it.
type ScanMetrics interface {
	RecordScan(mode, outcome string, seconds float64)
}

type noopScanMetrics struct{}

func (noopScanMetrics) RecordScan(string, string, float64) {}

// Scan mode and outcome labels.
const (
	scanModeManual = "manual"
	scanModeAuto   = "auto"
	scanModeUpload = "upload"

	scanOutcomeOK    = "ok"
	scanOutcomeError = "error"
)

// ─────────────────────────────────────────────────────────────────────────────
// Service
// ─────────────────────────────────────────────────────────────────────────────

// Config tunes pipeline behaviour.
type Config struct {
	// ProgressStrideAuto is how many catalog candidates are processed between
	// progress updates during a catalog scan.
	ProgressStrideAuto int
	// ProgressStrideUpload is the update stride for uploaded files.
	ProgressStrideUpload int
	// AutoEnrichment enables ADMET/pharmacophore enrichment of active hits in
	// catalog scans.  Off by default: catalog scans stay lean.
	AutoEnrichment bool
}

// ScanReport is the bulk-scan response payload: results sorted by descending
// score plus the wall-clock scan duration in seconds (two decimals).
type ScanReport struct {
	Results  []candidate.Result `json:"results"`
	ScanTime float64            `json:"scan_time"`
}

// Service orchestrates the triage pipeline across its collaborators.
type Service struct {
	structures chemistry.StructureResolver
	targets    chemistry.TargetResolver
	featurizer chemistry.Featurizer
	admet      chemistry.ADMETCalculator
	pharma     chemistry.PharmacophoreDetector
	catalog    CatalogStore
	scorer     AffinityScorer
	narrator   Narrator
	progress   *ProgressTracker
	config     Config
	logger     logging.Logger
	metrics    ScanMetrics
	now        func() time.Time
}

// Deps bundles the service's collaborators.
type Deps struct {
	Structures chemistry.StructureResolver
	Targets    chemistry.TargetResolver
	Featurizer chemistry.Featurizer
	ADMET      chemistry.ADMETCalculator
	Pharma     chemistry.PharmacophoreDetector
	Catalog    CatalogStore
	Scorer     AffinityScorer
	Narrator   Narrator
	Progress   *ProgressTracker
	Logger     logging.Logger
	Metrics    ScanMetrics
}

// NewService creates the triage orchestrator.
func NewService(deps Deps, config Config) (*Service, error) {
	switch {
	case deps.Structures == nil:
		return nil, errors.InvalidParam("structure resolver is required")
	case deps.Targets == nil:
		return nil, errors.InvalidParam("target resolver is required")
	case deps.Featurizer == nil:
		return nil, errors.InvalidParam("featurizer is required")
	case deps.Scorer == nil:
		return nil, errors.InvalidParam("scorer is required")
	case deps.Narrator == nil:
		return nil, errors.InvalidParam("narrator is required")
	}
	if deps.Progress == nil {
		deps.Progress = NewProgressTracker()
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNopLogger()
	}
	if deps.Metrics == nil {
		deps.Metrics = noopScanMetrics{}
	}
	if config.ProgressStrideAuto <= 0 {
		config.ProgressStrideAuto = 50
	}
	if config.ProgressStrideUpload <= 0 {
		config.ProgressStrideUpload = 10
	}
	return &Service{
		structures: deps.Structures,
		targets:    deps.Targets,
		featurizer: deps.Featurizer,
		admet:      deps.ADMET,
		pharma:     deps.Pharma,
		catalog:    deps.Catalog,
		scorer:     deps.Scorer,
		narrator:   deps.Narrator,
		progress:   deps.Progress,
		config:     config,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		now:        time.Now,
	}, nil
}

// Progress returns a snapshot of the running scan.
func (s *Service) Progress() Progress {
	return s.progress.Snapshot()
}

// ─────────────────────────────────────────────────────────────────────────────
// Manual mode
// ─────────────────────────────────────────────────────────────────────────────

// AnalyzeManual scores a single user-supplied candidate (name or raw SMILES)
// against a target and returns a fully enriched result.
func (s *Service) AnalyzeManual(ctx context.Context, targetID, input string) (*candidate.Result, error) {
	s.progress.Reset(StatusValidating)
	start := s.now()

	seq, err := s.resolveTarget(ctx, targetID)
	if err != nil {
		s.metrics.RecordScan(scanModeManual, scanOutcomeError, 0)
		return nil, errors.Newf(errors.ErrCodeTargetUnresolved, "Invalid Target ID '%s'", targetID)
	}

	s.progress.SetStatus(StatusProcessing)
	if input == "" {
		s.metrics.RecordScan(scanModeManual, scanOutcomeError, 0)
		return nil, errors.New(errors.ErrCodeBadRequest, "Input is missing!")
	}

	resolved, err := s.structures.Resolve(ctx, input)
	if err != nil || !resolved.IsResolved {
		s.metrics.RecordScan(scanModeManual, scanOutcomeError, 0)
		return nil, errors.Newf(errors.ErrCodeStructureUnresolved, "Could not find structure for '%s'.", input)
	}

	name := candidate.DisplayName(chemistry.NormalizeInput(input), resolved.CanonicalSMILES, s.now())
	score := s.scoreSingle(ctx, resolved.CanonicalSMILES, seq)

	result := candidate.NewResult(name, resolved.CanonicalSMILES, score)
	s.enrich(ctx, &result)
	result.AIExplanation = s.narrator.Explain(ctx, &narrative.ExplainRequest{
		Name:        result.Name,
		SMILES:      result.SMILES,
		TargetID:    targetID,
		Score:       result.Score,
		ADMET:       result.ADMET,
		ActiveSites: result.ActiveSites,
	})

	s.progress.SetCurrent(1)
	s.progress.SetStatus(StatusDone)
	s.metrics.RecordScan(scanModeManual, scanOutcomeOK, elapsedSeconds(start, s.now()))
	return &result, nil
}

// scoreSingle runs one candidate through featurization and inference.  Any
// failure collapses to the score floor rather than aborting the analysis.
func (s *Service) scoreSingle(ctx context.Context, smiles, targetSeq string) float64 {
	graph, err := s.featurizer.Featurize(ctx, smiles, targetSeq)
	if err != nil {
		s.logger.Warn("featurization failed for manual candidate",
			logging.String("smiles", smiles), logging.Err(err))
		return affinity.ScoreFloor
	}

	scores, err := s.scorer.Score(ctx, []*chemistry.PairGraph{graph})
	if err != nil || len(scores) != 1 {
		s.logger.Warn("inference failed for manual candidate",
			logging.String("smiles", smiles), logging.Err(err))
		return affinity.ScoreFloor
	}
	return scores[0]
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog scan (auto mode)
// ─────────────────────────────────────────────────────────────────────────────

// AnalyzeAuto scores the entire drug catalog against a target.
func (s *Service) AnalyzeAuto(ctx context.Context, targetID string) (*ScanReport, error) {
	s.progress.Reset(StatusValidating)
	start := s.now()
	runID := uuid.NewString()
	s.logger.Info("catalog scan started",
		logging.String("run_id", runID), logging.String("target_id", targetID))

	seq, err := s.resolveTarget(ctx, targetID)
	if err != nil {
		s.metrics.RecordScan(scanModeAuto, scanOutcomeError, 0)
		return nil, errors.Newf(errors.ErrCodeTargetUnresolved, "Invalid Target ID '%s'", targetID)
	}
	if s.catalog == nil {
		s.metrics.RecordScan(scanModeAuto, scanOutcomeError, 0)
		return nil, errors.New(errors.ErrCodeCatalogUnavailable, "Drug catalog is not configured.")
	}

	s.progress.SetStatus(StatusFetchingDB)
	drugs, err := s.catalog.ListDrugs(ctx)
	if err != nil {
		s.metrics.RecordScan(scanModeAuto, scanOutcomeError, 0)
		return nil, errors.Wrap(err, errors.ErrCodeCatalogUnavailable, "Failed to fetch drug catalog")
	}
	s.progress.SetTotal(len(drugs))

	s.progress.SetStatus(StatusAnalyzing)
	graphs, validIdx := s.featurizeAll(ctx, drugs, seq, s.config.ProgressStrideAuto)

	s.progress.SetStatus(StatusInference)
	scores := s.scoreAll(ctx, graphs)

	s.progress.SetCurrent(len(drugs))
	s.progress.SetStatus(StatusFinalizing)

	results := make([]candidate.Result, 0, len(validIdx))
	for k, idx := range validIdx {
		r := candidate.NewResult(drugs[idx].Name, drugs[idx].SMILES, scores[k])
		if s.config.AutoEnrichment && r.Score > candidate.ActivityThreshold {
			s.enrich(ctx, &r)
		}
		results = append(results, r)
	}
	sortByScoreDesc(results)

	s.progress.SetStatus(StatusDone)
	report := &ScanReport{Results: results, ScanTime: elapsedSeconds(start, s.now())}
	s.metrics.RecordScan(scanModeAuto, scanOutcomeOK, report.ScanTime)
	s.logger.Info("catalog scan finished",
		logging.String("run_id", runID),
		logging.Int("results", len(report.Results)),
		logging.Float64("scan_time", report.ScanTime))
	return report, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// File upload
// ─────────────────────────────────────────────────────────────────────────────

// AnalyzeUpload scores every candidate in an uploaded CSV/TXT file against a
// target.  Active hits are enriched with ADMET and pharmacophore data.
func (s *Service) AnalyzeUpload(ctx context.Context, targetID, filename string, file io.Reader) (*ScanReport, error) {
	s.progress.Reset(StatusReadingFile)
	runID := uuid.NewString()
	s.logger.Info("upload scan started",
		logging.String("run_id", runID),
		logging.String("target_id", targetID),
		logging.String("filename", filename))

	seq, err := s.resolveTarget(ctx, targetID)
	if err != nil {
		s.metrics.RecordScan(scanModeUpload, scanOutcomeError, 0)
		return nil, errors.New(errors.ErrCodeTargetUnresolved, "Invalid Target ID")
	}
	start := s.now()

	candidates, err := ParseUpload(filename, file)
	if err != nil {
		s.metrics.RecordScan(scanModeUpload, scanOutcomeError, 0)
		return nil, err
	}
	s.progress.SetTotal(len(candidates))
	s.progress.SetStatus(StatusAnalyzingBatch)

	graphs, validIdx := s.featurizeAll(ctx, candidates, seq, s.config.ProgressStrideUpload)
	if len(graphs) == 0 {
		s.metrics.RecordScan(scanModeUpload, scanOutcomeError, 0)
		return nil, errors.New(errors.ErrCodeEmptyUpload, "No valid molecules found.")
	}

	scores := s.scoreAll(ctx, graphs)

	s.progress.SetCurrent(len(candidates))
	s.progress.SetStatus(StatusDone)

	results := make([]candidate.Result, 0, len(validIdx))
	for k, idx := range validIdx {
		r := candidate.NewResult(candidates[idx].Name, candidates[idx].SMILES, scores[k])
		if r.Score > candidate.ActivityThreshold {
			s.enrich(ctx, &r)
		}
		results = append(results, r)
	}
	sortByScoreDesc(results)

	report := &ScanReport{Results: results, ScanTime: elapsedSeconds(start, s.now())}
	s.metrics.RecordScan(scanModeUpload, scanOutcomeOK, report.ScanTime)
	return report, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Narrative passthroughs
// ─────────────────────────────────────────────────────────────────────────────

// Chat answers a question about a previously scored candidate.
func (s *Service) Chat(ctx context.Context, req *narrative.ChatRequest) string {
	return s.narrator.Chat(ctx, req)
}

// Optimize proposes a structural modification for a candidate.
func (s *Service) Optimize(ctx context.Context, req *narrative.OptimizeRequest) *narrative.Optimization {
	return s.narrator.Optimize(ctx, req)
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

func (s *Service) resolveTarget(ctx context.Context, targetID string) (string, error) {
	seq, err := s.targets.Sequence(ctx, targetID)
	if err != nil {
		return "", err
	}
	if seq == "" {
		return "", errors.Newf(errors.ErrCodeTargetUnresolved, "unknown target %q", targetID)
	}
	return seq, nil
}

// featurizeAll featurizes candidates in order, recording which input indices
// produced a usable graph.  Progress is published every stride candidates.
func (s *Service) featurizeAll(ctx context.Context, list []candidate.Candidate, targetSeq string, stride int) ([]*chemistry.PairGraph, []int) {
	graphs := make([]*chemistry.PairGraph, 0, len(list))
	validIdx := make([]int, 0, len(list))

	for i, c := range list {
		g, err := s.featurizer.Featurize(ctx, c.SMILES, targetSeq)
		if err == nil && g != nil {
			graphs = append(graphs, g)
			validIdx = append(validIdx, i)
		}
		if i%stride == 0 {
			s.progress.SetCurrent(i)
		}
	}
	return graphs, validIdx
}

// scoreAll runs batched inference.  A scorer-level failure (model missing)
// falls back to floor scores for every graph instead of aborting the scan.
func (s *Service) scoreAll(ctx context.Context, graphs []*chemistry.PairGraph) []float64 {
	scores, err := s.scorer.Score(ctx, graphs)
	if err != nil || len(scores) != len(graphs) {
		s.logger.Error("batch inference unavailable, reporting floor scores", logging.Err(err))
		scores = make([]float64, len(graphs))
		for i := range scores {
			scores[i] = affinity.ScoreFloor
		}
	}
	return scores
}

// enrich attaches ADMET and pharmacophore data to a result.  Enrichment
// failures are logged and leave the fields empty.
func (s *Service) enrich(ctx context.Context, r *candidate.Result) {
	if s.admet != nil {
		props, err := s.admet.Calculate(ctx, r.SMILES)
		if err != nil {
			s.logger.Warn("ADMET enrichment failed", logging.String("smiles", r.SMILES), logging.Err(err))
		} else {
			r.ADMET = props
		}
	}
	if s.pharma != nil {
		sites, err := s.pharma.DetectActiveSites(ctx, r.SMILES)
		if err != nil {
			s.logger.Warn("pharmacophore enrichment failed", logging.String("smiles", r.SMILES), logging.Err(err))
		} else {
			r.ActiveSites = sites
		}
	}
}

// sortByScoreDesc sorts results by descending score, keeping the relative
// order of equal scores stable.
func sortByScoreDesc(results []candidate.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

func elapsedSeconds(start, end time.Time) float64 {
	return math.Round(end.Sub(start).Seconds()*100) / 100
}

package triage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
	"github.com/turtacn/BioTriage/internal/intelligence/chemistry"
	"github.com/turtacn/BioTriage/internal/intelligence/narrative"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test doubles
// ─────────────────────────────────────────────────────────────────────────────

type fakeFeaturizer struct {
	failFor map[string]bool
	calls   int
}

func (f *fakeFeaturizer) Featurize(_ context.Context, smiles, _ string) (*chemistry.PairGraph, error) {
	f.calls++
	if smiles == "" || f.failFor[smiles] {
		return nil, fmt.Errorf("unparsable SMILES %q", smiles)
	}
	return &chemistry.PairGraph{SMILES: smiles, NumAtoms: 1}, nil
}

type fakeScorer struct {
	scores map[string]float64
	err    error
}

func (f *fakeScorer) Score(_ context.Context, graphs []*chemistry.PairGraph) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]float64, len(graphs))
	for i, g := range graphs {
		if s, ok := f.scores[g.SMILES]; ok {
			out[i] = s
		} else {
			out[i] = 4.0
		}
	}
	return out, nil
}

type fakeNarrator struct {
	explainCalls int
}

func (f *fakeNarrator) Explain(context.Context, *narrative.ExplainRequest) *candidate.Explanation {
	f.explainCalls++
	return &candidate.Explanation{Summary: "test summary", Conclusion: "Advance"}
}

func (f *fakeNarrator) Chat(_ context.Context, req *narrative.ChatRequest) string {
	return "answer to: " + req.Question
}

func (f *fakeNarrator) Optimize(context.Context, *narrative.OptimizeRequest) *narrative.Optimization {
	return &narrative.Optimization{Suggestion: "add a fluorine"}
}

type fakeEnricher struct {
	admetCalls  int
	pharmaCalls int
}

func (f *fakeEnricher) Calculate(context.Context, string) (*candidate.ADMETProperties, error) {
	f.admetCalls++
	return &candidate.ADMETProperties{MolecularWeight: 180.16}, nil
}

func (f *fakeEnricher) DetectActiveSites(context.Context, string) ([]candidate.ActiveSite, error) {
	f.pharmaCalls++
	return []candidate.ActiveSite{{Family: "Donor", AtomIndices: []int{0}}}, nil
}

type fakeCatalog struct {
	drugs []candidate.Candidate
	err   error
}

func (f *fakeCatalog) ListDrugs(context.Context) ([]candidate.Candidate, error) {
	return f.drugs, f.err
}

type recordedScan struct {
	mode    string
	outcome string
	seconds float64
}

type fakeScanMetrics struct {
	scans []recordedScan
}

func (f *fakeScanMetrics) RecordScan(mode, outcome string, seconds float64) {
	f.scans = append(f.scans, recordedScan{mode, outcome, seconds})
}

type serviceFixture struct {
	svc        *Service
	featurizer *fakeFeaturizer
	scorer     *fakeScorer
	narrator   *fakeNarrator
	enricher   *fakeEnricher
	catalog    *fakeCatalog
	progress   *ProgressTracker
	metrics    *fakeScanMetrics
}

func newFixture(t *testing.T, cfg Config) *serviceFixture {
	t.Helper()

	dict := chemistry.NewInMemoryDictionary()
	dict.Add("Aspirin", "CC(=O)Oc1ccccc1C(=O)O")
	resolver, err := chemistry.NewDictionaryResolver(dict, chemistry.DefaultResolverConfig(), nil)
	require.NoError(t, err)

	targets := chemistry.NewInMemoryTargetIndex(map[string]string{"EGFR": "MRPSGTAGAALLALLAALCPASRA"})

	fx := &serviceFixture{
		featurizer: &fakeFeaturizer{failFor: map[string]bool{}},
		scorer:     &fakeScorer{scores: map[string]float64{}},
		narrator:   &fakeNarrator{},
		enricher:   &fakeEnricher{},
		catalog:    &fakeCatalog{},
		progress:   NewProgressTracker(),
		metrics:    &fakeScanMetrics{},
	}

	fx.svc, err = NewService(Deps{
		Structures: resolver,
		Targets:    targets,
		Featurizer: fx.featurizer,
		ADMET:      fx.enricher,
		Pharma:     fx.enricher,
		Catalog:    fx.catalog,
		Scorer:     fx.scorer,
		Narrator:   fx.narrator,
		Progress:   fx.progress,
		Metrics:    fx.metrics,
	}, cfg)
	require.NoError(t, err)
	return fx
}

// ─────────────────────────────────────────────────────────────────────────────
// Manual mode
// ─────────────────────────────────────────────────────────────────────────────

func TestAnalyzeManual_NameInput(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.scorer.scores["CC(=O)Oc1ccccc1C(=O)O"] = 8.42

	res, err := fx.svc.AnalyzeManual(context.Background(), "EGFR", "Aspirin")
	require.NoError(t, err)

	assert.Equal(t, "Aspirin", res.Name, "a resolved name is kept verbatim")
	assert.Equal(t, "CC(=O)Oc1ccccc1C(=O)O", res.SMILES)
	assert.Equal(t, 8.42, res.Score)
	assert.Equal(t, candidate.StatusActive, res.Status)
	assert.Equal(t, candidate.ColorActive, res.Color)

	// Manual mode always enriches, regardless of score.
	require.NotNil(t, res.ADMET)
	require.NotEmpty(t, res.ActiveSites)
	require.NotNil(t, res.AIExplanation)
	assert.Equal(t, "test summary", res.AIExplanation.Summary)

	p := fx.progress.Snapshot()
	assert.Equal(t, Progress{Current: 1, Total: 1, Status: StatusDone}, p)
}

func TestAnalyzeManual_RawSMILESGetsSynthesizedName(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.scorer.scores["CCO"] = 5.0

	res, err := fx.svc.AnalyzeManual(context.Background(), "EGFR", "CCO")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Name, "Custom Ligand "), "got %q", res.Name)
	assert.Len(t, res.Name, len("Custom Ligand ")+4)
	assert.Equal(t, candidate.StatusInactive, res.Status)
}

func TestAnalyzeManual_UnknownTarget(t *testing.T) {
	fx := newFixture(t, Config{})

	_, err := fx.svc.AnalyzeManual(context.Background(), "TP53", "Aspirin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Target ID 'TP53'")
}

func TestAnalyzeManual_MissingInput(t *testing.T) {
	fx := newFixture(t, Config{})

	_, err := fx.svc.AnalyzeManual(context.Background(), "EGFR", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Input is missing!")
}

func TestAnalyzeManual_UnresolvedStructure(t *testing.T) {
	fx := newFixture(t, Config{})

	_, err := fx.svc.AnalyzeManual(context.Background(), "EGFR", "not a real drug ???")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not find structure for 'not a real drug ???'.")
}

func TestAnalyzeManual_InferenceFailureFloorsScore(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.scorer.err = fmt.Errorf("model backend down")

	res, err := fx.svc.AnalyzeManual(context.Background(), "EGFR", "Aspirin")
	require.NoError(t, err, "inference failure degrades the score, it does not abort")
	assert.Equal(t, 4.0, res.Score)
	assert.Equal(t, candidate.StatusInactive, res.Status)
	assert.NotNil(t, res.ADMET, "enrichment still runs")
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog scan
// ─────────────────────────────────────────────────────────────────────────────

func catalogOf(n int) []candidate.Candidate {
	drugs := make([]candidate.Candidate, n)
	for i := range drugs {
		drugs[i] = candidate.Candidate{Name: fmt.Sprintf("Drug-%03d", i), SMILES: fmt.Sprintf("C%d", i)}
	}
	return drugs
}

func TestAnalyzeAuto_FullCatalog(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.catalog.drugs = catalogOf(120)
	for i := 0; i < 120; i++ {
		fx.scorer.scores[fmt.Sprintf("C%d", i)] = 4.0 + float64(i)*0.05
	}

	report, err := fx.svc.AnalyzeAuto(context.Background(), "EGFR")
	require.NoError(t, err)
	require.Len(t, report.Results, 120)

	// Descending order.
	for i := 1; i < len(report.Results); i++ {
		assert.GreaterOrEqual(t, report.Results[i-1].Score, report.Results[i].Score)
	}
	assert.Equal(t, "Drug-119", report.Results[0].Name)
	assert.GreaterOrEqual(t, report.ScanTime, 0.0)

	// Catalog scans do not enrich by default.
	for _, r := range report.Results {
		assert.Nil(t, r.ADMET)
		assert.Empty(t, r.ActiveSites)
	}
	assert.Zero(t, fx.enricher.admetCalls)

	p := fx.progress.Snapshot()
	assert.Equal(t, Progress{Current: 120, Total: 120, Status: StatusDone}, p)
}

func TestAnalyzeAuto_InvalidMoleculesDropped(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.catalog.drugs = catalogOf(10)
	fx.featurizer.failFor["C3"] = true
	fx.featurizer.failFor["C7"] = true

	report, err := fx.svc.AnalyzeAuto(context.Background(), "EGFR")
	require.NoError(t, err)
	assert.Len(t, report.Results, 8)
	for _, r := range report.Results {
		assert.NotEqual(t, "Drug-003", r.Name)
		assert.NotEqual(t, "Drug-007", r.Name)
	}
}

func TestAnalyzeAuto_TieOrderIsStable(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.catalog.drugs = catalogOf(6)
	// All equal scores: catalog order must survive the sort.
	for i := 0; i < 6; i++ {
		fx.scorer.scores[fmt.Sprintf("C%d", i)] = 9.0
	}

	report, err := fx.svc.AnalyzeAuto(context.Background(), "EGFR")
	require.NoError(t, err)
	for i, r := range report.Results {
		assert.Equal(t, fmt.Sprintf("Drug-%03d", i), r.Name)
	}
}

func TestAnalyzeAuto_CatalogFailure(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.catalog.err = fmt.Errorf("connection refused")

	_, err := fx.svc.AnalyzeAuto(context.Background(), "EGFR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch drug catalog")
}

func TestAnalyzeAuto_ScorerFailureFloorsAll(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.catalog.drugs = catalogOf(5)
	fx.scorer.err = fmt.Errorf("model not loaded")

	report, err := fx.svc.AnalyzeAuto(context.Background(), "EGFR")
	require.NoError(t, err)
	require.Len(t, report.Results, 5)
	for _, r := range report.Results {
		assert.Equal(t, 4.0, r.Score)
		assert.Equal(t, candidate.StatusInactive, r.Status)
	}
}

func TestAnalyzeAuto_EnrichmentWhenEnabled(t *testing.T) {
	fx := newFixture(t, Config{AutoEnrichment: true})
	fx.catalog.drugs = catalogOf(4)
	fx.scorer.scores["C0"] = 9.5
	fx.scorer.scores["C1"] = 5.0
	fx.scorer.scores["C2"] = 8.0
	fx.scorer.scores["C3"] = 7.5

	report, err := fx.svc.AnalyzeAuto(context.Background(), "EGFR")
	require.NoError(t, err)

	for _, r := range report.Results {
		if r.Status == candidate.StatusActive {
			assert.NotNil(t, r.ADMET, "%s", r.Name)
		} else {
			assert.Nil(t, r.ADMET, "%s", r.Name)
		}
	}
	assert.Equal(t, 2, fx.enricher.admetCalls)
}

// ─────────────────────────────────────────────────────────────────────────────
// Upload mode
// ─────────────────────────────────────────────────────────────────────────────

func TestAnalyzeUpload_CSV(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.scorer.scores["CCO"] = 9.1
	fx.scorer.scores["CCN"] = 5.2

	file := strings.NewReader("Name,SMILES\nEthanol,CCO\nEthylamine,CCN\n")
	report, err := fx.svc.AnalyzeUpload(context.Background(), "EGFR", "batch.csv", file)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	top := report.Results[0]
	assert.Equal(t, "Ethanol", top.Name)
	assert.Equal(t, candidate.StatusActive, top.Status)
	assert.NotNil(t, top.ADMET, "active hits are enriched")

	second := report.Results[1]
	assert.Equal(t, "Ethylamine", second.Name)
	assert.Nil(t, second.ADMET, "inactive results stay lean")
	assert.Empty(t, second.ActiveSites)
}

func TestAnalyzeUpload_TSVAndSynthesizedNames(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.scorer.scores["CCO"] = 6.0
	fx.scorer.scores["CCC"] = 6.5

	file := strings.NewReader("smiles\nCCO\nCCC\n")
	report, err := fx.svc.AnalyzeUpload(context.Background(), "EGFR", "batch.txt", file)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "Drug_1", report.Results[0].Name)
	assert.Equal(t, "Drug_0", report.Results[1].Name)
}

func TestAnalyzeUpload_InvalidTarget(t *testing.T) {
	fx := newFixture(t, Config{})

	_, err := fx.svc.AnalyzeUpload(context.Background(), "NOPE", "batch.csv", strings.NewReader("smiles\nCCO\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Target ID")
}

func TestAnalyzeUpload_BadExtension(t *testing.T) {
	fx := newFixture(t, Config{})

	_, err := fx.svc.AnalyzeUpload(context.Background(), "EGFR", "batch.xlsx", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid format. Only .csv or .txt allowed.")
}

func TestAnalyzeUpload_MissingSMILESColumn(t *testing.T) {
	fx := newFixture(t, Config{})

	_, err := fx.svc.AnalyzeUpload(context.Background(), "EGFR", "batch.csv", strings.NewReader("name,structure\nA,CCO\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Column 'smiles' not found!")
}

func TestAnalyzeUpload_NoValidMolecules(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.featurizer.failFor["XXX"] = true
	fx.featurizer.failFor["YYY"] = true

	_, err := fx.svc.AnalyzeUpload(context.Background(), "EGFR", "batch.csv", strings.NewReader("smiles\nXXX\nYYY\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No valid molecules found.")
}

// ─────────────────────────────────────────────────────────────────────────────
// Narrative passthroughs and progress
// ─────────────────────────────────────────────────────────────────────────────

func TestChatAndOptimize(t *testing.T) {
	fx := newFixture(t, Config{})

	answer := fx.svc.Chat(context.Background(), &narrative.ChatRequest{Question: "is it safe?"})
	assert.Equal(t, "answer to: is it safe?", answer)

	opt := fx.svc.Optimize(context.Background(), &narrative.OptimizeRequest{Name: "Aspirin"})
	assert.Equal(t, "add a fluorine", opt.Suggestion)
}

func TestProgressTracker(t *testing.T) {
	tr := NewProgressTracker()
	assert.Equal(t, Progress{Current: 0, Total: 1, Status: StatusIdle}, tr.Snapshot())

	tr.SetTotal(100)
	tr.SetCurrent(40)
	tr.SetStatus(StatusAnalyzing)
	assert.Equal(t, Progress{Current: 40, Total: 100, Status: StatusAnalyzing}, tr.Snapshot())

	// Reset rewinds to the canonical start state.
	tr.Reset(StatusValidating)
	assert.Equal(t, Progress{Current: 0, Total: 1, Status: StatusValidating}, tr.Snapshot())
}

func TestParseUpload_RaggedRowsAndSpacing(t *testing.T) {
	list, err := ParseUpload("x.csv", strings.NewReader(" Name , SMILES \nA,CCO\n,CCN\n"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "CCO", list[0].SMILES)
	assert.Equal(t, "Drug_1", list[1].Name, "blank name cell falls back to a synthesized name")
}

// ─────────────────────────────────────────────────────────────────────────────
// Scan metrics
// ─────────────────────────────────────────────────────────────────────────────

func TestScanMetrics_RecordedPerMode(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.scorer.scores["CC(=O)Oc1ccccc1C(=O)O"] = 8.0
	fx.catalog.drugs = []candidate.Candidate{{Name: "Ethanol", SMILES: "CCO"}}

	_, err := fx.svc.AnalyzeManual(context.Background(), "EGFR", "Aspirin")
	require.NoError(t, err)

	_, err = fx.svc.AnalyzeAuto(context.Background(), "EGFR")
	require.NoError(t, err)

	_, err = fx.svc.AnalyzeUpload(context.Background(), "EGFR", "batch.csv",
		strings.NewReader("smiles\nCCO\n"))
	require.NoError(t, err)

	require.Len(t, fx.metrics.scans, 3)
	for i, want := range []string{"manual", "auto", "upload"} {
		assert.Equal(t, want, fx.metrics.scans[i].mode)
		assert.Equal(t, "ok", fx.metrics.scans[i].outcome)
	}
}

func TestScanMetrics_ErrorOutcomes(t *testing.T) {
	fx := newFixture(t, Config{})

	_, err := fx.svc.AnalyzeManual(context.Background(), "NOPE", "Aspirin")
	require.Error(t, err)

	fx.catalog.err = fmt.Errorf("connection refused")
	_, err = fx.svc.AnalyzeAuto(context.Background(), "EGFR")
	require.Error(t, err)

	_, err = fx.svc.AnalyzeUpload(context.Background(), "EGFR", "batch.xlsx", strings.NewReader("x"))
	require.Error(t, err)

	require.Len(t, fx.metrics.scans, 3)
	for i, want := range []string{"manual", "auto", "upload"} {
		assert.Equal(t, want, fx.metrics.scans[i].mode)
		assert.Equal(t, "error", fx.metrics.scans[i].outcome)
		assert.Zero(t, fx.metrics.scans[i].seconds)
	}
}

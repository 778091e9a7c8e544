// Package triage orchestrates the scoring pipeline: structure resolution,
// featurization, batched affinity inference, enrichment, and result assembly
// for the three intake modes (manual, catalog scan, file upload).
package triage

import "sync"

// Scan status labels surfaced through the progress endpoint.
const (
	StatusIdle           = "Idle"
	StatusValidating     = "Validating..."
	StatusProcessing     = "Processing..."
	StatusFetchingDB     = "Fetching DB..."
	StatusAnalyzing      = "Analyzing..."
	StatusInference      = "Inference..."
	StatusFinalizing     = "Finalizing..."
	StatusReadingFile    = "Reading File..."
	StatusAnalyzingBatch = "Analyzing Batch..."
	StatusDone           = "Done"
)

// Progress is a point-in-time view of the running scan.
type Progress struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
}

// ProgressTracker holds the mutable scan progress shared between the pipeline
// goroutine and the progress endpoint.  All methods are safe for concurrent
// use; Snapshot returns a copy so readers never observe torn state.
type ProgressTracker struct {
	mu sync.RWMutex
	p  Progress
}

// NewProgressTracker creates a tracker in the idle state.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{p: Progress{Current: 0, Total: 1, Status: StatusIdle}}
}

// Reset rewinds the tracker to the start of a new scan: current 0, total 1,
// and the given status.  The total is corrected later once the candidate
// count is known.
func (t *ProgressTracker) Reset(status string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p = Progress{Current: 0, Total: 1, Status: status}
}

// SetTotal records the number of candidates in the running scan.
func (t *ProgressTracker) SetTotal(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.Total = total
}

// SetCurrent records how many candidates have been processed so far.
func (t *ProgressTracker) SetCurrent(current int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.Current = current
}

// SetStatus updates the status label.
func (t *ProgressTracker) SetStatus(status string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.Status = status
}

// Snapshot returns a copy of the current progress.
func (t *ProgressTracker) Snapshot() Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.p
}

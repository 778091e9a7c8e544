// Package candidate defines the core triage domain: drug candidates, their
// scored results, activity classification, and confidence estimation.
package candidate

import "math"

// ---------------------------------------------------------------------------
// Activity classification
// ---------------------------------------------------------------------------

// ActivityThreshold is the predicted-affinity cutoff separating ACTIVE from
// INACTIVE candidates.  Classification is strict: a score exactly at the
// threshold is INACTIVE.
const ActivityThreshold = 7.5

// Status labels a scored candidate's predicted activity.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Display colors paired one-to-one with the two statuses.
const (
	ColorActive   = "#00f3ff"
	ColorInactive = "#ff0055"
)

// ClassifyScore maps a final (clamped, rounded) score onto a Status.
func ClassifyScore(score float64) Status {
	if score > ActivityThreshold {
		return StatusActive
	}
	return StatusInactive
}

// StatusColor returns the display color for a status.
func StatusColor(s Status) string {
	if s == StatusActive {
		return ColorActive
	}
	return ColorInactive
}

// ---------------------------------------------------------------------------
// Confidence
// ---------------------------------------------------------------------------

// Confidence converts a final score into a percentage confidence estimate.
// It grows monotonically with the distance from the activity threshold: a
// score deep in either the ACTIVE or INACTIVE band is a more certain call
// than one sitting next to the cutoff.  The result is bounded to [50, 99].
func Confidence(score float64) float64 {
	distance := math.Abs(score - ActivityThreshold)
	c := 50.0 + distance*11.0
	if c > 99.0 {
		c = 99.0
	}
	return math.Round(c*10) / 10
}

// ---------------------------------------------------------------------------
// Candidate and Result
// ---------------------------------------------------------------------------

// Candidate is an unscored molecule queued for triage.
type Candidate struct {
	Name   string `json:"name"`
	SMILES string `json:"smiles"`
}

// ADMETProperties summarizes the absorption/distribution/metabolism/excretion/
// toxicity profile computed from a candidate's structure.
type ADMETProperties struct {
	MolecularWeight    float64 `json:"molecular_weight"`
	LogP               float64 `json:"logp"`
	HBondDonors        int     `json:"h_bond_donors"`
	HBondAcceptors     int     `json:"h_bond_acceptors"`
	TPSA               float64 `json:"tpsa"`
	RotatableBonds     int     `json:"rotatable_bonds"`
	LipinskiViolations int     `json:"lipinski_violations"`
}

// ActiveSite is a pharmacophore feature detected on the candidate structure.
type ActiveSite struct {
	Family      string `json:"family"`
	AtomIndices []int  `json:"atom_indices"`
}

// Explanation is the structured scientific narrative attached to a manually
// analyzed candidate.
type Explanation struct {
	Summary           string `json:"summary"`
	Mechanism         string `json:"mechanism"`
	SafetyAnalysis    string `json:"safety_analysis"`
	ClinicalPotential string `json:"clinical_potential"`
	Conclusion        string `json:"conclusion"`
}

// Result is a fully scored and classified candidate, shaped for the API.
// ADMET, ActiveSites, and AIExplanation are enrichment fields; whether they
// are populated depends on the triage mode that produced the result.
type Result struct {
	Name          string           `json:"name"`
	SMILES        string           `json:"smiles"`
	Score         float64          `json:"score"`
	Confidence    float64          `json:"confidence"`
	Status        Status           `json:"status"`
	Color         string           `json:"color"`
	ADMET         *ADMETProperties `json:"admet,omitempty"`
	ActiveSites   []ActiveSite     `json:"active_sites,omitempty"`
	AIExplanation *Explanation     `json:"ai_explanation,omitempty"`
}

// NewResult builds a Result from a final score, deriving status, color, and
// confidence.  Enrichment fields are left empty for the caller to populate.
func NewResult(name, smiles string, score float64) Result {
	status := ClassifyScore(score)
	return Result{
		Name:       name,
		SMILES:     smiles,
		Score:      score,
		Confidence: Confidence(score),
		Status:     status,
		Color:      StatusColor(status),
	}
}

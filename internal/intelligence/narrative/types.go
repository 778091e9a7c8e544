// Package narrative generates LLM-backed scientific narratives: candidate
// explanations, conversational Q&A over a scored candidate, and structural
// optimization advice.
package narrative

import (
	"context"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
)

// ModelClient generates text from a prompt using a named model.  Errors are
// classified by the engine: "model not found" errors advance the fallback
// chain, anything else is logged and also advances the chain.
type ModelClient interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// ExplainRequest carries the scored-candidate context for narrative analysis.
type ExplainRequest struct {
	Name        string                     `json:"name"`
	SMILES      string                     `json:"smiles"`
	TargetID    string                     `json:"target_id"`
	Score       float64                    `json:"score"`
	ADMET       *candidate.ADMETProperties `json:"admet,omitempty"`
	ActiveSites []candidate.ActiveSite     `json:"active_sites,omitempty"`
}

// ChatRequest is a free-form question asked in the context of a candidate.
type ChatRequest struct {
	Question    string                 `json:"question"`
	DrugContext map[string]interface{} `json:"drug_context"`
}

// OptimizeRequest asks for a structural modification proposal.
type OptimizeRequest struct {
	Name     string `json:"name"`
	SMILES   string `json:"smiles"`
	TargetID string `json:"target_id"`
}

// Optimization is the structured medicinal-chemistry advice payload.
type Optimization struct {
	OriginalFlaw     string `json:"original_flaw"`
	Suggestion       string `json:"suggestion"`
	OptimizedSMILES  string `json:"optimized_smiles"`
	Reasoning        string `json:"reasoning"`
}

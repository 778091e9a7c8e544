// Package chemistry provides structure resolution, target lookup, and the
// cheminformatics collaborator contracts the triage pipeline depends on.
package chemistry

import (
	"context"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
)

// ---------------------------------------------------------------------------
// Resolution types
// ---------------------------------------------------------------------------

// ResolvedStructure is the outcome of resolving free-form user input (a drug
// name, brand name, or raw SMILES) into a canonical structure.
type ResolvedStructure struct {
	Input            string `json:"input"`
	CanonicalSMILES  string `json:"canonical_smiles"`
	IsResolved       bool   `json:"is_resolved"`
	ResolutionMethod string `json:"resolution_method"`
}

// StructureResolver resolves free-form input into a canonical SMILES string.
// An unresolvable input yields IsResolved=false, not an error; errors are
// reserved for infrastructure failures.
type StructureResolver interface {
	Resolve(ctx context.Context, input string) (*ResolvedStructure, error)
}

// TargetResolver maps a protein target identifier (e.g. "EGFR") onto its
// amino-acid sequence.  An unknown target yields ("", nil).
type TargetResolver interface {
	Sequence(ctx context.Context, targetID string) (string, error)
}

// ---------------------------------------------------------------------------
// Featurization
// ---------------------------------------------------------------------------

// PairGraph is the featurized ligand/target pair fed to the affinity model.
type PairGraph struct {
	SMILES         string      `json:"smiles"`
	NodeFeatures   [][]float32 `json:"node_features"`
	EdgeIndex      [][2]int    `json:"edge_index"`
	EdgeFeatures   [][]float32 `json:"edge_features"`
	TargetEncoding []float32   `json:"target_encoding"`
	NumAtoms       int         `json:"num_atoms"`
}

// Featurizer converts a ligand SMILES plus a target sequence into a PairGraph.
// A structure that cannot be featurized (unparsable SMILES) returns an error
// and is dropped from the scoring batch by the caller.
type Featurizer interface {
	Featurize(ctx context.Context, smiles, targetSequence string) (*PairGraph, error)
}

// ---------------------------------------------------------------------------
// Enrichment collaborators
// ---------------------------------------------------------------------------

// ADMETCalculator computes the ADMET profile of a structure.
type ADMETCalculator interface {
	Calculate(ctx context.Context, smiles string) (*candidate.ADMETProperties, error)
}

// PharmacophoreDetector finds pharmacophore features (active sites) on a
// structure.
type PharmacophoreDetector interface {
	DetectActiveSites(ctx context.Context, smiles string) ([]candidate.ActiveSite, error)
}

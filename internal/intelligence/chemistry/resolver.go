package chemistry

import (
	"context"

	"github.com/turtacn/BioTriage/internal/intelligence/common"
	"github.com/turtacn/BioTriage/pkg/errors"
)

// ResolverConfig tunes structure resolution behaviour.
type ResolverConfig struct {
	// AcceptRawSMILES lets syntactically valid SMILES pass through without a
	// dictionary hit.  Disable to restrict input to known names only.
	AcceptRawSMILES bool `json:"accept_raw_smiles" yaml:"accept_raw_smiles"`
}

// DefaultResolverConfig returns production defaults.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{AcceptRawSMILES: true}
}

// DictionaryResolver resolves input against the in-memory name dictionary
// first and falls back to treating the input as a raw SMILES string.
type DictionaryResolver struct {
	dictionary *InMemoryDictionary
	config     ResolverConfig
	logger     common.Logger
}

// NewDictionaryResolver creates a StructureResolver backed by a dictionary.
func NewDictionaryResolver(dictionary *InMemoryDictionary, config ResolverConfig, logger common.Logger) (*DictionaryResolver, error) {
	if dictionary == nil {
		return nil, errors.InvalidParam("dictionary is required")
	}
	if logger == nil {
		logger = common.NewNoopLogger()
	}
	return &DictionaryResolver{
		dictionary: dictionary,
		config:     config,
		logger:     logger,
	}, nil
}

// Resolve implements StructureResolver.
func (r *DictionaryResolver) Resolve(_ context.Context, input string) (*ResolvedStructure, error) {
	text := NormalizeInput(input)
	res := &ResolvedStructure{Input: text}
	if text == "" {
		res.ResolutionMethod = "empty_input"
		return res, nil
	}

	// Name lookup wins over the SMILES heuristic: "aspirin" is a valid
	// SMILES-alphabet string but the user means the drug.
	if smiles, ok := r.dictionary.Lookup(text); ok {
		res.CanonicalSMILES = smiles
		res.IsResolved = true
		res.ResolutionMethod = "dictionary"
		return res, nil
	}

	if r.config.AcceptRawSMILES && LooksLikeSMILES(text) {
		res.CanonicalSMILES = text
		res.IsResolved = true
		res.ResolutionMethod = "smiles_direct"
		return res, nil
	}

	r.logger.Debug("structure not resolved", "input", text)
	res.ResolutionMethod = "not_found"
	return res, nil
}

package chemistry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *DictionaryResolver {
	t.Helper()
	dict := NewInMemoryDictionary()
	dict.Add("Aspirin", "CC(=O)Oc1ccccc1C(=O)O")
	dict.Add("Panadol", "CC(=O)Nc1ccc(O)cc1")
	r, err := NewDictionaryResolver(dict, DefaultResolverConfig(), nil)
	require.NoError(t, err)
	return r
}

func TestResolve_DictionaryHit(t *testing.T) {
	r := newTestResolver(t)

	res, err := r.Resolve(context.Background(), "  aspirin ")
	require.NoError(t, err)
	assert.True(t, res.IsResolved)
	assert.Equal(t, "CC(=O)Oc1ccccc1C(=O)O", res.CanonicalSMILES)
	assert.Equal(t, "dictionary", res.ResolutionMethod)
}

func TestResolve_DictionaryWinsOverSMILESHeuristic(t *testing.T) {
	// "Panadol" is entirely within the SMILES alphabet but must resolve as a
	// name, not pass through as a structure.
	r := newTestResolver(t)

	res, err := r.Resolve(context.Background(), "Panadol")
	require.NoError(t, err)
	assert.Equal(t, "dictionary", res.ResolutionMethod)
	assert.Equal(t, "CC(=O)Nc1ccc(O)cc1", res.CanonicalSMILES)
}

func TestResolve_RawSMILESPassthrough(t *testing.T) {
	r := newTestResolver(t)

	res, err := r.Resolve(context.Background(), "CCO")
	require.NoError(t, err)
	assert.True(t, res.IsResolved)
	assert.Equal(t, "CCO", res.CanonicalSMILES)
	assert.Equal(t, "smiles_direct", res.ResolutionMethod)
}

func TestResolve_NotFound(t *testing.T) {
	r := newTestResolver(t)

	res, err := r.Resolve(context.Background(), "definitely not a molecule!!")
	require.NoError(t, err)
	assert.False(t, res.IsResolved)
	assert.Equal(t, "not_found", res.ResolutionMethod)
	assert.Empty(t, res.CanonicalSMILES)
}

func TestResolve_EmptyInput(t *testing.T) {
	r := newTestResolver(t)

	res, err := r.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, res.IsResolved)
	assert.Equal(t, "empty_input", res.ResolutionMethod)
}

func TestResolve_RawSMILESDisabled(t *testing.T) {
	dict := NewInMemoryDictionary()
	r, err := NewDictionaryResolver(dict, ResolverConfig{AcceptRawSMILES: false}, nil)
	require.NoError(t, err)

	res, err := r.Resolve(context.Background(), "CCO")
	require.NoError(t, err)
	assert.False(t, res.IsResolved)
}

func TestLooksLikeSMILES(t *testing.T) {
	assert.True(t, LooksLikeSMILES("CC(=O)Oc1ccccc1C(=O)O"))
	assert.True(t, LooksLikeSMILES("C[C@H](N)C(=O)O"))
	assert.False(t, LooksLikeSMILES("acetyl salicylic acid"))
	assert.False(t, LooksLikeSMILES(""))
	assert.False(t, LooksLikeSMILES("what?!"))
}

func TestInMemoryTargetIndex(t *testing.T) {
	idx := NewInMemoryTargetIndex(map[string]string{"EGFR": "MRPSGTAGAALLALLAALCPASRA"})
	idx.Add("BRAF", "MAALSGGGGGGAE")

	seq, err := idx.Sequence(context.Background(), "egfr")
	require.NoError(t, err)
	assert.Equal(t, "MRPSGTAGAALLALLAALCPASRA", seq)

	seq, err = idx.Sequence(context.Background(), "TP53")
	require.NoError(t, err)
	assert.Empty(t, seq, "unknown target resolves to empty sequence, not an error")
}

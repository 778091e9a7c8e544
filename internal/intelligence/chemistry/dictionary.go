package chemistry

import (
	"context"
	"strings"
	"sync"
)

// ---------------------------------------------------------------------------
// Name dictionary
// ---------------------------------------------------------------------------

// InMemoryDictionary maps lower-cased drug and brand names to SMILES.
type InMemoryDictionary struct {
	nameToSMILES map[string]string
	mu           sync.RWMutex
}

// NewInMemoryDictionary creates an empty dictionary.
func NewInMemoryDictionary() *InMemoryDictionary {
	return &InMemoryDictionary{nameToSMILES: make(map[string]string)}
}

// Add registers a name → SMILES mapping.
func (d *InMemoryDictionary) Add(name, smiles string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nameToSMILES[normalizeKey(name)] = smiles
}

// Lookup returns the SMILES registered for a name.
func (d *InMemoryDictionary) Lookup(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.nameToSMILES[normalizeKey(name)]
	return s, ok
}

// Size returns the number of registered names.
func (d *InMemoryDictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.nameToSMILES)
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ---------------------------------------------------------------------------
// Target index
// ---------------------------------------------------------------------------

// InMemoryTargetIndex maps target identifiers to amino-acid sequences.
type InMemoryTargetIndex struct {
	sequences map[string]string
	mu        sync.RWMutex
}

// NewInMemoryTargetIndex creates a target index seeded from the given map.
func NewInMemoryTargetIndex(seed map[string]string) *InMemoryTargetIndex {
	idx := &InMemoryTargetIndex{sequences: make(map[string]string, len(seed))}
	for id, seq := range seed {
		idx.sequences[normalizeKey(id)] = seq
	}
	return idx
}

// Add registers a target → sequence mapping.
func (t *InMemoryTargetIndex) Add(targetID, sequence string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sequences[normalizeKey(targetID)] = sequence
}

// Sequence implements TargetResolver.  Unknown targets yield ("", nil).
func (t *InMemoryTargetIndex) Sequence(_ context.Context, targetID string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sequences[normalizeKey(targetID)], nil
}

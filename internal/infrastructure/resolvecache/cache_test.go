package resolvecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/BioTriage/internal/intelligence/chemistry"
)

type countingResolver struct {
	calls int
}

func (r *countingResolver) Resolve(_ context.Context, input string) (*chemistry.ResolvedStructure, error) {
	r.calls++
	return &chemistry.ResolvedStructure{
		Input:            input,
		CanonicalSMILES:  "CCO",
		IsResolved:       true,
		ResolutionMethod: "dictionary",
	}, nil
}

// unreachableConfig points at a port nothing listens on, so every cache
// operation fails fast and the resolver must degrade to its inner delegate.
func unreachableConfig() Config {
	return Config{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, TTL: time.Minute}
}

func TestResolve_DegradesWhenCacheUnavailable(t *testing.T) {
	inner := &countingResolver{}
	cfg := unreachableConfig()
	c, err := New(inner, NewRedisClient(cfg), cfg, nil)
	require.NoError(t, err)

	res, err := c.Resolve(context.Background(), "Aspirin")
	require.NoError(t, err)
	assert.True(t, res.IsResolved)
	assert.Equal(t, "CCO", res.CanonicalSMILES)
	assert.Equal(t, 1, inner.calls, "inner resolver serves the lookup when the cache is down")
}

func TestResolve_KeyNormalization(t *testing.T) {
	cfg := unreachableConfig()
	c, err := New(&countingResolver{}, NewRedisClient(cfg), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, c.key("  Aspirin "), c.key("aspirin"))
	assert.Equal(t, "biotriage:resolve:aspirin", c.key("Aspirin"))
}

func TestNew_Validation(t *testing.T) {
	cfg := unreachableConfig()
	_, err := New(nil, NewRedisClient(cfg), cfg, nil)
	assert.Error(t, err)

	_, err = New(&countingResolver{}, nil, cfg, nil)
	assert.Error(t, err)
}

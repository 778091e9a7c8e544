package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New(ErrCodeTargetUnresolved, "Invalid Target ID 'TP53'")
	assert.Equal(t, "[TGT_001] Invalid Target ID 'TP53'", e.Error())

	withDetail := e.WithDetail("resolver returned empty sequence")
	assert.Equal(t, "[TGT_001] Invalid Target ID 'TP53': resolver returned empty sequence", withDetail.Error())
	// Original is not mutated.
	assert.Empty(t, e.Detail)
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeDatabaseError, "query failed"))
}

func TestWrap_PreservesCodeOnUnknown(t *testing.T) {
	inner := New(ErrCodeInvalidSMILES, "unparseable structure")
	wrapped := Wrap(inner, CodeUnknown, "normalization failed")
	assert.Equal(t, ErrCodeInvalidSMILES, wrapped.Code)
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := New(ErrCodeMissingColumn, "Column 'smiles' not found!")
	wrapped := fmt.Errorf("parsing upload: %w", inner)
	assert.True(t, IsCode(wrapped, ErrCodeMissingColumn))
	assert.False(t, IsCode(wrapped, ErrCodeUnsupportedFormat))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeInferenceFailed, GetCode(New(ErrCodeInferenceFailed, "backend down")))
}

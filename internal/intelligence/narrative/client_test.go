package narrative

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		if strings.Contains(r.URL.Path, "gone-model") {
			http.Error(w, "model not found", http.StatusNotFound)
			return
		}

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": "generated text"}}}},
			},
		})
	}))
	defer srv.Close()

	client, err := NewGeminiClient(GeminiClientConfig{Endpoint: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "gemini-2.5-flash", "hello")
	require.NoError(t, err)
	assert.Equal(t, "generated text", text)

	// A 404 surfaces as an error the engine classifies as model-missing.
	_, err = client.Generate(context.Background(), "gone-model", "hello")
	require.Error(t, err)
	assert.True(t, isModelMissing(err))
}

func TestGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(GeminiClientConfig{})
	assert.Error(t, err)
}

package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/turtacn/BioTriage/pkg/errors"
)

// defaultGenerateEndpoint is the Gemini REST API base.
const defaultGenerateEndpoint = "https://generativelanguage.googleapis.com"

// GeminiClientConfig configures the Gemini REST client.
type GeminiClientConfig struct {
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	APIKey      string  `json:"api_key" yaml:"api_key"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	TimeoutMs   int64   `json:"timeout_ms" yaml:"timeout_ms"`
}

// GeminiClient implements ModelClient against the Gemini generateContent API.
type GeminiClient struct {
	endpoint    string
	apiKey      string
	temperature float64
	client      *http.Client
}

// NewGeminiClient creates a Gemini-backed ModelClient.  The API key must be
// supplied through configuration; there is no built-in default.
func NewGeminiClient(cfg GeminiClientConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.InvalidParam("gemini api key is required")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultGenerateEndpoint
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiClient{
		endpoint:    endpoint,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: timeout},
	}, nil
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate implements ModelClient.
func (c *GeminiClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(&generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{Temperature: c.temperature},
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeSerialization, "encoding generate request")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeModelUnavailable, "generate call failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errors.Newf(errors.ErrCodeModelUnavailable,
			"generate call failed: HTTP %d: %s", resp.StatusCode, string(raw))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeSerialization, "decoding generate response")
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New(errors.ErrCodeNarrativeMalformed, "generate response contains no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

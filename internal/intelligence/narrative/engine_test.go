package narrative

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient scripts per-model responses.
type fakeClient struct {
	responses map[string]string
	errs      map[string]error
	called    []string
}

func (f *fakeClient) Generate(_ context.Context, model, _ string) (string, error) {
	f.called = append(f.called, model)
	if err, ok := f.errs[model]; ok {
		return "", err
	}
	if text, ok := f.responses[model]; ok {
		return text, nil
	}
	return "", fmt.Errorf("model %s not found (404)", model)
}

func testConfig() Config {
	return Config{
		Enabled: true,
		Models:  []string{"gemini-2.5-flash", "gemini-2.5-pro", "gemini-2.0-flash"},
	}
}

func TestEngine_Offline(t *testing.T) {
	e := NewEngine(nil, Config{Enabled: true}, nil, nil)
	assert.False(t, e.Online())

	answer := e.Chat(context.Background(), &ChatRequest{Question: "hi"})
	assert.Equal(t, OfflineSentinel, answer)

	exp := e.Explain(context.Background(), &ExplainRequest{Name: "Aspirin"})
	require.NotNil(t, exp)
	assert.Equal(t, "Parsing Error", exp.Conclusion)
	assert.Equal(t, OfflineSentinel, exp.Mechanism)
}

func TestEngine_DisabledIsOffline(t *testing.T) {
	e := NewEngine(&fakeClient{}, Config{Enabled: false, Models: []string{"m"}}, nil, nil)
	assert.Equal(t, OfflineSentinel, e.Chat(context.Background(), &ChatRequest{Question: "hi"}))
}

func TestEngine_FallbackChain(t *testing.T) {
	client := &fakeClient{
		responses: map[string]string{"gemini-2.0-flash": "hello from backup"},
	}
	e := NewEngine(client, testConfig(), nil, nil)

	answer := e.Chat(context.Background(), &ChatRequest{Question: "hi"})
	assert.Equal(t, "hello from backup", answer)
	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-2.5-pro", "gemini-2.0-flash"}, client.called)

	// The model that answered is promoted and tried first next time.
	client.called = nil
	_ = e.Chat(context.Background(), &ChatRequest{Question: "again"})
	assert.Equal(t, "gemini-2.0-flash", client.called[0])
}

func TestEngine_AllModelsFail(t *testing.T) {
	client := &fakeClient{
		errs: map[string]error{
			"gemini-2.5-flash": fmt.Errorf("deadline exceeded"),
			"gemini-2.5-pro":   fmt.Errorf("connection refused"),
			"gemini-2.0-flash": fmt.Errorf("404 not found"),
		},
	}
	e := NewEngine(client, testConfig(), nil, nil)

	assert.Equal(t, OverloadSentinel, e.Chat(context.Background(), &ChatRequest{Question: "hi"}))
	assert.Len(t, client.called, 3, "every model in the chain is attempted")
}

func TestEngine_ExplainParsesJSON(t *testing.T) {
	client := &fakeClient{
		responses: map[string]string{
			"gemini-2.5-flash": "```json\n{\"summary\":\"Strong binder.\",\"mechanism\":\"H-bonds\",\"safety_analysis\":\"Low risk\",\"clinical_potential\":\"High\",\"conclusion\":\"Advance\"}\n```",
		},
	}
	e := NewEngine(client, testConfig(), nil, nil)

	exp := e.Explain(context.Background(), &ExplainRequest{Name: "Aspirin", Score: 8.4})
	assert.Equal(t, "Strong binder.", exp.Summary)
	assert.Equal(t, "High", exp.ClinicalPotential)
}

func TestEngine_OptimizeDegradesOnMalformedOutput(t *testing.T) {
	client := &fakeClient{
		responses: map[string]string{"gemini-2.5-flash": "sorry, I can't do JSON today"},
	}
	e := NewEngine(client, testConfig(), nil, nil)

	opt := e.Optimize(context.Background(), &OptimizeRequest{Name: "Aspirin", SMILES: "CC"})
	assert.Equal(t, "Error", opt.OriginalFlaw)
	assert.Equal(t, "Parse Error", opt.Reasoning)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
}

func TestParseExplanation_Degraded(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	exp := parseExplanation(string(long))
	assert.Len(t, exp.Mechanism, degradedMechanismLimit)
	assert.Equal(t, "AI Analysis generated but format was unstructured.", exp.Summary)
}

func TestTruncate_KeepsRuneBoundaries(t *testing.T) {
	// 3-byte runes that straddle every byte-level cut point.
	raw := strings.Repeat("分子", degradedMechanismLimit)
	exp := parseExplanation(raw)

	assert.True(t, utf8.ValidString(exp.Mechanism), "truncation must not split a rune")
	assert.LessOrEqual(t, len(exp.Mechanism), degradedMechanismLimit)
	assert.True(t, strings.HasPrefix(raw, exp.Mechanism))

	// ASCII at the limit is untouched.
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "", truncate("分", 2))
}

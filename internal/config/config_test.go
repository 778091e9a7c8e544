package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Database.User = "triage"
	ApplyDefaults(cfg)
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultModelBatchSize, cfg.Model.BatchSize)
	assert.Equal(t, DefaultProgressStrideAuto, cfg.Pipeline.ProgressStrideAuto)
	assert.Equal(t, DefaultProgressStrideUpload, cfg.Pipeline.ProgressStrideUpload)
	assert.Equal(t, DefaultLLMModels(), cfg.LLM.Models)
	assert.Equal(t, DefaultChemEndpoint, cfg.Chem.Endpoint)
	assert.Equal(t, DefaultModelServingEndpoint, cfg.Model.ServingEndpoint)
	assert.False(t, cfg.Pipeline.AutoEnrichment)
	assert.Empty(t, cfg.LLM.APIKey, "API key must never have a baked-in default")
}

func TestApplyDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Model.BatchSize = 16
	ApplyDefaults(cfg)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 16, cfg.Model.BatchSize)
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_RejectsMissingDBUser(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.user")
}

func TestValidate_RejectsEnabledLLMWithoutKey(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Enabled = true
	cfg.LLM.APIKey = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.api_key")

	cfg.LLM.APIKey = "key-from-env"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadServerMode(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Mode = "production"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.mode")
}

func TestValidate_RejectsZeroStride(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.ProgressStrideUpload = -1
	assert.Error(t, cfg.Validate())
}

// Package config defines all configuration structures for the BioTriage
// service.  No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the drug catalog.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the structure-resolution
// cache.  The cache is optional; an empty Addr disables it.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// ModelConfig holds binding-affinity model parameters.
type ModelConfig struct {
	ModelID         string `mapstructure:"model_id"`
	ModelVersion    string `mapstructure:"model_version"`
	ServingEndpoint string `mapstructure:"serving_endpoint"`
	BatchSize       int    `mapstructure:"batch_size"`
	TimeoutMs       int64  `mapstructure:"timeout_ms"`
	WarmupOnLoad    bool   `mapstructure:"warmup_on_load"`
}

// ChemConfig holds the cheminformatics sidecar connection parameters.  The
// sidecar performs featurization, ADMET profiling, and pharmacophore
// detection.
type ChemConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	TimeoutMs int64  `mapstructure:"timeout_ms"`
}

// LLMConfig holds narrative/chat generation parameters.
//
// APIKey intentionally has no default and is rejected by Validate when the
// narrative engine is enabled: the key must come from configuration or the
// BIOTRIAGE_LLM_API_KEY environment variable, never from a baked-in value.
type LLMConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	Endpoint       string   `mapstructure:"endpoint"`
	APIKey         string   `mapstructure:"api_key"`
	Models         []string `mapstructure:"models"` // fallback priority order
	Temperature    float64  `mapstructure:"temperature"`
	TimeoutMs      int64    `mapstructure:"timeout_ms"`
	MaxOutputChars int      `mapstructure:"max_output_chars"`
}

// PipelineConfig holds triage pipeline tunables.
type PipelineConfig struct {
	// AutoEnrichment controls whether catalog-wide (auto-mode) scans compute
	// ADMET and pharmacophore data for active hits.  Upload scans always
	// enrich active hits; auto scans historically did not, trading detail for
	// catalog-scale throughput.  Off by default.
	AutoEnrichment bool `mapstructure:"auto_enrichment"`

	// ProgressStrideAuto is the candidate interval between progress writes
	// during catalog featurization.
	ProgressStrideAuto int `mapstructure:"progress_stride_auto"`

	// ProgressStrideUpload is the row interval between progress writes during
	// upload featurization.
	ProgressStrideUpload int `mapstructure:"progress_stride_upload"`
}

// Config is the root configuration aggregate.
type Config struct {
	Server   ServerConfig      `mapstructure:"server"`
	Database DatabaseConfig    `mapstructure:"database"`
	Redis    RedisConfig       `mapstructure:"redis"`
	Model    ModelConfig       `mapstructure:"model"`
	Chem     ChemConfig        `mapstructure:"chem"`
	LLM      LLMConfig         `mapstructure:"llm"`
	Pipeline PipelineConfig    `mapstructure:"pipeline"`
	Log      logging.LogConfig `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate checks the fully-defaulted configuration for internal consistency.
// It must be called after ApplyDefaults.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Database
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.db_name is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("config: database.max_conns must be >= 1, got %d", c.Database.MaxConns)
	}

	// Redis (optional — validated only when enabled)
	if c.Redis.Addr != "" && c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be >= 0, got %d", c.Redis.DB)
	}

	// Model
	if c.Model.ModelID == "" {
		return fmt.Errorf("config: model.model_id is required")
	}
	if c.Model.BatchSize < 1 {
		return fmt.Errorf("config: model.batch_size must be >= 1, got %d", c.Model.BatchSize)
	}

	// Chem
	if c.Chem.Endpoint == "" {
		return fmt.Errorf("config: chem.endpoint is required")
	}

	// LLM
	if c.LLM.Enabled {
		if c.LLM.APIKey == "" {
			return fmt.Errorf("config: llm.api_key is required when llm.enabled is true " +
				"(set llm.api_key or BIOTRIAGE_LLM_API_KEY; there is no default)")
		}
		if len(c.LLM.Models) == 0 {
			return fmt.Errorf("config: llm.models must list at least one model")
		}
		if c.LLM.Temperature < 0 || c.LLM.Temperature > 2.0 {
			return fmt.Errorf("config: llm.temperature must be in [0, 2.0], got %g", c.LLM.Temperature)
		}
	}

	// Pipeline
	if c.Pipeline.ProgressStrideAuto < 1 {
		return fmt.Errorf("config: pipeline.progress_stride_auto must be >= 1, got %d", c.Pipeline.ProgressStrideAuto)
	}
	if c.Pipeline.ProgressStrideUpload < 1 {
		return fmt.Errorf("config: pipeline.progress_stride_upload must be >= 1, got %d", c.Pipeline.ProgressStrideUpload)
	}

	return nil
}

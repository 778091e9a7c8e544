package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "biotriage"
	DefaultDBMaxConns = 25

	DefaultRedisDB        = 0
	DefaultRedisKeyPrefix = "biotriage:"

	DefaultModelID        = "affinity-gnn-v4"
	DefaultModelBatchSize = 64
	DefaultModelTimeoutMs = 5000

	DefaultModelServingEndpoint = "http://localhost:8501"
	DefaultChemEndpoint         = "http://localhost:8601"
	DefaultChemTimeoutMs        = 10000

	DefaultLLMTimeoutMs      = 60000
	DefaultLLMTemperature    = 0.7
	DefaultLLMMaxOutputChars = 8192

	DefaultProgressStrideAuto   = 50
	DefaultProgressStrideUpload = 10

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// DefaultLLMModels is the narrative-generation fallback priority list.  The
// first reachable model wins; later entries are stable fallbacks.
func DefaultLLMModels() []string {
	return []string{
		"gemini-2.5-flash",
		"gemini-2.5-pro",
		"gemini-2.0-flash",
		"gemini-flash-latest",
	}
}

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must be called
// after unmarshalling raw config data and before Validate().
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		// Catalog-scale scans answer synchronously; give them room.
		cfg.Server.WriteTimeout = 120 * time.Second
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 16 << 20 // 16 MiB
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}

	// ── Database ──────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = time.Hour
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = 24 * time.Hour
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}

	// ── Model ─────────────────────────────────────────────────────────────────
	if cfg.Model.ModelID == "" {
		cfg.Model.ModelID = DefaultModelID
	}
	if cfg.Model.BatchSize == 0 {
		cfg.Model.BatchSize = DefaultModelBatchSize
	}
	if cfg.Model.TimeoutMs == 0 {
		cfg.Model.TimeoutMs = DefaultModelTimeoutMs
	}
	if cfg.Model.ServingEndpoint == "" {
		cfg.Model.ServingEndpoint = DefaultModelServingEndpoint
	}

	// ── Chem ──────────────────────────────────────────────────────────────────
	if cfg.Chem.Endpoint == "" {
		cfg.Chem.Endpoint = DefaultChemEndpoint
	}
	if cfg.Chem.TimeoutMs == 0 {
		cfg.Chem.TimeoutMs = DefaultChemTimeoutMs
	}

	// ── LLM ───────────────────────────────────────────────────────────────────
	if len(cfg.LLM.Models) == 0 {
		cfg.LLM.Models = DefaultLLMModels()
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = DefaultLLMTemperature
	}
	if cfg.LLM.TimeoutMs == 0 {
		cfg.LLM.TimeoutMs = DefaultLLMTimeoutMs
	}
	if cfg.LLM.MaxOutputChars == 0 {
		cfg.LLM.MaxOutputChars = DefaultLLMMaxOutputChars
	}

	// ── Pipeline ──────────────────────────────────────────────────────────────
	if cfg.Pipeline.ProgressStrideAuto == 0 {
		cfg.Pipeline.ProgressStrideAuto = DefaultProgressStrideAuto
	}
	if cfg.Pipeline.ProgressStrideUpload == 0 {
		cfg.Pipeline.ProgressStrideUpload = DefaultProgressStrideUpload
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

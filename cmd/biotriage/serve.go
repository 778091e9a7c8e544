package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/BioTriage/internal/application/triage"
	"github.com/turtacn/BioTriage/internal/config"
	"github.com/turtacn/BioTriage/internal/infrastructure/catalog"
	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
	"github.com/turtacn/BioTriage/internal/infrastructure/monitoring"
	"github.com/turtacn/BioTriage/internal/infrastructure/resolvecache"
	"github.com/turtacn/BioTriage/internal/intelligence/affinity"
	"github.com/turtacn/BioTriage/internal/intelligence/chemistry"
	"github.com/turtacn/BioTriage/internal/intelligence/common"
	"github.com/turtacn/BioTriage/internal/intelligence/narrative"
	httpserver "github.com/turtacn/BioTriage/internal/interfaces/http"
	"github.com/turtacn/BioTriage/internal/interfaces/http/handlers"
	"github.com/turtacn/BioTriage/internal/interfaces/http/middleware"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the BioTriage API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)
	intelLogger := newKVLogger(logger)

	logger.Info("starting biotriage",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port))

	metrics := monitoring.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Drug catalog ──────────────────────────────────────────────────────────
	conn, err := catalog.NewConnection(postgresConfig(cfg), logger)
	if err != nil {
		return fmt.Errorf("catalog connection failed: %w", err)
	}
	defer conn.Close()

	store, err := catalog.NewStore(conn, logger)
	if err != nil {
		return err
	}

	// ── Structure and target resolution ───────────────────────────────────────
	resolver, err := chemistry.NewDictionaryResolver(
		chemistry.DefaultDrugDictionary(), chemistry.DefaultResolverConfig(), intelLogger)
	if err != nil {
		return err
	}

	var structures chemistry.StructureResolver = resolver
	if cfg.Redis.Addr != "" {
		cacheCfg := resolvecache.Config{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			KeyPrefix:   cfg.Redis.KeyPrefix,
			TTL:         cfg.Redis.DefaultTTL,
			DialTimeout: cfg.Redis.DialTimeout,
		}
		cached, err := resolvecache.New(resolver, resolvecache.NewRedisClient(cacheCfg), cacheCfg, logger)
		if err != nil {
			return err
		}
		structures = cached
		logger.Info("resolution cache enabled", logging.String("addr", cfg.Redis.Addr))
	}

	targets := chemistry.NewInMemoryTargetIndex(chemistry.DefaultTargetSequences())

	// ── Cheminformatics sidecar ───────────────────────────────────────────────
	chem, err := chemistry.NewRemoteService(chemistry.RemoteServiceConfig{
		Endpoint:  cfg.Chem.Endpoint,
		TimeoutMs: cfg.Chem.TimeoutMs,
	}, intelLogger)
	if err != nil {
		return err
	}

	// ── Affinity model ────────────────────────────────────────────────────────
	backend, err := common.NewHTTPBackend(common.HTTPBackendConfig{
		Endpoint:  cfg.Model.ServingEndpoint,
		TimeoutMs: cfg.Model.TimeoutMs,
	})
	if err != nil {
		return err
	}

	manager, err := affinity.NewModelManager(&affinity.ModelConfig{
		ModelID:         cfg.Model.ModelID,
		ModelVersion:    cfg.Model.ModelVersion,
		ServingEndpoint: cfg.Model.ServingEndpoint,
		BatchSize:       cfg.Model.BatchSize,
		TimeoutMs:       cfg.Model.TimeoutMs,
		WarmupOnLoad:    cfg.Model.WarmupOnLoad,
	}, backend, intelLogger, metrics)
	if err != nil {
		return err
	}
	// Scans still answer (with floor scores) when the model is unavailable,
	// so a failed load keeps the server up and /readyz not ready.
	if err := manager.Load(ctx); err != nil {
		logger.Error("affinity model load failed", logging.Err(err))
	}

	scorer, err := affinity.NewBatchScorer(manager, intelLogger, metrics)
	if err != nil {
		return err
	}

	// ── Narrative engine ──────────────────────────────────────────────────────
	var llmClient narrative.ModelClient
	if cfg.LLM.Enabled {
		client, err := narrative.NewGeminiClient(narrative.GeminiClientConfig{
			Endpoint:    cfg.LLM.Endpoint,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			TimeoutMs:   cfg.LLM.TimeoutMs,
		})
		if err != nil {
			return err
		}
		llmClient = client
	} else {
		logger.Warn("narrative engine disabled, responses degrade to offline records")
	}
	engine := narrative.NewEngine(llmClient, narrative.Config{
		Enabled: cfg.LLM.Enabled,
		Models:  cfg.LLM.Models,
	}, intelLogger, metrics)

	// ── Application service ───────────────────────────────────────────────────
	service, err := triage.NewService(triage.Deps{
		Structures: structures,
		Targets:    targets,
		Featurizer: chem,
		ADMET:      chem,
		Pharma:     chem,
		Catalog:    store,
		Scorer:     scorer,
		Narrator:   engine,
		Logger:     logger,
		Metrics:    metrics,
	}, triage.Config{
		ProgressStrideAuto:   cfg.Pipeline.ProgressStrideAuto,
		ProgressStrideUpload: cfg.Pipeline.ProgressStrideUpload,
		AutoEnrichment:       cfg.Pipeline.AutoEnrichment,
	})
	if err != nil {
		return err
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	health := handlers.NewHealthHandler(version,
		handlers.CheckerFunc{ComponentName: "postgres", Fn: conn.HealthCheck},
		handlers.CheckerFunc{ComponentName: "chem_sidecar", Fn: chem.Healthy},
		handlers.CheckerFunc{ComponentName: "affinity_model", Fn: func(context.Context) error {
			if !manager.Ready() {
				return fmt.Errorf("model state %s", manager.State())
			}
			return nil
		}},
	)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		TriageHandler:  handlers.NewTriageHandler(service, cfg.Server.MaxUploadBytes, logger),
		HealthHandler:  health,
		MetricsHandler: metrics.Handler(),
		Metrics:        metrics,
		CORS:           middleware.DefaultCORSConfig(),
		Logging:        middleware.DefaultLoggingConfig(),
		Logger:         logger,
	})

	server := httpserver.NewServer(httpserver.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := server.Stop(context.Background()); err != nil {
		return err
	}
	if err := manager.Unload(context.Background()); err != nil {
		logger.Warn("model unload failed", logging.Err(err))
	}
	return nil
}

// Inkwell server: enriches DMS documents through the LLM pipeline,
// serves the review-queue API, and runs the background scheduler and
// maintenance jobs.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/inkwell-ai/inkwell/pkg/api"
	"github.com/inkwell-ai/inkwell/pkg/cleanup"
	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/database"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/history"
	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/ocr"
	"github.com/inkwell-ai/inkwell/pkg/pipeline"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
	"github.com/inkwell-ai/inkwell/pkg/review"
	"github.com/inkwell-ai/inkwell/pkg/scheduler"
	"github.com/inkwell-ai/inkwell/pkg/settings"
	"github.com/inkwell-ai/inkwell/pkg/vector"
	"github.com/inkwell-ai/inkwell/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting inkwell",
		"version", version.GitCommit,
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.Debug.LogLevel)

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	dmsClient, err := dms.NewClient(cfg.DMS, logger)
	if err != nil {
		logger.Error("Failed to create DMS client", "error", err)
		os.Exit(1)
	}
	if err := dmsClient.RefreshTagCache(ctx); err != nil {
		logger.Warn("Could not prime DMS tag cache, will retry on demand", "error", err)
	}

	analyst, reviewer, embedder, describer, err := buildLLMClients(cfg, logger)
	if err != nil {
		logger.Error("Failed to create LLM clients", "error", err)
		os.Exit(1)
	}

	prompts, err := prompt.NewBuilder(cfg.PromptLanguage)
	if err != nil {
		logger.Error("Failed to build prompt templates", "error", err)
		os.Exit(1)
	}

	ocrProvider, err := ocr.NewProvider(cfg.OCR, logger)
	if err != nil {
		logger.Error("Failed to create OCR provider", "error", err)
		os.Exit(1)
	}

	var indexer *vector.Indexer
	if cfg.VectorSearch.Enabled && embedder != nil {
		store, err := vector.NewHTTPStore(cfg.VectorStore)
		if err != nil {
			logger.Error("Failed to create vector store client", "error", err)
			os.Exit(1)
		}
		indexer = vector.NewIndexer(store, embedder, cfg.Tags.All(), logger)
		logger.Info("Vector search enabled", "collection", cfg.VectorStore.Collection)
	}

	// Streaming infrastructure: persisted events, pg NOTIFY fan-out, and
	// the NDJSON subscriber manager.
	eventStore := events.NewStore(dbClient.DB())
	eventPublisher := events.NewPublisher(dbClient.DB())
	subscribers := events.NewSubscriberManager(eventStore)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), subscribers)
	if err := notifyListener.Start(ctx); err != nil {
		logger.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(context.Background())
	subscribers.SetListener(notifyListener)

	recorder := history.NewRecorder(dbClient.Client, cfg.Debug.SaveProcessingHistory, logger)
	blocklist := review.NewBlocklist(dbClient.Client)
	applier := pipeline.NewApplier(cfg, dmsClient, logger)
	reviews := review.NewService(dbClient.Client, applier, recorder, logger)
	settingsService := settings.NewService(dbClient.Client)

	orchestrator := pipeline.NewOrchestrator(pipeline.Deps{
		Config:    cfg,
		DMS:       dmsClient,
		Analyst:   analyst,
		Reviewer:  reviewer,
		Prompts:   prompts,
		OCR:       ocrProvider,
		Indexer:   indexer,
		Reviews:   reviews,
		Blocklist: blocklist,
		Recorder:  recorder,
		Publisher: eventPublisher,
		Ent:       dbClient.Client,
		Logger:    logger,
	})

	activity := scheduler.NewActivityTracker()
	jobs := scheduler.NewJobStore(dbClient.Client)
	sched := scheduler.New(cfg, dmsClient, orchestrator, reviews, jobs, activity, logger)
	if cfg.AutoProcessing.Enabled {
		go func() {
			if err := sched.Run(ctx); err != nil {
				logger.Error("Scheduler stopped with error", "error", err)
			}
		}()
	}

	maintenance := cleanup.NewService(cfg.Maintenance, dbClient.Client, dmsClient,
		reviews, recorder, eventStore, describer, prompts, logger)
	if err := maintenance.Start(ctx); err != nil {
		logger.Error("Failed to start maintenance jobs", "error", err)
		os.Exit(1)
	}
	defer maintenance.Stop()

	server := api.NewServer(api.ServerDeps{
		Config:       cfg,
		DB:           dbClient,
		Orchestrator: orchestrator,
		Reviews:      reviews,
		Blocklist:    blocklist,
		Settings:     settingsService,
		Recorder:     recorder,
		Scheduler:    sched,
		Jobs:         jobs,
		Activity:     activity,
		Subscribers:  subscribers,
		Maintenance:  maintenance,
		Logger:       logger,
	})

	stats := cfg.Stats()
	logger.Info("Inkwell started",
		"llm_providers", stats.LLMProviders,
		"enabled_stages", stats.EnabledStages,
		"auto_processing", cfg.AutoProcessing.Enabled)

	if err := server.Run(ctx, ":"+httpPort); err != nil {
		logger.Error("HTTP server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Shutdown complete")
}

// buildLLMClients resolves the configured model roles. The embedding
// role is required only when vector search is enabled; the translation
// role is optional and falls back to the large model for entity
// descriptions.
func buildLLMClients(cfg *config.Config, logger *slog.Logger) (analyst, reviewer llm.Client, embedder llm.Embedder, describer llm.Client, err error) {
	large, err := cfg.ProviderForRole(config.RoleLarge)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	small, err := cfg.ProviderForRole(config.RoleSmall)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	analyst = llm.NewHTTPClient(large, logger)
	reviewer = llm.NewHTTPClient(small, logger)
	describer = analyst

	if translation, tErr := cfg.ProviderForRole(config.RoleTranslation); tErr == nil {
		describer = llm.NewHTTPClient(translation, logger)
	}
	if cfg.VectorSearch.Enabled {
		embedding, eErr := cfg.ProviderForRole(config.RoleEmbedding)
		if eErr != nil {
			return nil, nil, nil, nil, eErr
		}
		embedder = llm.NewHTTPClient(embedding, logger)
	}
	return analyst, reviewer, embedder, describer, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

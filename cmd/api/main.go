// Package main provides the entrypoint for the FitAdvisor API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitadvisor/fitadvisor/internal/api"
	"github.com/fitadvisor/fitadvisor/internal/api/middleware"
	"github.com/fitadvisor/fitadvisor/internal/auth"
	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/classifier"
	"github.com/fitadvisor/fitadvisor/internal/database"
	"github.com/fitadvisor/fitadvisor/internal/recommend"
	"github.com/fitadvisor/fitadvisor/internal/telemetry"
	"github.com/fitadvisor/fitadvisor/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "fitadvisor-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting FitAdvisor API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Build the catalog source chain: Postgres when configured, then the
	// remote dataset, then the local CSV. The loader falls back to the
	// built-in sample catalog when every source fails.
	var sources []catalog.Source

	if os.Getenv("DB_HOST") != "" {
		dbConfig := database.ConfigFromEnv()
		pool, dbErr := database.Connect(ctx, dbConfig)
		if dbErr != nil {
			log.Error().Err(dbErr).Msg("failed to connect to database, skipping postgres catalog source")
		} else {
			defer pool.Close()
			log.Info().
				Str("host", dbConfig.Host).
				Int("port", dbConfig.Port).
				Str("database", dbConfig.Database).
				Msg("database connected")
			sources = append(sources, catalog.NewPostgresSource(pool))
		}
	}

	if catalogURL := os.Getenv("CATALOG_URL"); catalogURL != "" {
		sources = append(sources, catalog.NewRemoteSource(catalog.RemoteSourceConfig{
			URL: catalogURL,
		}))
	}

	csvPath := os.Getenv("CATALOG_PATH")
	if csvPath == "" {
		csvPath = "data/exercises.csv"
	}
	sources = append(sources, &catalog.FileSource{Path: csvPath})

	loader := catalog.NewLoader(ctx, catalog.LoaderConfig{
		Sources: sources,
		Logger:  log,
	})

	// Initialize the classifier. A missing model disables the endpoint
	// but not the server.
	modelPath := os.Getenv("CLASSIFIER_MODEL_PATH")
	if modelPath == "" {
		modelPath = "data/level_classifier.json"
	}
	classifierService := classifier.NewService(classifier.ServiceConfig{
		ModelPath: modelPath,
		Logger:    log,
	})

	// Initialize the recommendation service
	recommendService := recommend.NewService(recommend.ServiceConfig{
		Catalog: loader.Store(),
		Logger:  log,
	})
	log.Info().Msg("recommendation service initialized")

	// Initialize admin token validation (reload endpoint)
	signingKey := os.Getenv("ADMIN_JWT_SIGNING_KEY")
	if signingKey == "" {
		signingKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default admin signing key - not secure for production")
	}
	tokenValidator := auth.NewTokenValidator(auth.TokenValidatorConfig{
		SigningKey: signingKey,
		Issuer:     os.Getenv("ADMIN_JWT_ISSUER"),
	})

	// Optionally listen for catalog reload messages
	listenerCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()

	if projectID := os.Getenv("PUBSUB_PROJECT_ID"); projectID != "" {
		subscription := os.Getenv("PUBSUB_RELOAD_SUBSCRIPTION")
		if subscription == "" {
			subscription = "catalog-reload"
		}

		listener, listenerErr := worker.NewReloadListener(listenerCtx, worker.ReloadListenerConfig{
			ProjectID:        projectID,
			SubscriptionName: subscription,
			Loader:           loader,
			Logger:           log,
		})
		if listenerErr != nil {
			log.Error().Err(listenerErr).Msg("failed to create reload listener")
		} else {
			defer listener.Close()
			go func() {
				if recvErr := listener.Start(listenerCtx); recvErr != nil {
					log.Error().Err(recvErr).Msg("reload listener stopped")
				}
			}()
		}
	}

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:           Version,
		BuildTime:         BuildTime,
		Logger:            log,
		ServiceName:       serviceName,
		Metrics:           metrics,
		CatalogLoader:     loader,
		RecommendService:  recommendService,
		ClassifierService: classifierService,
		TokenValidator:    tokenValidator,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	stopListener()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

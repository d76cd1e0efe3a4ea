package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clinicware/clinic-assist/internal/api/handlers"
	"github.com/clinicware/clinic-assist/internal/api/routes"
	"github.com/clinicware/clinic-assist/internal/application/services"
	"github.com/clinicware/clinic-assist/internal/infrastructure/clients/diagnosisapi"
	"github.com/clinicware/clinic-assist/internal/infrastructure/observability"
	"github.com/clinicware/clinic-assist/internal/ui/views"
	"github.com/clinicware/clinic-assist/internal/ui/viewstate"
	"github.com/clinicware/clinic-assist/pkg/config"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize the diagnosis service client
	apiClient := diagnosisapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	logger.Info().Str("base_url", cfg.Backend.BaseURL).Msg("diagnosis service client initialized")

	// Initialize services
	diagnosisService := services.NewDiagnosisService(apiClient, metrics)
	medicineService := services.NewMedicineService(apiClient, metrics)
	catalogService := services.NewSymptomCatalogService(apiClient, cfg.Catalog.TTL, metrics)

	// Warm the symptom catalog in the background so the first page load
	// already has suggestions. Failures are retried and never fatal.
	go func() {
		if err := catalogService.Warm(ctx); err != nil {
			logger.Warn().Err(err).Msg("symptom catalog warm-up failed")
		}
	}()

	state := viewstate.New()
	renderer, err := views.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse page templates")
	}

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(state, catalogService, renderer)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService, state)
	medicineHandler := handlers.NewMedicineHandler(medicineService, state)
	symptomsHandler := handlers.NewSymptomsHandler(catalogService)

	// Set up router
	router := routes.NewRouter(
		pageHandler,
		diagnosisHandler,
		medicineHandler,
		symptomsHandler,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := cfg.Server.ServerAddr()
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}

// Glucose Dashboard API
//
// Chart data for the glucose and meal-log dashboard.
//
//	@title			Glucose Dashboard API
//	@version		1.0
//	@description	Chart data for the glucose and meal-log dashboard: carbohydrate distribution and post-meal glucose response.
//
//	@BasePath	/v1
//
//	@tag.name			datasets
//	@tag.description	Patients and meal tags of the loaded datasets
//
//	@tag.name			charts
//	@tag.description	Carbohydrate distribution and glucose response series
//
//	@tag.name			sessions
//	@tag.description	Per-viewer filter selection and dashboard recomputation
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/api"
	"github.com/blaisecz/glucose-dashboard/internal/api/handler"
	"github.com/blaisecz/glucose-dashboard/internal/config"
	"github.com/blaisecz/glucose-dashboard/internal/dataset"
	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/blaisecz/glucose-dashboard/internal/repository"
	"github.com/blaisecz/glucose-dashboard/internal/seed"
	"github.com/blaisecz/glucose-dashboard/internal/service"
	"github.com/blaisecz/glucose-dashboard/internal/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Invalid configuration", "error", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	logging.SetGlobal(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "glucose-dashboard-api")
	if err != nil {
		logger.Fatal("Failed to initialize tracing", "error", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("Failed to shut down tracer", "error", err)
		}
	}()

	// Initialize dataset source
	datasetRepo, err := newDatasetRepository(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize dataset source", "error", err, "source", cfg.DataSource)
	}
	store := dataset.NewStore(datasetRepo)

	// Initialize services
	chartService := service.NewChartService(store, cfg.ChartConfig())
	sessionService := service.NewSessionService(repository.NewMemorySessionRepository(), store, chartService)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(store)
	chartHandler := handler.NewChartHandler(chartService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	// Setup router
	router := api.NewRouter(healthHandler, chartHandler, sessionHandler, logger)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Load datasets in the background; endpoints answer 503 until ready
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
		defer cancel()
		_ = store.Load(loadCtx)
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
		}
	}()

	// Start server
	logger.Info("Starting server", "addr", server.Addr, "data_source", cfg.DataSource)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed", "error", err)
	}
	logger.Info("Server stopped")
}

func newDatasetRepository(ctx context.Context, cfg *config.Config) (repository.DatasetRepository, error) {
	jsonRepo := repository.NewJSONDatasetRepository(cfg.GlucoseData, cfg.MealData, &http.Client{Timeout: cfg.HTTPTimeout})
	if cfg.DataSource != config.DataSourcePostgres {
		return jsonRepo, nil
	}

	// Connect to database
	db, err := config.NewDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Seed {
		logging.Info("Seeding database from JSON datasets (SEED=true)...")
		if _, err := seed.Run(ctx, repository.NewImportRepository(db), jsonRepo); err != nil {
			return nil, err
		}
	}

	return repository.NewPostgresDatasetRepository(db), nil
}

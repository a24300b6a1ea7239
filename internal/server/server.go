// Package server bootstraps the API process: logging, dataset load,
// chart service, router, and graceful shutdown. Both the api binary and
// the mfctl serve command run through it.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dkellis099/Model-Screener/internal/api/middleware"
	"github.com/dkellis099/Model-Screener/internal/api/router"
	"github.com/dkellis099/Model-Screener/internal/infra/fmp"
	"github.com/dkellis099/Model-Screener/internal/pkg/config"
	"github.com/dkellis099/Model-Screener/internal/pkg/logger"
	"github.com/dkellis099/Model-Screener/internal/service/chart"
	"github.com/dkellis099/Model-Screener/internal/store"
)

const (
	serviceName    = "model-screener-api"
	serviceVersion = "1.0.0"
)

// Run starts the API server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func Run(cfg *config.Config) error {
	if err := logger.Init(logger.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FileEnabled:    cfg.Logging.FileEnabled,
		FilePath:       cfg.Logging.FilePath,
		RotationSize:   cfg.Logging.RotationSize,
		RetentionDays:  cfg.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	gin.SetMode(ginMode(cfg.Server.Mode))

	log.Info().Str("version", serviceVersion).Msg("Starting Model Screener API server")

	// Dataset load failure is not fatal: the server comes up with an
	// empty snapshot and the UI shows its empty state.
	dataStore := store.New(cfg.Dataset.Path)
	if err := dataStore.Load(); err != nil {
		log.Error().Err(err).Msg("Dataset load failed, serving empty dataset")
	}

	if cfg.FMP.APIKey == "" {
		log.Warn().Msg("FMP_API_KEY not set, chart fetches will fail upstream")
	}
	fmpClient := fmp.NewClient(cfg.FMP.BaseURL, cfg.FMP.APIKey)
	chartSvc := chart.NewService(fmpClient, cfg.Chart.CacheTTL)

	var accessLogger *zerolog.Logger
	if cfg.Logging.FileEnabled {
		al := logger.NewAccessLogger(cfg.Logging.FilePath, cfg.Logging.RotationSize, cfg.Logging.RetentionDays)
		accessLogger = &al
	}

	cors := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		cors.AllowOrigins = cfg.CORS.AllowOrigins
	}

	engine := router.New(router.Config{
		Store:        dataStore,
		Charts:       chartSvc,
		AccessLogger: accessLogger,
		CORS:         cors,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("address", addr).Msg("API server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start API server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Model Screener API server stopped")
	return nil
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}

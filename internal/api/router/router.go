// Package router wires the HTTP surface: middleware stack plus the
// dashboard endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkellis099/Model-Screener/internal/api/handlers"
	"github.com/dkellis099/Model-Screener/internal/api/middleware"
	"github.com/dkellis099/Model-Screener/internal/service/chart"
	"github.com/dkellis099/Model-Screener/internal/store"
)

// Config holds router configuration.
type Config struct {
	Store        *store.Store
	Charts       *chart.Service
	AccessLogger *zerolog.Logger
	CORS         middleware.CORSConfig
}

// New builds the gin engine with the full middleware stack and all routes
// registered.
func New(cfg Config) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logging(middleware.LoggingConfig{
		AccessLogger: cfg.AccessLogger,
		SkipPaths:    []string{"/health"},
	}))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.CORS))

	healthHandler := handlers.NewHealthHandler(cfg.Store)
	stocksHandler := handlers.NewStocksHandler(cfg.Store)
	sectorsHandler := handlers.NewSectorsHandler(cfg.Store)
	exportHandler := handlers.NewExportHandler(cfg.Store)
	chartHandler := handlers.NewChartHandler(cfg.Store, cfg.Charts)

	engine.GET("/health", healthHandler.Check)

	api := engine.Group("/api")
	{
		api.GET("/stocks", stocksHandler.List)
		api.GET("/stocks/export", exportHandler.Download)
		api.GET("/stocks/:symbol/history", chartHandler.History)
		api.GET("/sectors", sectorsHandler.List)
	}

	return engine
}

package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/marketpulse/config"
	"github.com/guttosm/marketpulse/internal/api"
	"github.com/guttosm/marketpulse/internal/ingestion"
	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/market"
	"github.com/guttosm/marketpulse/internal/service"
)

// catalogLoader is an indirection for unit testing; defaults to ingestion.LoadCatalog.
var catalogLoader = ingestion.LoadCatalog

// NewMarket builds the market registry from the provided configuration.
//
// Parameters:
//   - cfg (config.Config): The application configuration with market settings.
//
// Returns:
//   - *market.Market: an empty registry with the configured retention window.
func NewMarket(cfg config.Config) *market.Market {
	return market.New(cfg.Market.Retention())
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the market registry with the configured retention window.
//   - Loads the stock catalog into the registry.
//   - Initializes the service layer (MarketService).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Create the market registry
	m := NewMarket(cfg)

	// Load the stock catalog
	// indirection for unit testing
	loaded, err := catalogLoader(cfg.Market.CatalogPath, m)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stock catalog: %w", err)
	}
	logger.L().Info().Int("stocks", loaded).Str("catalog", cfg.Market.CatalogPath).Msg("catalog loaded")

	// Initialize service layer (business logic)
	svc := service.NewMarketService(m)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		if m.Len() == 0 {
			return fmt.Errorf("stock catalog not loaded")
		}
		return nil
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown (nothing external to release yet)
	cleanup := func() {}

	return router, cleanup, nil
}

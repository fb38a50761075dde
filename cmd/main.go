package main

//
//  @title           marketpulse API
//  @version         1.0
//  @description     In-memory stock market: trade recording & financial metrics service.
//  @termsOfService  https://github.com/guttosm/marketpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/marketpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Endpoints for registering stocks and querying per-stock metrics
//
//  @tag.name        trades
//  @tag.description Endpoints for recording trade executions
//
//  @tag.name        index
//  @tag.description Endpoints for the all-share index and price refresh
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/marketpulse/config"
	_ "github.com/guttosm/marketpulse/docs" // swagger docs
	"github.com/guttosm/marketpulse/internal/app"
	"github.com/guttosm/marketpulse/internal/ingestion"
	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runReplay loads the catalog, replays every trade file from dir, writes the
// volume-weighted prices back, and logs the resulting all-share index.
func runReplay(ctx context.Context, catalog, dir string, parallel int) error {
	m := app.NewMarket(config.AppConfig)

	loaded, err := ingestion.LoadCatalog(catalog, m)
	if err != nil {
		return err
	}
	logger.L().Info().Int("stocks", loaded).Str("catalog", catalog).Msg("catalog loaded")

	rows, err := ingestion.ReplayDirectory(ctx, dir, m, parallel)
	if err != nil {
		return err
	}
	logger.L().Info().Int("rows", rows).Msg("trades replayed")

	svc := service.NewMarketService(m)
	updated, err := svc.RefreshPrices(ctx)
	if err != nil {
		return err
	}
	logger.L().Info().Int("updated_prices", updated).Msg("prices refreshed")

	index, err := svc.AllShareIndex(ctx)
	if err != nil {
		return err
	}
	logger.L().Info().Float64("all_share_index", index).Msg("replay completed")
	return nil
}

// main is the entry point of the marketpulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API serving the market registry.
//   - replay: Loads the catalog, replays trade CSV files, and logs the index.
//
// Flags:
//   - --mode:     Execution mode ("api" or "replay"). Default: "api".
//   - --catalog:  Stock catalog CSV. Defaults to value from config (MARKET_CATALOG).
//   - --dir:      Directory with *_TRADES.csv files. Defaults to config (MARKET_TRADES_DIR).
//   - --parallel: How many trade files to process concurrently (0=auto up to CPU, max 7).
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or replay")
	catalog := flag.String("catalog", config.AppConfig.Market.CatalogPath, "Stock catalog CSV file")
	dir := flag.String("dir", config.AppConfig.Market.TradesDir, "Directory with trade CSV files")
	parallel := flag.Int("parallel", 0, "How many trade files to process concurrently (0=auto up to CPU, max 7)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "replay":
		// Replay mode: feed trade files through the registry and report
		logger.L().Info().Msg("running trade replay")

		if err := runReplay(ctx, *catalog, *dir, *parallel); err != nil {
			logger.L().Fatal().Err(err).Msg("replay failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

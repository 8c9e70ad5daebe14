package main

//
//  @title           indexpulse API
//  @version         1.0
//  @description     Equity index constituent aggregation service.
//  @termsOfService  https://github.com/guttosm/indexpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/indexpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        index
//  @tag.description Aggregate reports over index constituents
//
//  @tag.name        stock
//  @tag.description Per-symbol live quotes and historical data
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/indexpulse/config"
	_ "github.com/guttosm/indexpulse/docs" // swagger docs
	"github.com/guttosm/indexpulse/internal/app"
	"github.com/guttosm/indexpulse/internal/domain/dto"
	"github.com/guttosm/indexpulse/internal/domain/models"
	"github.com/guttosm/indexpulse/internal/logger"
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
		WriteTimeout:      90 * time.Second,
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

// runReport executes one aggregation for the given index and prints the
// report JSON to stdout.
func runReport(ctx context.Context, name string) error {
	index, ok := models.ParseIndexKind(strings.ToUpper(strings.TrimSpace(name)))
	if !ok {
		return errors.New("unrecognized index: " + name)
	}

	svc := app.BuildReportService(config.AppConfig)
	report, err := svc.Service.IndexReport(ctx, index)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewReportResponse(report))
}

// main is the entry point of the indexpulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API exposing index, stock, and historical endpoints.
//   - report: Runs one aggregation for --index and prints the report JSON.
//
// Flags:
//   - --mode:  Execution mode ("api" or "report"). Default: "api".
//   - --index: Index for report mode ("NIFTY50" or "SENSEX"). Default: "NIFTY50".
//   - --port:  Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or report")
	index := flag.String("index", "NIFTY50", "Index for report mode (NIFTY50 or SENSEX)")
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

	case "report":
		// Report mode: one-shot aggregation to stdout
		logger.L().Info().Str("index", *index).Msg("running one-shot report")
		if err := runReport(ctx, *index); err != nil {
			logger.L().Fatal().Err(err).Msg("report failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/indexpulse/config"
	"github.com/guttosm/indexpulse/internal/api"
	"github.com/guttosm/indexpulse/internal/constituents"
	"github.com/guttosm/indexpulse/internal/quotes"
	"github.com/guttosm/indexpulse/internal/service"
	"github.com/guttosm/indexpulse/internal/upstream"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the shared upstream Session (cookie jar + warm-up).
//   - Initializes the upstream clients (exchange, historical backend).
//   - Wires the constituent resolver (remote + static providers) behind
//     a TTL cache.
//   - Wires the snapshot fetcher over the historical-info backend and
//     the live backend for the single-stock endpoint.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	svc := BuildReportService(cfg)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc.Service)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(svc.Session.WarmUp)
	healthHandler.Register(router)

	// No held connections; cleanup is a no-op kept for shutdown symmetry.
	cleanup := func() {}

	return router, cleanup, nil
}

// Services bundles the wired service with the shared session, so callers
// (HTTP bootstrap, one-shot report mode) can reuse both.
type Services struct {
	Service service.ReportService
	Session *upstream.Session
}

// BuildReportService wires the full dependency graph from configuration.
//
// The graph, leaf-first:
//
//	Session → NSEClient  → live backend  ┐
//	          YahooClient → historical backend → Fetcher → ReportService
//	          NSEClient  → remote provider ┐
//	                       static provider ┴→ Resolver → TTL cache ┘
func BuildReportService(cfg config.Config) Services {
	session := upstream.NewSession(cfg.Upstream.NSEBaseURL, cfg.Upstream.Timeout)
	nse := upstream.NewNSEClient(session, cfg.Upstream.NSEBaseURL, cfg.Upstream.NSEArchivesURL)
	yahoo := upstream.NewYahooClient(cfg.Upstream.YahooBaseURL, cfg.Upstream.Timeout, cfg.Upstream.HistoryTimeout)

	resolver := constituents.NewCachedResolver(
		constituents.NewResolver(
			constituents.NewNSEProvider(nse),
			constituents.NewSensexProvider(),
		),
		cfg.Fetch.ConstituentsTTL,
	)

	fetcher := quotes.NewFetcher(quotes.NewHistoricalBackend(yahoo), nse.DetailLink)
	live := quotes.NewLiveBackend(nse)

	svc := service.NewReportService(resolver, fetcher, live, yahoo, cfg.Fetch.Parallel)
	return Services{Service: svc, Session: session}
}

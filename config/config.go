package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, upstream data sources, and fetch tuning.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	NSE_BASE_URL=https://www.nseindia.com
//	NSE_ARCHIVES_URL=https://nsearchives.nseindia.com
//	YAHOO_BASE_URL=https://query1.finance.yahoo.com
//	HTTP_TIMEOUT_SECONDS=10
//	HISTORY_TIMEOUT_SECONDS=15
//	FETCH_PARALLEL=8
//	CONSTITUENTS_TTL_SECONDS=3600
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Upstream data source endpoints and timeouts
	Fetch    FetchConfig    // Snapshot fetch tuning
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines the endpoints and timeouts of external data sources.
//
// Fields:
//   - NSEBaseURL: landing page of the exchange; also the warm-up target for session cookies.
//   - NSEArchivesURL: host serving the index constituent CSV documents.
//   - YahooBaseURL: host serving the historical-info backend (quote + chart endpoints).
//   - Timeout: bound for regular upstream requests (constituent CSV, live quote).
//   - HistoryTimeout: bound for history requests (slower endpoint).
type UpstreamConfig struct {
	NSEBaseURL     string
	NSEArchivesURL string
	YahooBaseURL   string
	Timeout        time.Duration
	HistoryTimeout time.Duration
}

// FetchConfig tunes the per-index snapshot batch.
//
// Fields:
//   - Parallel: maximum concurrent per-symbol fetches (clamped to 1..16).
//   - ConstituentsTTL: how long a resolved constituent list is cached.
type FetchConfig struct {
	Parallel        int
	ConstituentsTTL time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Clamps FETCH_PARALLEL into the 1..16 range.
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("NSE_BASE_URL", "https://www.nseindia.com")
	viper.SetDefault("NSE_ARCHIVES_URL", "https://nsearchives.nseindia.com")
	viper.SetDefault("YAHOO_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("HISTORY_TIMEOUT_SECONDS", 15)
	viper.SetDefault("FETCH_PARALLEL", 8)
	viper.SetDefault("CONSTITUENTS_TTL_SECONDS", 3600)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	parallel := viper.GetInt("FETCH_PARALLEL")
	if parallel < 1 {
		parallel = 1
	}
	if parallel > 16 {
		parallel = 16
	}

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			NSEBaseURL:     viper.GetString("NSE_BASE_URL"),
			NSEArchivesURL: viper.GetString("NSE_ARCHIVES_URL"),
			YahooBaseURL:   viper.GetString("YAHOO_BASE_URL"),
			Timeout:        time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
			HistoryTimeout: time.Duration(viper.GetInt("HISTORY_TIMEOUT_SECONDS")) * time.Second,
		},
		Fetch: FetchConfig{
			Parallel:        parallel,
			ConstituentsTTL: time.Duration(viper.GetInt("CONSTITUENTS_TTL_SECONDS")) * time.Second,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.NSEBaseURL == "" {
		missing = append(missing, "NSE_BASE_URL")
	}
	if AppConfig.Upstream.NSEArchivesURL == "" {
		missing = append(missing, "NSE_ARCHIVES_URL")
	}
	if AppConfig.Upstream.YahooBaseURL == "" {
		missing = append(missing, "YAHOO_BASE_URL")
	}
	if AppConfig.Upstream.Timeout <= 0 {
		missing = append(missing, "HTTP_TIMEOUT_SECONDS")
	}
	if AppConfig.Upstream.HistoryTimeout <= 0 {
		missing = append(missing, "HISTORY_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

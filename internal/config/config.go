// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreDriver selects the record store: "file" (default) or "postgres".
	StoreDriver string

	// StorePath is the JSON source of the file store. Defaults to "stories.json".
	StorePath string

	// DatabaseURL is the Postgres connection string.
	// Required when StoreDriver is "postgres".
	DatabaseURL string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// RequireLocation makes area and region mandatory on submission. Defaults to true.
	RequireLocation bool

	// TranslateAPIKey enables Cloud Translation of listings when set.
	TranslateAPIKey string

	// TranslateCacheTTL is how long a translation is reused. Defaults to 10m.
	TranslateCacheTTL time.Duration

	// GeminiAPIKey enables generative story drafting when set. Without it the
	// story endpoint assembles the points with the fixed template.
	GeminiAPIKey string

	// GeminiModel defaults to "gemini-1.5-flash".
	GeminiModel string

	// GeminiBaseURL overrides the Generative Language API endpoint.
	GeminiBaseURL string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set and any
// values that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		StorePath:       getEnv("STORE_PATH", "stories.json"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		TranslateAPIKey: os.Getenv("TRANSLATE_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:   os.Getenv("GEMINI_BASE_URL"),
	}

	var missing, invalid []string

	switch cfg.StoreDriver {
	case DriverFile:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	default:
		invalid = append(invalid, fmt.Sprintf("STORE_DRIVER=%q (want %s or %s)", cfg.StoreDriver, DriverFile, DriverPostgres))
	}

	var err error
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	if cfg.RequireLocation, err = strconv.ParseBool(getEnv("REQUIRE_LOCATION", "true")); err != nil {
		invalid = append(invalid, "REQUIRE_LOCATION")
	}
	if cfg.TranslateCacheTTL, err = time.ParseDuration(getEnv("TRANSLATE_CACHE_TTL", "10m")); err != nil || cfg.TranslateCacheTTL < 0 {
		invalid = append(invalid, "TRANSLATE_CACHE_TTL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the log handler: "json" (default) or "text".
	LogFormat string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MigrateOnStart applies pending goose migrations before serving.
	MigrateOnStart bool

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// DBTrace logs every SQL statement at debug level.
	DBTrace bool
}

// raw is the shape decoded from the environment before defaults apply.
type raw struct {
	Port           string `koanf:"port"`
	DatabaseURL    string `koanf:"database_url"`
	LogLevel       string `koanf:"log_level"`
	LogFormat      string `koanf:"log_format"`
	CORSOrigins    string `koanf:"cors_origins"`
	MigrateOnStart bool   `koanf:"migrate_on_start"`
	MaxBodyBytes   int64  `koanf:"max_body_bytes"`
	DBTrace        bool   `koanf:"db_trace"`
}

const defaultMaxBodyBytes = 1 << 20

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	k := koanf.New(".")

	// Env names map to koanf keys by lowercasing: DATABASE_URL -> database_url.
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("config.Load: reading environment: %w", err)
	}

	var r raw
	if err := k.Unmarshal("", &r); err != nil {
		return Config{}, fmt.Errorf("config.Load: decoding environment: %w", err)
	}

	// Empty values fall back to defaults, the same as unset ones.
	cfg := Config{
		Port:           orDefault(r.Port, "8080"),
		DatabaseURL:    strings.TrimSpace(r.DatabaseURL),
		LogLevel:       strings.ToLower(orDefault(r.LogLevel, "info")),
		LogFormat:      strings.ToLower(orDefault(r.LogFormat, "json")),
		CORSOrigins:    splitCSV(orDefault(r.CORSOrigins, "http://localhost:5173")),
		MigrateOnStart: r.MigrateOnStart,
		MaxBodyBytes:   r.MaxBodyBytes,
		DBTrace:        r.DBTrace,
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT must be json or text, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
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

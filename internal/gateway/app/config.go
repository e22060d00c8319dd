package app

import (
	"os"
	"strconv"
	"time"

	"github.com/conexpo/registra/internal/gateway/domain"
)

type Config struct {
	UpstreamBaseURL string // Required: base URL of the remote registration API

	MasterKeyPath       string        // Optional: path to session-sealing master key file
	DatabaseFile        string        // Optional: path to SQLite audit database file (default: ./gateway.db)
	SessionTTL          time.Duration // Optional: session cookie lifetime (default: 7h)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		UpstreamBaseURL:     os.Getenv("UPSTREAM_BASE_URL"),
		MasterKeyPath:       os.Getenv("GATEWAY_MASTER_KEY_PATH"), // Optional
		DatabaseFile:        getEnvOrDefault("GATEWAY_DATABASE_FILE", "gateway.db"),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", domain.DefaultSessionTTL),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// SecureCookies reports whether session cookies should carry the Secure
// attribute. Only plain-HTTP local development opts out.
func (c Config) SecureCookies() bool {
	return c.Env != "dev"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Duration syntax first (e.g. "7h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

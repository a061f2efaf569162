package app

import (
	"os"
	"strconv"
	"time"

	"github.com/lakefield/tasklist/pkg/jwtx"
)

type Config struct {
	JWTSecret    string        // Required in prod: HS256 signing secret
	Issuer       string        // Optional: issuer claim for tokens
	TokenTTL     time.Duration // Optional: token lifetime (default: 24h)
	DatabaseFile string        // Optional: path to SQLite database file (default: ./todo.db)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		// Default only exists so a dev checkout runs out of the box.
		JWTSecret:    getEnvOrDefault("TODO_JWT_SECRET", "change-me-in-production"),
		Issuer:       getEnvOrDefault("TODO_ISSUER", "tasklist"),
		TokenTTL:     getEnvDurationOrDefault("TODO_TOKEN_TTL", jwtx.DefaultTokenTTL),
		DatabaseFile: getEnvOrDefault("TODO_DATABASE_FILE", "todo.db"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}

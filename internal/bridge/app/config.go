package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string // Required: issuer claim for access tokens
	BootstrapToken string // Optional: token required to perform bootstrap

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./bridge.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	MonitorInterval     time.Duration // Stuck settlement scan interval (default: 15m)
	MonitorMaxAge       time.Duration // Age before a pending settlement is flagged (default: 24h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       os.Getenv("BRIDGE_ISSUER"),
		DatabaseFile: getEnvOrDefault("BRIDGE_DATABASE_FILE", "bridge.db"),
		BootstrapToken: os.Getenv(
			"BOOTSTRAP_TOKEN",
		), // Optional: if set, required to perform bootstrap
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		MonitorInterval:     getEnvDurationOrDefault("MONITOR_INTERVAL", 15*time.Minute),
		MonitorMaxAge:       getEnvDurationOrDefault("MONITOR_MAX_AGE", 24*time.Hour),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "statefi-bridge"
	}

	return cfg
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

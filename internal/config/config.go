package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends.
const (
	BackendJSON     = "json"
	BackendDatabase = "database"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Storage  StorageConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// StorageConfig selects where the recipe book is loaded from and saved to.
type StorageConfig struct {
	Backend string
	Path    string
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	UseMock         bool
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level string
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
		),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), 0),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), 0),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), 0),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), 0),
		UseMock:         parseBoolWithDefault(os.Getenv("DATABASE_USE_MOCK"), false),
	}

	defaultBackend := BackendJSON
	if strings.TrimSpace(cfg.Database.URL) != "" || cfg.Database.UseMock {
		defaultBackend = BackendDatabase
	}

	cfg.Storage = StorageConfig{
		Backend: strings.ToLower(strings.TrimSpace(firstNonEmpty(
			os.Getenv("LARDER_STORAGE"),
			os.Getenv("STORAGE_BACKEND"),
			defaultBackend,
		))),
		Path: strings.TrimSpace(firstNonEmpty(
			os.Getenv("LARDER_DATA_PATH"),
			os.Getenv("DATA_PATH"),
			"data/recipebook.json",
		)),
	}

	cfg.Logging = LoggingConfig{
		Level: firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
	}

	switch cfg.Storage.Backend {
	case BackendJSON:
		if cfg.Storage.Path == "" {
			return Config{}, fmt.Errorf("storage path must not be empty")
		}
	case BackendDatabase:
	default:
		return Config{}, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

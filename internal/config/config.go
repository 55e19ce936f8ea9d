package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver       string
	DBPath         string
	DBDSN          string
	MigrationsPath string

	// CORS
	CORSAllowedOrigins []string

	// Rate Limiting
	RateLimitRequests      int
	RateLimitWindowMinutes int

	// Logging
	LogLevel string

	// Cloudinary (admin image uploads); empty disables the upload endpoint
	CloudinaryURL string

	// Database
	DBQueryTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		DBDriver:               getEnv("DB_DRIVER", "sqlite"),
		DBPath:                 getEnv("DB_PATH", "./data/sitecms.db"),
		DBDSN:                  getEnv("DB_DSN", ""),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "./internal/db/migrations"),
		CORSAllowedOrigins:     getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		RateLimitRequests:      getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindowMinutes: getEnvAsInt("RATE_LIMIT_WINDOW_MINUTES", 15),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		CloudinaryURL:          getEnv("CLOUDINARY_URL", ""),
		DBQueryTimeout:         time.Duration(getEnvAsInt("DB_QUERY_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	// Postgres needs an explicit DSN; fail fast instead of at first query
	if cfg.DBDriver == "postgres" || cfg.DBDriver == "pgx" {
		if cfg.DBDSN == "" {
			logger := MustInitLogger(cfg.Env, cfg.LogLevel)
			logger.Fatal("DB_DSN must be set when DB_DRIVER is postgres")
		}
	}

	return cfg
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Silently use default - logger not available yet during config load
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated values
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var result []string
	for _, v := range splitCommaSeparated(valueStr) {
		if trimmed := trimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}

// splitCommaSeparated splits a string by commas
func splitCommaSeparated(s string) []string {
	var parts []string
	current := ""
	for _, ch := range s {
		if ch == ',' {
			parts = append(parts, current)
			current = ""
		} else {
			current += string(ch)
		}
	}
	if current != "" {
		parts = append(parts, current)
	}
	return parts
}

// trimSpace removes leading and trailing whitespace
func trimSpace(s string) string {
	start := 0
	end := len(s)

	for start < end && (s[start] == ' ' || s[start] == '\t' || s[start] == '\n' || s[start] == '\r') {
		start++
	}

	for end > start && (s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == '\n' || s[end-1] == '\r') {
		end--
	}

	return s[start:end]
}

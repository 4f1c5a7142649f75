package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the scraper API
type Config struct {
	Server  ServerConfig
	Scraper ScraperConfig
}

type ServerConfig struct {
	// Bind port for the HTTP server
	Port int
}

type ScraperConfig struct {
	// Per-request timeout for outbound fetches
	RequestTimeout time.Duration
	// User agent sent when a source does not override it
	UserAgent string
	// Default record cap when the caller does not pass max_jobs
	DefaultMaxJobs int
}

// Load creates a Config from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnvInt("PORT", 8000),
		},
		Scraper: ScraperConfig{
			RequestTimeout: time.Duration(getEnvInt("SCRAPER_TIMEOUT_SECONDS", 15)) * time.Second,
			UserAgent:      getEnv("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			DefaultMaxJobs: getEnvInt("DEFAULT_MAX_JOBS", 10),
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

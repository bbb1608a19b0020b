// Package config provides configuration for the skincare service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Anthropic settings
	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string
	LLMTimeout       time.Duration

	// Conversation window passed to the router
	HistoryWindow int

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnvInt("HTTP_PORT", 8000),
		DatabaseURL:      getEnv("DATABASE_URL", "file:skinwise.db?cache=shared&mode=rwc"),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", ""),
		LLMTimeout:       time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		HistoryWindow:    getEnvInt("HISTORY_WINDOW", 10),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

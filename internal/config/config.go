// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Credential names the provider registry can ask for.
var credentialKeys = []string{
	"GEMINI_API_KEY",
	"OPENAI_API_KEY",
	"MIDJOURNEY_API_KEY",
	"CANVA_API_TOKEN",
}

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel slog.Level

	// Generation limits
	GenerateRateLimit int // requests per minute per client IP
	MaxVariants       int

	// Provider credentials keyed by env var name; absent keys are not stored.
	credentials map[string]string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a numeric value
// does not parse or if the rate limit is disabled in production.
func Load() (*Config, error) {
	cfg := &Config{
		Host:        envOrDefault("APP_HOST", "0.0.0.0"),
		Port:        envOrDefault("APP_PORT", "8080"),
		Env:         envOrDefault("APP_ENV", "development"),
		credentials: make(map[string]string),
	}

	defaultLevel := "info"
	if cfg.IsDev() {
		defaultLevel = "debug"
	}
	level, err := parseLevel(envOrDefault("LOG_LEVEL", defaultLevel))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.GenerateRateLimit, err = envInt("GENERATE_RATE_LIMIT", 30); err != nil {
		return nil, err
	}
	if cfg.MaxVariants, err = envInt("MAX_VARIANTS", 12); err != nil {
		return nil, err
	}
	if cfg.MaxVariants < 1 {
		return nil, fmt.Errorf("config: MAX_VARIANTS must be at least 1, got %d", cfg.MaxVariants)
	}

	for _, key := range credentialKeys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			cfg.credentials[key] = v
		}
	}

	if cfg.Env == "production" && cfg.GenerateRateLimit <= 0 {
		return nil, fmt.Errorf("config: GENERATE_RATE_LIMIT must be positive in production")
	}

	return cfg, nil
}

// Credential returns the configured value of a provider credential, or ""
// when it is not set. It satisfies ai.CredentialSource.
func (c *Config) Credential(name string) string {
	return c.credentials[name]
}

// ConfiguredCredentials returns the names of the credentials that are set,
// in a stable order. Values are never exposed.
func (c *Config) ConfiguredCredentials() []string {
	var names []string
	for _, key := range credentialKeys {
		if _, ok := c.credentials[key]; ok {
			names = append(names, key)
		}
	}
	return names
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt reads an integer environment variable, returning fallback if unset.
func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return l, nil
}

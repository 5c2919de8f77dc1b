// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"log/slog"
	"strings"
	"testing"
)

// allEnvVars lists every variable Load reads.
var allEnvVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL",
	"GENERATE_RATE_LIMIT", "MAX_VARIANTS",
	"GEMINI_API_KEY", "OPENAI_API_KEY", "MIDJOURNEY_API_KEY", "CANVA_API_TOKEN",
}

// clearEnv sets every variable Load reads to "", which envOrDefault treats
// the same as unset. t.Setenv restores the originals after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != "8080" || cfg.Env != "development" {
		t.Errorf("server defaults: got %s:%s env=%s", cfg.Host, cfg.Port, cfg.Env)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug in development", cfg.LogLevel)
	}
	if cfg.GenerateRateLimit != 30 {
		t.Errorf("GenerateRateLimit = %d, want 30", cfg.GenerateRateLimit)
	}
	if cfg.MaxVariants != 12 {
		t.Errorf("MaxVariants = %d, want 12", cfg.MaxVariants)
	}
	if got := cfg.ConfiguredCredentials(); len(got) != 0 {
		t.Errorf("ConfiguredCredentials = %v, want none", got)
	}
}

// TestLoad_EnvOverrides verifies that every environment variable is read.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "3000")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("GENERATE_RATE_LIMIT", "5")
	t.Setenv("MAX_VARIANTS", "4")
	t.Setenv("GEMINI_API_KEY", " gm-key ")
	t.Setenv("CANVA_API_TOKEN", "cv-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.GenerateRateLimit != 5 || cfg.MaxVariants != 4 {
		t.Errorf("limits: got rate=%d variants=%d", cfg.GenerateRateLimit, cfg.MaxVariants)
	}
	if got := cfg.Credential("GEMINI_API_KEY"); got != "gm-key" {
		t.Errorf("Credential(GEMINI_API_KEY) = %q, want trimmed value", got)
	}
	if got := cfg.Credential("OPENAI_API_KEY"); got != "" {
		t.Errorf("Credential(OPENAI_API_KEY) = %q, want empty", got)
	}
	if got := strings.Join(cfg.ConfiguredCredentials(), ","); got != "GEMINI_API_KEY,CANVA_API_TOKEN" {
		t.Errorf("ConfiguredCredentials = %q", got)
	}
}

func TestLoad_ProductionDefaultsToInfo(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "rate limit not a number", env: map[string]string{"GENERATE_RATE_LIMIT": "lots"}, wantErr: "GENERATE_RATE_LIMIT"},
		{name: "variants not a number", env: map[string]string{"MAX_VARIANTS": "1.5"}, wantErr: "MAX_VARIANTS"},
		{name: "zero variants", env: map[string]string{"MAX_VARIANTS": "0"}, wantErr: "at least 1"},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "chatty"}, wantErr: "LOG_LEVEL"},
		{name: "production without rate limit", env: map[string]string{"APP_ENV": "production", "GENERATE_RATE_LIMIT": "0"}, wantErr: "positive in production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestLoad_DevelopmentAllowsNoRateLimit verifies that non-production modes
// may disable the limiter.
func TestLoad_DevelopmentAllowsNoRateLimit(t *testing.T) {
	for _, env := range []string{"development", "testing"} {
		t.Run("env="+env, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", env)
			t.Setenv("GENERATE_RATE_LIMIT", "0")
			if _, err := Load(); err != nil {
				t.Fatalf("Load() should not error in %q mode, got: %v", env, err)
			}
		})
	}
}

// TestAddr verifies the server listen address format.
func TestAddr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{name: "default", host: "0.0.0.0", port: "8080", expected: "0.0.0.0:8080"},
		{name: "localhost with custom port", host: "127.0.0.1", port: "3000", expected: "127.0.0.1:3000"},
		{name: "empty host", host: "", port: "8080", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Port: tt.port}
			if got := cfg.Addr(); got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestIsDev verifies the IsDev method for various environment modes.
func TestIsDev(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{env: "development", expected: true},
		{env: "production", expected: false},
		{env: "testing", expected: false},
		{env: "", expected: false},
		{env: "Development", expected: false},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDev(); got != tt.expected {
				t.Errorf("IsDev() = %v, want %v", got, tt.expected)
			}
		})
	}
}

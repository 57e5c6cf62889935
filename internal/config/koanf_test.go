// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv unsets every mapped variable and CONFIG_PATH for the duration of
// the test, and moves into an empty directory so no config.yaml is found.
func isolateEnv(t *testing.T) string {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for k := range envMappings {
		keys = append(keys, strings.ToUpper(k))
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Dataset.URL != DefaultDatasetURL {
		t.Errorf("Dataset.URL = %q, want default sheet", cfg.Dataset.URL)
	}
	if cfg.Dataset.FetchTimeout != 30*time.Second {
		t.Errorf("Dataset.FetchTimeout = %v, want 30s", cfg.Dataset.FetchTimeout)
	}
	if cfg.Dataset.MaxBytes != 32<<20 {
		t.Errorf("Dataset.MaxBytes = %d, want 32MiB", cfg.Dataset.MaxBytes)
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Charts.Width != 800 || cfg.Charts.Height != 400 {
		t.Errorf("Charts = %+v, want 800x400", cfg.Charts)
	}
	if cfg.Predictor.DefaultPrice != 20 || cfg.Predictor.DefaultYear != 2015 {
		t.Errorf("Predictor = %+v, want price 20 year 2015", cfg.Predictor)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"DATASET_URL", "dataset.url"},
		{"DATASET_FETCH_TIMEOUT", "dataset.fetch_timeout"},
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CHART_WIDTH", "charts.width"},
		{"PREDICTOR_DEFAULT_YEAR", "predictor.default_year"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(path)

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH takes precedence", func(t *testing.T) {
		custom := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("logging:\n  level: debug\n"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, custom)

		if result := findConfigFile(); result != custom {
			t.Errorf("findConfigFile() = %q, want %q", result, custom)
		}
	})

	t.Run("CONFIG_PATH with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadWithKoanfDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Dataset.URL != DefaultDatasetURL {
		t.Errorf("Dataset.URL = %q, want default", cfg.Dataset.URL)
	}
	if cfg.Addr() != "0.0.0.0:8501" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8501", cfg.Addr())
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)

	t.Setenv("DATASET_URL", "/data/bestsellers.csv")
	t.Setenv("DATASET_FETCH_TIMEOUT", "45s")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CHART_WIDTH", "1024")
	t.Setenv("PREDICTOR_DEFAULT_PRICE", "12")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Dataset.URL != "/data/bestsellers.csv" {
		t.Errorf("Dataset.URL = %q", cfg.Dataset.URL)
	}
	if cfg.Dataset.FetchTimeout != 45*time.Second {
		t.Errorf("Dataset.FetchTimeout = %v, want 45s", cfg.Dataset.FetchTimeout)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Charts.Width != 1024 {
		t.Errorf("Charts.Width = %d, want 1024", cfg.Charts.Width)
	}
	if cfg.Predictor.DefaultPrice != 12 {
		t.Errorf("Predictor.DefaultPrice = %d, want 12", cfg.Predictor.DefaultPrice)
	}

	// Unset values keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Charts.Height != 400 {
		t.Errorf("Charts.Height = %d, want 400 (default)", cfg.Charts.Height)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	content := `
dataset:
  url: "https://example.com/books.csv?format=csv"
  max_bytes: 2048
server:
  port: 8080
  environment: staging
security:
  cors_origins:
    - https://dash.example.com
logging:
  level: warn
  format: console
`
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Dataset.URL != "https://example.com/books.csv?format=csv" {
		t.Errorf("Dataset.URL = %q", cfg.Dataset.URL)
	}
	if cfg.Dataset.MaxBytes != 2048 {
		t.Errorf("Dataset.MaxBytes = %d, want 2048", cfg.Dataset.MaxBytes)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "staging" {
		t.Errorf("Server.Environment = %q, want staging", cfg.Server.Environment)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://dash.example.com" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	dir := isolateEnv(t)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8080\nlogging:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env wins)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"invalid port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"invalid log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"invalid log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"unsupported dataset scheme", map[string]string{"DATASET_URL": "ftp://example.com/books.csv"}, "DATASET_URL"},
		{"dataset url without host", map[string]string{"DATASET_URL": "https:///books.csv"}, "DATASET_URL"},
		{"fetch timeout too short", map[string]string{"DATASET_FETCH_TIMEOUT": "10ms"}, "DATASET_FETCH_TIMEOUT"},
		{"max bytes too small", map[string]string{"DATASET_MAX_BYTES": "10"}, "DATASET_MAX_BYTES"},
		{"rate limit out of range", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
		{"chart too small", map[string]string{"CHART_HEIGHT": "10"}, "CHART_HEIGHT"},
		{"unknown environment", map[string]string{"ENVIRONMENT": "qa"}, "ENVIRONMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestRateLimitDisabledSkipsBounds(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when rate limiting is disabled", err)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("default environment should be development")
	}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS should not warn in development")
	}

	cfg.Server.Environment = "Production"
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false for Production")
	}
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS should warn in production")
	}
}

func TestValidateDatasetLocation(t *testing.T) {
	t.Parallel()

	valid := []string{
		DefaultDatasetURL,
		"http://localhost:8080/books.csv",
		"file:///data/books.csv",
		"./testdata/books.csv",
	}
	for _, v := range valid {
		if err := validateDatasetLocation(v, "DATASET_URL"); err != nil {
			t.Errorf("validateDatasetLocation(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{"", "   ", "s3://bucket/books.csv", "https://", "file://"}
	for _, v := range invalid {
		if err := validateDatasetLocation(v, "DATASET_URL"); err == nil {
			t.Errorf("validateDatasetLocation(%q) = nil, want error", v)
		}
	}
}

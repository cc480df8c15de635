package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate runs the test from an empty directory with a clean HOME so no
// .env or config.yaml on the machine leaks into Load
func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	for _, key := range []string{
		"CMC_VARIANT",
		"CMC_BASE_URL",
		"CMC_TIMEOUT",
		"LOG_LEVEL",
		"LOG_PRETTY",
		"COINMARKETCAP_API_KEY",
		"CMC_API_KEY",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolate(t)

	envVars := map[string]string{
		"CMC_VARIANT":  "v2",
		"CMC_BASE_URL": "https://test.coinmarketcap.com",
		"CMC_TIMEOUT":  "5s",
		"LOG_LEVEL":    "debug",
		"LOG_PRETTY":   "true",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Variant", cfg.Variant, "v2"},
		{"BaseURL", cfg.BaseURL, "https://test.coinmarketcap.com"},
		{"LogLevel", cfg.LogLevel, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if !cfg.LogPretty {
		t.Error("LogPretty = false, want true")
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Variant != "v1" {
		t.Errorf("Variant = %q, want v1", cfg.Variant)
	}
	if cfg.BaseURL != "https://pro-api.coinmarketcap.com" {
		t.Errorf("BaseURL = %q, want production", cfg.BaseURL)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_MissingAPIKeyIsNotAnError(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if got := cfg.Settings().GetString("CMC_API_KEY"); got != "" {
		t.Errorf("CMC_API_KEY = %q, want empty", got)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    map[string]string
		wantErrText string
	}{
		{
			name:        "unknown variant",
			setupEnv:    map[string]string{"CMC_VARIANT": "v3"},
			wantErrText: "CMC_VARIANT",
		},
		{
			name:        "negative timeout",
			setupEnv:    map[string]string{"CMC_TIMEOUT": "-1s"},
			wantErrText: "CMC_TIMEOUT",
		},
		{
			name:        "unparseable timeout",
			setupEnv:    map[string]string{"CMC_TIMEOUT": "soon"},
			wantErrText: "failed to unmarshal config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for key, value := range tt.setupEnv {
				t.Setenv(key, value)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}

			if !strings.Contains(err.Error(), tt.wantErrText) {
				t.Errorf("Load() error = %q, want error containing %q", err.Error(), tt.wantErrText)
			}
		})
	}
}

func TestLoad_DotEnvAndConfigFile(t *testing.T) {
	isolate(t)

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() returned unexpected error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CMC_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("cmc_variant: both\nlog_level: warn\n"), 0o600); err != nil {
		t.Fatalf("write config.yaml: %v", err)
	}
	// godotenv sets the variable process-wide; restore it afterwards.
	t.Cleanup(func() { os.Unsetenv("CMC_API_KEY") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Variant != VariantBoth {
		t.Errorf("Variant = %q, want %q", cfg.Variant, VariantBoth)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if got := cfg.Settings().GetString("CMC_API_KEY"); got != "from-dotenv" {
		t.Errorf("CMC_API_KEY = %q, want from-dotenv", got)
	}
}

func TestConfig_VariantNames(t *testing.T) {
	tests := []struct {
		variant string
		want    []string
		wantErr bool
	}{
		{"v1", []string{"v1"}, false},
		{"v2", []string{"v2"}, false},
		{"both", []string{"v1", "v2"}, false},
		{"all", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			got, err := (&Config{Variant: tt.variant}).VariantNames()
			if tt.wantErr {
				if err == nil {
					t.Error("VariantNames() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("VariantNames() returned unexpected error: %v", err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("VariantNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogPretty: true}

	lc := cfg.Logger()
	if lc.Level != "debug" || !lc.Pretty {
		t.Errorf("Logger() = %+v, want level debug and pretty", lc)
	}
}

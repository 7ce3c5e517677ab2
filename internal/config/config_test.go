package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(viper.New())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Difficulty != "medium" || cfg.CacheSize != 10000 || cfg.RedisTTL != 24*time.Hour || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionTTL != time.Hour || cfg.CleanupInterval != 10*time.Minute {
		t.Errorf("unexpected session cleanup defaults: %+v", cfg)
	}
	if cfg.SearchTimeout != 0 || cfg.ParallelWorkers != 0 || cfg.RedisURL != "" {
		t.Errorf("optional features should be off by default: %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("P4_DIFFICULTY", "hard")
	t.Setenv("P4_SEARCH_TIMEOUT", "1500ms")
	t.Setenv("P4_PARALLEL_WORKERS", "4")
	t.Setenv("P4_REDIS_URL", "localhost:6379")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Difficulty != "hard" || cfg.SearchTimeout != 1500*time.Millisecond ||
		cfg.ParallelWorkers != 4 || cfg.RedisURL != "localhost:6379" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"difficulty", "P4_DIFFICULTY", "impossible", "invalid difficulty"},
		{"workers", "P4_PARALLEL_WORKERS", "-2", "parallel_workers"},
		{"timeout", "P4_SEARCH_TIMEOUT", "-1s", "search_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig(viper.New())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("LoadConfig = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	if err := LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be skipped, got %v", err)
	}

	const key = "P4_TEST_DOTENV_VALUE"
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	if err := LoadEnvFiles(path); err != nil {
		t.Fatalf("LoadEnvFiles: %v", err)
	}
	if got := os.Getenv(key); got != "loaded" {
		t.Errorf("%s = %q, want loaded", key, got)
	}
}

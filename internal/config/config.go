package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "P4"

type Config struct {
	Difficulty      string        `mapstructure:"difficulty"`
	SearchTimeout   time.Duration `mapstructure:"search_timeout"`
	ParallelWorkers int           `mapstructure:"parallel_workers"`
	CacheSize       int           `mapstructure:"cache_size"`
	RedisURL        string        `mapstructure:"redis_url"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisTTL        time.Duration `mapstructure:"redis_ttl"`
	LogLevel        string        `mapstructure:"log_level"`
	LogDevelopment  bool          `mapstructure:"log_development"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// SetDefaults registers every key so environment variables are picked up
// by Unmarshal even when nothing else sets them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("difficulty", "medium")
	v.SetDefault("search_timeout", time.Duration(0))
	v.SetDefault("parallel_workers", 0)
	v.SetDefault("cache_size", 10000)
	v.SetDefault("redis_url", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_ttl", 24*time.Hour)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)
	v.SetDefault("session_ttl", time.Hour)
	v.SetDefault("cleanup_interval", 10*time.Minute)
}

// LoadEnvFiles loads .env style files into the process environment.
// Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// LoadConfig reads P4_* environment variables (and whatever flags were
// bound to v) on top of the defaults.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Difficulty {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("invalid difficulty %q: want easy, medium or hard", c.Difficulty)
	}
	if c.ParallelWorkers < 0 {
		return fmt.Errorf("parallel_workers must not be negative, got %d", c.ParallelWorkers)
	}
	if c.SearchTimeout < 0 {
		return fmt.Errorf("search_timeout must not be negative, got %s", c.SearchTimeout)
	}
	return nil
}

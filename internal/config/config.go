// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional yaml config file, then GOALCAST_* environment
// variables. A .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var envOnce sync.Once

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Addr                string `mapstructure:"addr" yaml:"addr"`
		ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds" yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" yaml:"write_timeout_seconds"`
	} `mapstructure:"server" yaml:"server"`

	Forecast struct {
		Cache struct {
			Enabled    bool `mapstructure:"enabled" yaml:"enabled"`
			TTLMinutes int  `mapstructure:"ttl_minutes" yaml:"ttl_minutes"`
		} `mapstructure:"cache" yaml:"cache"`
	} `mapstructure:"forecast" yaml:"forecast"`
}

// LoadEnv loads variables from a .env file in the working directory or its
// parent, once. Missing files are fine; real environment variables always
// win.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// Initialize builds the configuration from defaults, an optional config
// file and the environment.
func Initialize() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.goalcast")
	v.AddConfigPath(".goalcast")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GOALCAST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed config file should not kill the process; fall
			// back to defaults and environment.
			fmt.Fprintf(os.Stderr, "warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// LOG_LEVEL/LOG_FORMAT are honored unprefixed for parity with the
	// other deployment tooling.
	if err := v.BindEnv("log.level", "LOG_LEVEL", "GOALCAST_LOG_LEVEL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("log.format", "LOG_FORMAT", "GOALCAST_LOG_FORMAT"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.addr", ":8001")
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 30)

	v.SetDefault("forecast.cache.enabled", false)
	v.SetDefault("forecast.cache.ttl_minutes", 10)
}

func validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if cfg.Forecast.Cache.TTLMinutes <= 0 {
		return fmt.Errorf("forecast.cache.ttl_minutes must be positive")
	}
	return nil
}

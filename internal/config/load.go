package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "TASKR"

// defaults lists every known key with its default value. Keys without a
// meaningful default are registered with a zero value so that viper binds
// them to their environment variable during Unmarshal.
var defaults = map[string]any{
	"server.port":                        8080,
	"server.log_level":                   "info",
	"server.request_timeout_seconds":     30,
	"server.shutdown_timeout_seconds":    10,
	"server.cors_allowed_origins":        []string{},
	"database.url":                       "",
	"database.max_open_conns":            10,
	"database.max_idle_conns":            5,
	"database.conn_max_lifetime_minutes": 5,
	"database.auto_migrate":              true,
	"pagination.default_per_page":        10,
	"pagination.max_per_page":            100,
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom behaves like Load but looks for .env and config.yaml in dir.
// Lists such as server.cors_allowed_origins are comma separated in the environment.
func LoadFrom(dir string) (*Config, error) {
	// Values already in the environment win over the .env file
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

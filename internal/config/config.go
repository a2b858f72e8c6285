package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	RequestTimeoutSeconds  int      `mapstructure:"request_timeout_seconds" validate:"gt=0"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins" validate:"dive,required"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0,ltefield=MaxOpenConns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
	AutoMigrate            bool   `mapstructure:"auto_migrate"`
}

// PaginationConfig bounds the page size accepted by list endpoints.
type PaginationConfig struct {
	DefaultPerPage int `mapstructure:"default_per_page" validate:"gt=0,ltefield=MaxPerPage"`
	MaxPerPage     int `mapstructure:"max_per_page" validate:"gt=0"`
}

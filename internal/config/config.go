package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Study    StudyConfig    `mapstructure:"study" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
}

// ShutdownTimeout is the grace period given to in-flight requests on shutdown.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// ConnMaxLifetime returns the maximum lifetime of a pooled connection.
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeMinutes) * time.Minute
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lt=44640"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0,lt=44640,gtfield=TokenLifetimeMinutes"`
}

// StudyConfig contains the tunables of the study engine.
type StudyConfig struct {
	// KnownStreakThreshold is the number of consecutive correct answers after
	// which a card counts as known.
	KnownStreakThreshold int `mapstructure:"known_streak_threshold" validate:"required,gte=1,lte=100"`
	// CardCacheSize is the number of cards kept in memory; 0 disables the cache.
	CardCacheSize int `mapstructure:"card_cache_size" validate:"gte=0"`
}

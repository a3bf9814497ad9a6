// Package config provides configuration management for the Fairway Ledger service.
package config

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Analytics AnalyticsConfig `mapstructure:"analytics" validate:"required"`
	Wagers    WagerConfig     `mapstructure:"wagers" validate:"required"`
	Cache     CacheConfig     `mapstructure:"cache" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
	Health    HealthConfig    `mapstructure:"health" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// AnalyticsConfig represents score-trend configuration. The moving
// average window is clamped at computation time; these are the
// requested values.
type AnalyticsConfig struct {
	TrendMaxRounds int `mapstructure:"trend_max_rounds" validate:"required,gt=0"`
	TrendWindow    int `mapstructure:"trend_window" validate:"required,min=2"`
}

// WagerConfig represents wager defaults applied to sessions that do
// not carry their own amounts.
type WagerConfig struct {
	DefaultUnitCents int64 `mapstructure:"default_unit_cents" validate:"gte=0"`
}

// CacheConfig represents the course read-cache configuration
type CacheConfig struct {
	CourseTTLSeconds int `mapstructure:"course_ttl_seconds" validate:"required,gt=0"`
	CourseMaxEntries int `mapstructure:"course_max_entries" validate:"required,gt=0"`
}

// SchedulerConfig represents the background handicap refresh job
type SchedulerConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	HandicapRefreshCron string `mapstructure:"handicap_refresh_cron" validate:"required"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig represents the health check server configuration
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

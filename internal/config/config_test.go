package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validConfig() *Config {
	return &Config{
		App: AppConfig{Name: "fairway-ledger", Environment: "development", LogLevel: "info"},
		Database: DatabaseConfig{
			Host: "localhost", Port: 5432, Name: "fairway", User: "app",
			Password: "secret", SSLMode: "disable", MaxConnections: 10, MaxIdleConnections: 2,
		},
		Analytics: AnalyticsConfig{TrendMaxRounds: 10, TrendWindow: 5},
		Wagers:    WagerConfig{DefaultUnitCents: 500},
		Cache:     CacheConfig{CourseTTLSeconds: 300, CourseMaxEntries: 1000},
		Scheduler: SchedulerConfig{Enabled: true, HandicapRefreshCron: "0 4 * * *"},
		Metrics:   MetricsConfig{Enabled: true, Port: 9090, Path: "/metrics"},
		Health:    HealthConfig{Port: 8081},
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: fairway-ledger
  environment: staging
  log_level: debug
database:
  host: db.internal
  port: 5433
  name: fairway
  user: app
  password: hunter2
  ssl_mode: require
  max_connections: 20
  max_idle_connections: 4
analytics:
  trend_max_rounds: 12
  trend_window: 4
wagers:
  default_unit_cents: 1000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 12, cfg.Analytics.TrendMaxRounds)
	assert.Equal(t, int64(1000), cfg.Wagers.DefaultUnitCents)
	assert.False(t, cfg.IsProduction())
}

func TestLoadExpandsEnvironmentPlaceholders(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "from-env")
	path := writeConfigFile(t, `
database:
  password: ${TEST_DB_PASSWORD}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadWithDefaultsNoFile(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "fairway-ledger", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 10, cfg.Analytics.TrendMaxRounds)
	assert.Equal(t, 5, cfg.Analytics.TrendWindow)
	assert.Equal(t, int64(500), cfg.Wagers.DefaultUnitCents)
	assert.Equal(t, 300, cfg.Cache.CourseTTLSeconds)
	assert.Equal(t, "0 4 * * *", cfg.Scheduler.HandicapRefreshCron)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.Equal(t, 8081, cfg.Health.Port)
}

func TestLoadWithDefaultsFileOverrides(t *testing.T) {
	path := writeConfigFile(t, `
analytics:
  trend_max_rounds: 20
wagers:
  default_unit_cents: 250
`)

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Analytics.TrendMaxRounds)
	assert.Equal(t, int64(250), cfg.Wagers.DefaultUnitCents)
	// Unmentioned keys keep their defaults.
	assert.Equal(t, 5, cfg.Analytics.TrendWindow)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	cfg := validConfig()
	cfg.App.Environment = "qa"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.App.LogLevel = "verbose"

	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsWindowLargerThanHistory(t *testing.T) {
	cfg := validConfig()
	cfg.Analytics.TrendMaxRounds = 3
	cfg.Analytics.TrendWindow = 5

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trend_window")
}

func TestValidateRejectsPortCollision(t *testing.T) {
	cfg := validConfig()
	cfg.Metrics.Port = 8081

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestValidateAllowsPortCollisionWhenMetricsDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.Metrics.Enabled = false
	cfg.Metrics.Port = 8081

	assert.NoError(t, Validate(cfg))
}

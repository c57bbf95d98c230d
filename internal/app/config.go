package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/quillhq/quill-console/internal/database"
)

// Config represents the runtime configuration for the Quill console backend.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Probe      ProbeConfig      `mapstructure:"probe"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig describes connection options for the supported databases.
type DatabaseConfig struct {
	Driver   string       `mapstructure:"driver"`
	Path     string       `mapstructure:"path"`
	DSN      string       `mapstructure:"dsn"`
	SeedDemo bool         `mapstructure:"seed_demo_data"`
	Postgres DBAuthConfig `mapstructure:"postgres"`
	MySQL    DBAuthConfig `mapstructure:"mysql"`
}

// DBAuthConfig represents host based database parameters.
type DBAuthConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// MonitoringConfig enables health checks and metrics.
type MonitoringConfig struct {
	Prometheus PrometheusConfig `mapstructure:"prometheus"`
	Health     HealthConfig     `mapstructure:"health_check"`
}

// PrometheusConfig toggles metrics endpoints.
type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// HealthConfig toggles health endpoints.
type HealthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// TelemetryConfig controls the simulated reading sampler.
type TelemetryConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Schedule       string        `mapstructure:"schedule"`
	StreamInterval time.Duration `mapstructure:"stream_interval"`
}

// ProbeConfig controls connectivity test behaviour.
type ProbeConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoadConfig initialises application configuration using Viper with sensible defaults.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("./config")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	v.SetEnvPrefix("QUILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config, decodeHook()); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &config, nil
}

// DatabaseOptions converts the configured database section into connection
// options for the database package.
func (c *Config) DatabaseOptions() database.Config {
	opts := database.Config{
		Driver: c.Database.Driver,
		Path:   c.Database.Path,
		DSN:    c.Database.DSN,
	}

	switch strings.ToLower(c.Database.Driver) {
	case "postgres", "postgresql":
		opts.Host = c.Database.Postgres.Host
		opts.Port = c.Database.Postgres.Port
		opts.Name = c.Database.Postgres.Database
		opts.User = c.Database.Postgres.Username
		opts.Password = c.Database.Postgres.Password
	case "mysql":
		opts.Host = c.Database.MySQL.Host
		opts.Port = c.Database.MySQL.Port
		opts.Name = c.Database.MySQL.Database
		opts.User = c.Database.MySQL.Username
		opts.Password = c.Database.MySQL.Password
	}

	return opts
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/quill.sqlite")
	v.SetDefault("database.seed_demo_data", true)

	v.SetDefault("monitoring.prometheus.enabled", true)
	v.SetDefault("monitoring.prometheus.endpoint", "/metrics")
	v.SetDefault("monitoring.health_check.enabled", true)

	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.schedule", "*/15 * * * * *")
	v.SetDefault("telemetry.stream_interval", "2s")

	v.SetDefault("probe.timeout", "5s")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

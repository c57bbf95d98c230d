package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.True(t, cfg.Database.SeedDemo)
	require.True(t, cfg.Monitoring.Prometheus.Enabled)
	require.Equal(t, "/metrics", cfg.Monitoring.Prometheus.Endpoint)
	require.True(t, cfg.Telemetry.Enabled)
	require.Equal(t, "*/15 * * * * *", cfg.Telemetry.Schedule)
	require.Equal(t, 2*time.Second, cfg.Telemetry.StreamInterval)
	require.Equal(t, 5*time.Second, cfg.Probe.Timeout)
}

func TestLoadConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	contents := "" +
		"server:\n" +
		"  port: 7070\n" +
		"  allowed_origins:\n" +
		"    - http://console.local\n" +
		"telemetry:\n" +
		"  stream_interval: 500ms\n" +
		"probe:\n" +
		"  timeout: 250ms\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, []string{"http://console.local"}, cfg.Server.AllowedOrigins)
	require.Equal(t, 500*time.Millisecond, cfg.Telemetry.StreamInterval)
	require.Equal(t, 250*time.Millisecond, cfg.Probe.Timeout)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("QUILL_SERVER_PORT", "9090")
	t.Setenv("QUILL_DATABASE_DRIVER", "postgres")
	t.Setenv("QUILL_TELEMETRY_ENABLED", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.False(t, cfg.Telemetry.Enabled)
}

func TestDatabaseOptionsMapping(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = "postgres"
	cfg.Database.Postgres = DBAuthConfig{
		Host:     "db.local",
		Port:     5432,
		Database: "quill",
		Username: "quill",
		Password: "secret",
	}

	opts := cfg.DatabaseOptions()
	require.Equal(t, "postgres", opts.Driver)
	require.Equal(t, "db.local", opts.Host)
	require.Equal(t, 5432, opts.Port)
	require.Equal(t, "quill", opts.Name)
	require.Equal(t, "quill", opts.User)
	require.Equal(t, "secret", opts.Password)
}

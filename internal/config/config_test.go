package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Psql.Enabled)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "UTC", cfg.Scheduler.Timezone)
	assert.Equal(t, "0 0 * * *", cfg.Scheduler.DailyReset)
	assert.Equal(t, "0 0 1 * *", cfg.Scheduler.MonthlyReset)
	assert.Equal(t, "0 * * * *", cfg.Scheduler.StatusCheck)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Empty(t, cfg.Seed.File)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("SCHEDULER_TIMEZONE", "Europe/Berlin")
	t.Setenv("SCHEDULER_STATUS_CHECK", "*/15 * * * *")
	t.Setenv("SEED_FILE", "brands.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, "*/15 * * * *", cfg.Scheduler.StatusCheck)
	assert.Equal(t, "brands.yaml", cfg.Seed.File)

	loc, err := cfg.Scheduler.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadRejectsBadSchedule(t *testing.T) {
	t.Setenv("SCHEDULER_DAILY_RESET", "every day")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	t.Setenv("SCHEDULER_TIMEZONE", "Mars/Olympus")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}

func TestLoggerLevels(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	cfg.Log.Format = "JSON"
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	cfg.Log.Level = "warning"
	assert.Equal(t, "WARN", cfg.Log.SlogLevel().String())

	var buf bytes.Buffer
	cfg.Log.NewLogger(&buf).Warn("hello", "brand", "A")
	assert.Contains(t, buf.String(), `"brand":"A"`)
	buf.Reset()
	cfg.Log.NewLogger(&buf).Info("dropped")
	assert.Empty(t, buf.String())
}

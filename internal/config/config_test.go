package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[database]
host = "localhost"
user = "studio"
password = "secret"
dbname = "studio"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
	assert.Equal(t, 2.0, cfg.Booking.DefaultDurationHours)
	assert.Equal(t, 60, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, "09:00", cfg.Booking.DefaultWindowStart)
	assert.Equal(t, "17:00", cfg.Booking.DefaultWindowEnd)
	assert.Equal(t, "overlap", cfg.Booking.SlotOccupancy)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.RateLimit.TrustProxy)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.IdleTTL())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("OPERATOR_TOKEN", "op-token")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "op-token", cfg.Operator.Token)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_InvalidHTTPPortEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, minimalConfig))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		extra  string
		errMsg string
	}{
		{
			name:   "window start after end",
			extra:  "[booking]\ndefault_window_start = \"18:00\"\ndefault_window_end = \"09:00\"\n",
			errMsg: "default_window_start must be before",
		},
		{
			name:   "unknown occupancy mode",
			extra:  "[booking]\nslot_occupancy = \"nearest\"\n",
			errMsg: "slot_occupancy",
		},
		{
			name:   "unknown timezone",
			extra:  "[booking]\ntimezone = \"Mars/Olympus\"\n",
			errMsg: "timezone",
		},
		{
			name:   "cache without address",
			extra:  "[cache]\nenabled = true\n",
			errMsg: "cache.addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, minimalConfig+tt.extra))
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "studio", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=studio sslmode=disable", c.DSN())
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_DRIVER", "DASHBOARD_TIMEZONE", "DASHBOARD_TREND_CACHE_TTL", "RATE_LIMIT_MAX_ATTEMPTS", "SERVER_PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "Asia/Jakarta", cfg.Dashboard.Timezone)
	assert.Equal(t, 10*time.Minute, cfg.Dashboard.TrendCacheTTL)
	assert.Equal(t, 60, cfg.RateLimit.MaxAttempts)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:village.db")
	t.Setenv("DASHBOARD_TREND_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_MAX_ATTEMPTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "2m")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:village.db", cfg.Database.URL)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.TrendCacheTTL)
	assert.Equal(t, 5, cfg.RateLimit.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestDashboardConfig_Location(t *testing.T) {
	jakarta := DashboardConfig{Timezone: "Asia/Jakarta"}.Location()
	assert.Equal(t, "Asia/Jakarta", jakarta.String())

	fallback := DashboardConfig{Timezone: "Mars/Olympus_Mons"}.Location()
	assert.Equal(t, time.UTC, fallback)
}

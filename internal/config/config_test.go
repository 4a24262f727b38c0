package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROVIDER", "")
	t.Setenv("FR24_TIMEOUT", "")
	t.Setenv("AIRPORTS_DB_DRIVER", "")
	t.Setenv("AIRPORTS_DB_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderFlightradar24, cfg.Provider)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 5, cfg.FanoutWorkers)
	assert.False(t, cfg.AirportsDBEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PROVIDER", "DISABLED")
	t.Setenv("FR24_TIMEOUT", "3")
	t.Setenv("PROVIDER_CACHE_TTL", "30s")
	t.Setenv("FANOUT_WORKERS", "0")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,http://b.example")
	t.Setenv("AIRPORTS_DB_DRIVER", "SQLite")
	t.Setenv("AIRPORTS_DB_DSN", "file::memory:")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderDisabled, cfg.Provider)
	assert.Equal(t, 3*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 30*time.Second, cfg.ProviderCacheTTL)
	assert.Equal(t, 1, cfg.FanoutWorkers)
	assert.Equal(t, []string{"https://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "sqlite", cfg.AirportsDBDriver)
	assert.True(t, cfg.AirportsDBEnabled())
}

func TestDisplayLocation_FallsBackToUTC(t *testing.T) {
	cfg := &Config{DisplayTimezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.DisplayLocation())
}

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "travelrecords", cfg.MetricsNamespace)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, filepath.Join("data", "client_record.jsonl"), cfg.ClientDataFile)
	assert.Equal(t, filepath.Join("data", "airline_record.jsonl"), cfg.AirlineDataFile)
	assert.Equal(t, filepath.Join("data", "flight_record.jsonl"), cfg.FlightDataFile)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "5")
	t.Setenv("DATA_DIR", "/var/lib/travelrecords")
	t.Setenv("FLIGHT_DATA_FILE", "/tmp/flights.jsonl")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "/var/lib/travelrecords", cfg.DataDir)
	assert.Equal(t, filepath.Join("/var/lib/travelrecords", "client_record.jsonl"), cfg.ClientDataFile)
	assert.Equal(t, "/tmp/flights.jsonl", cfg.FlightDataFile)
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("WRITE_TIMEOUT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}

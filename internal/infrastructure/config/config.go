// internal/infrastructure/config/config.go
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string
	MetricsNamespace string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Record storage
	DataDir         string
	ClientDataFile  string
	AirlineDataFile string
	FlightDataFile  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	dataDir := getEnv("DATA_DIR", "data")

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:       getEnv("APP_VERSION", "1.0.0"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "travelrecords"),
		Port:             getEnv("PORT", "8080"),
		ReadTimeout:      time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:     time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		DataDir:         dataDir,
		ClientDataFile:  getEnv("CLIENT_DATA_FILE", filepath.Join(dataDir, "client_record.jsonl")),
		AirlineDataFile: getEnv("AIRLINE_DATA_FILE", filepath.Join(dataDir, "airline_record.jsonl")),
		FlightDataFile:  getEnv("FLIGHT_DATA_FILE", filepath.Join(dataDir, "flight_record.jsonl")),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

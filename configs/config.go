package config

import (
	"os"
	"time"
)

// DefaultPredictionAPIBaseURL は予測APIのデフォルト接続先です。
const DefaultPredictionAPIBaseURL = "http://localhost:5000"

// Config holds the application configuration
type Config struct {
	Port                 string
	PredictionAPIBaseURL string
	PredictionAPITimeout time.Duration
	Environment          string
	APIKey               string
	AdminUsername        string
	AdminPassword        string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		PredictionAPIBaseURL: getEnv("PREDICTION_API_BASE_URL", DefaultPredictionAPIBaseURL),
		PredictionAPITimeout: getDurationEnv("PREDICTION_API_TIMEOUT", 10*time.Second),
		Environment:          getEnv("ENVIRONMENT", "development"),
		APIKey:               getEnv("API_KEY", ""),
		AdminUsername:        getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:        getEnv("ADMIN_PASSWORD", "default_secret_key"),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable with a default value.
// 不正な値はデフォルトにフォールバックします。
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

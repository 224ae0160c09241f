package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// InitEnvironmentVariables loads a .env file in development. Production
// deployments inject real environment variables instead.
func InitEnvironmentVariables() {
	if os.Getenv("GO_ENV") == "production" {
		log.Info("Running in production environment")
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
}

// GetEnv returns a required environment variable.
func GetEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("environment variable %s not set", key)
	}

	return value, nil
}

// GetEnvOrDefault returns an optional environment variable with a
// fallback.
func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// GetEnv reads a variable from the environment, loading .env once on first use.
func GetEnv(key string) string {
	if os.Getenv(key) == "" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

// GetEnvOrDefault returns the environment value or the given fallback when unset.
func GetEnvOrDefault(key, fallback string) string {
	value := GetEnv(key)
	if value == "" {
		return fallback
	}
	return value
}

package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide flag defaults.
const (
	envConfig   = "SNAKE_CONFIG"
	envLogLevel = "SNAKE_LOG_LEVEL"
	envLogFile  = "SNAKE_LOG_FILE"
)

// loadDotEnv reads ./.env if present. Variables already set in the
// environment take precedence.
func loadDotEnv() {
	//nolint:errcheck // A missing .env is the common case
	godotenv.Load()
}

// envOr returns the value of key, or fallback when it is unset or empty.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

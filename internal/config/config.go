// Package config loads and validates environment variables at startup.
// Fail-fast: if a variable is set to an invalid value, the process exits
// with an error instead of limping along.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the jobscout API.
type Config struct {
	Port   string
	DBPath string
}

// Load reads environment variables and returns a validated Config.
// Both values have defaults, so an empty environment is fine for local runs.
func Load() (*Config, error) {
	port := os.Getenv("JOBSCOUT_PORT")
	if port == "" {
		port = "8080"
	}
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("JOBSCOUT_PORT must be a number, got %q", port)
	}

	dbPath := os.Getenv("JOBSCOUT_DB")
	if dbPath == "" {
		dbPath = "jobscout.db"
	}

	return &Config{
		Port:   port,
		DBPath: dbPath,
	}, nil
}

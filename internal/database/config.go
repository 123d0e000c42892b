package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds database configuration
type Config struct {
	// Path is the location of the SQLite database file. Deployment
	// concern only; nothing in the API contract depends on it.
	Path string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	return &Config{
		Path: getEnv("DB_PATH", "data/fintracker.db"),
	}, nil
}

// DSN returns the SQLite connection string. The busy timeout lets
// concurrent request connections wait out the writer lock instead of
// failing immediately with SQLITE_BUSY.
func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000", c.Path)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

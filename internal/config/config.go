package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	StorageDriver  string // "memory" or "sqlite"
	DatabasePath   string
	MigrationsPath string
	APIToken       string
}

// Load reads configuration from a .env file (if present) and the
// environment, with sensible defaults
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		StorageDriver:  getEnv("STORAGE_DRIVER", "memory"),
		DatabasePath:   getEnv("DB_PATH", "./ieltslab.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		APIToken:       getEnv("API_TOKEN", ""),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

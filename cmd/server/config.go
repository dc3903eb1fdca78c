package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"league-platform/backend/internal/db"
	"league-platform/backend/internal/redis"
)

// Config holds all configuration values for the application
type Config struct {
	// Database configuration
	DBConfig db.Config

	// Redis configuration (optional, used for locking and caching)
	RedisConfig  redis.Config
	RedisEnabled bool

	// Server configuration
	ServerPort  string
	Environment string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() Config {
	// Load .env file if it exists
	godotenv.Load()

	return Config{
		DBConfig: db.Config{
			Driver:   getEnv("DB_DRIVER", "mysql"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "league_platform"),
			Path:     getEnv("DB_PATH", "league.db"),
			Debug:    getEnv("ENV", "development") != "production",
		},
		RedisConfig: redis.Config{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RedisEnabled: getEnv("REDIS_ENABLED", "false") == "true",
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		Environment:  getEnv("ENV", "development"),
	}
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable or returns a fallback
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

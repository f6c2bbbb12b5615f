package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBConn   string
	LogLevel string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		DBConn:   os.Getenv("DB_CONNECTION_STRING"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Remote graph-processing service
	SubmissionEndpoint string
	SubmissionTimeout  time.Duration

	// Dynamic limits file (optional, watched for changes when set)
	LimitsPath string

	// Graph limits applied when no limits file is present
	MaxNodes int
	MaxEdges int

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		SubmissionEndpoint: getEnv("SUBMISSION_ENDPOINT", "http://localhost:5000"),
		SubmissionTimeout:  time.Duration(getEnvInt("SUBMISSION_TIMEOUT_MS", 15000)) * time.Millisecond,

		LimitsPath: getEnv("LIMITS_PATH", ""),
		MaxNodes:   getEnvInt("MAX_NODES", 0),
		MaxEdges:   getEnvInt("MAX_EDGES", 0),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.SubmissionEndpoint == "" {
		return fmt.Errorf("SUBMISSION_ENDPOINT is required")
	}
	if c.SubmissionTimeout <= 0 {
		return fmt.Errorf("SUBMISSION_TIMEOUT_MS must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Shift    ShiftConfig
	Cron     CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// ShiftConfig holds the inference engine thresholds.
type ShiftConfig struct {
	SelectionMargin    time.Duration
	LongPauseThreshold time.Duration
}

// CronConfig holds batch scheduling configuration.
type CronConfig struct {
	PrecomputeInterval time.Duration
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "janus"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Shift inference thresholds
	selectionMargin, err := time.ParseDuration(getEnv("SHIFT_SELECTION_MARGIN", "4h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_SELECTION_MARGIN: %w", err)
	}
	longPauseThreshold, err := time.ParseDuration(getEnv("SHIFT_LONG_PAUSE_THRESHOLD", "4h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_LONG_PAUSE_THRESHOLD: %w", err)
	}
	config.Shift = ShiftConfig{
		SelectionMargin:    selectionMargin,
		LongPauseThreshold: longPauseThreshold,
	}

	// Batch configuration
	precomputeInterval, err := time.ParseDuration(getEnv("PRECOMPUTE_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRECOMPUTE_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{
		PrecomputeInterval: precomputeInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Shift.SelectionMargin < 0 {
		return fmt.Errorf("SHIFT_SELECTION_MARGIN must not be negative")
	}
	if c.Shift.LongPauseThreshold < 0 {
		return fmt.Errorf("SHIFT_LONG_PAUSE_THRESHOLD must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Package config loads application configuration from a .env file plus
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	FMP     FMPConfig
	Chart   ChartConfig
	Logging LoggingConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port         string
	Mode         string // gin mode: debug, release
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatasetConfig struct {
	Path string
}

// FMPConfig holds the Financial Modeling Prep credential and endpoint. The
// API key is injected here and never embedded as a literal.
type FMPConfig struct {
	APIKey  string
	BaseURL string
}

type ChartConfig struct {
	CacheTTL time.Duration
}

type LoggingConfig struct {
	Level         string
	Format        string // json, pretty
	FileEnabled   bool
	FilePath      string
	RotationSize  int // MB
	RetentionDays int
}

type CORSConfig struct {
	AllowOrigins []string
}

// Load loads configuration from the .env file, falling back to the process
// environment for anything the file omits.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "debug"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Dataset: DatasetConfig{
			Path: getEnv("DATASET_PATH", "magic_formula_results.json"),
		},
		FMP: FMPConfig{
			APIKey:  getEnv("FMP_API_KEY", ""),
			BaseURL: getEnv("FMP_BASE_URL", "https://financialmodelingprep.com/api/v3"),
		},
		Chart: ChartConfig{
			CacheTTL: getEnvDuration("CHART_CACHE_TTL", 5*time.Minute),
		},
		Logging: LoggingConfig{
			Level:         getEnv("LOG_LEVEL", "info"),
			Format:        getEnv("LOG_FORMAT", "pretty"),
			FileEnabled:   getEnvBool("LOG_FILE_ENABLED", false),
			FilePath:      getEnv("LOG_FILE_PATH", "logs"),
			RotationSize:  getEnvInt("LOG_ROTATION_SIZE_MB", 100),
			RetentionDays: getEnvInt("LOG_RETENTION_DAYS", 14),
		},
		CORS: CORSConfig{
			AllowOrigins: []string{getEnv("CORS_ALLOW_ORIGIN", "*")},
		},
	}

	return cfg, nil
}

// getEnv gets an environment variable with a fallback.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

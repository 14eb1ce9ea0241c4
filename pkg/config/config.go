package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Backend       BackendConfig
	Map           MapConfig
	Log           LogConfig
	Observability ObservabilityConfig
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type MapConfig struct {
	DefaultZoom int
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Backend: BackendConfig{
			BaseURL: getEnv("TRAVELBOT_BACKEND_URL", "http://localhost:8000"),
			Timeout: getEnvDuration("TRAVELBOT_BACKEND_TIMEOUT", 30*time.Second),
		},
		Map: MapConfig{
			DefaultZoom: getEnvInt("TRAVELBOT_MAP_ZOOM", 13),
		},
		Log: LogConfig{
			Level:  getEnv("TRAVELBOT_LOG_LEVEL", "info"),
			Format: getEnv("TRAVELBOT_LOG_FORMAT", "text"),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvBool("TRAVELBOT_METRICS_ENABLED", false),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("TRAVELBOT_BACKEND_URL must not be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

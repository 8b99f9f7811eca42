package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

const (
	defaultMaxTextLength      = 5000
	defaultRateLimitPerSecond = 10.0
	defaultRateLimitBurst     = 20
)

type Config struct {
	AppEnv             string
	Port               string
	LogLevel           string
	LogFormat          string
	MaxTextLength      int
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged first when present; real environment variables win.
func Load() (*Config, error) {
	_ = gotenv.Load()

	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "5000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		MaxTextLength:      defaultMaxTextLength,
		RateLimitPerSecond: defaultRateLimitPerSecond,
		RateLimitBurst:     defaultRateLimitBurst,
	}

	if raw := os.Getenv("MAX_TEXT_LENGTH"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("MAX_TEXT_LENGTH must be an integer: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("MAX_TEXT_LENGTH must be positive, got %d", n)
		}
		cfg.MaxTextLength = n
	}

	if raw := os.Getenv("RATE_LIMIT_PER_SECOND"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_PER_SECOND must be a number: %w", err)
		}
		if f <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive, got %v", f)
		}
		cfg.RateLimitPerSecond = f
	}

	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_BURST must be an integer: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", n)
		}
		cfg.RateLimitBurst = n
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug/info/warn/error, got %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "json", "text", "pretty":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be one of json/text/pretty, got %q", cfg.LogFormat)
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

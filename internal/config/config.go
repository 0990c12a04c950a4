package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port              string
	Env               string
	LogLevel          zapcore.Level
	FreeWriteDuration time.Duration
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port: getEnv("MIRROR_PORT", "3000"),
		Env:  getEnv("MIRROR_ENV", "development"),
	}

	level, err := zapcore.ParseLevel(getEnv("MIRROR_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("MIRROR_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	secs, err := strconv.Atoi(getEnv("MIRROR_FREEWRITE_SECONDS", "180"))
	if err != nil {
		return nil, fmt.Errorf("MIRROR_FREEWRITE_SECONDS: %w", err)
	}
	if secs <= 0 {
		return nil, fmt.Errorf("MIRROR_FREEWRITE_SECONDS: must be positive, got %d", secs)
	}
	cfg.FreeWriteDuration = time.Duration(secs) * time.Second

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

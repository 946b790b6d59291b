package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Device       string
	BaudRate     int
	PollInterval time.Duration
	NATSURL      string
	RedisAddr    string
	DatabaseURL  string
	OutputDir    string
}

// Load loads the configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Device:       getEnv("GPS_DEVICE", "/dev/serial0"),
		BaudRate:     9600, // per the GPS module datasheet
		PollInterval: time.Second,
		NATSURL:      getEnv("NATS_URL", "nats://nats:4222"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		OutputDir:    getEnv("OUTPUT_DIR", "./logs"),
	}

	if v := os.Getenv("GPS_BAUD_RATE"); v != "" {
		baud, err := strconv.Atoi(v)
		if err != nil || baud <= 0 {
			return nil, fmt.Errorf("invalid GPS_BAUD_RATE %q", v)
		}
		cfg.BaudRate = baud
	}

	// The receiver updates at 1 Hz; the poll interval matches it by default.
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil || interval <= 0 {
			return nil, fmt.Errorf("invalid POLL_INTERVAL %q", v)
		}
		cfg.PollInterval = interval
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

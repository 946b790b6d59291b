package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GPS_DEVICE", "GPS_BAUD_RATE", "POLL_INTERVAL", "NATS_URL", "REDIS_ADDR", "DATABASE_URL", "OUTPUT_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Device != "/dev/serial0" {
		t.Errorf("Device = %q, want /dev/serial0", cfg.Device)
	}
	if cfg.BaudRate != 9600 {
		t.Errorf("BaudRate = %d, want 9600", cfg.BaudRate)
	}
	if cfg.PollInterval != time.Second {
		t.Errorf("PollInterval = %v, want 1s", cfg.PollInterval)
	}
	if cfg.NATSURL != "nats://nats:4222" {
		t.Errorf("NATSURL = %q, want nats://nats:4222", cfg.NATSURL)
	}
	if cfg.OutputDir != "./logs" {
		t.Errorf("OutputDir = %q, want ./logs", cfg.OutputDir)
	}
	if cfg.RedisAddr != "" || cfg.DatabaseURL != "" {
		t.Error("RedisAddr and DatabaseURL should default to empty")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GPS_DEVICE", "/dev/ttyUSB0")
	t.Setenv("GPS_BAUD_RATE", "38400")
	t.Setenv("POLL_INTERVAL", "100ms")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DATABASE_URL", "postgres://localhost/gps")
	t.Setenv("OUTPUT_DIR", "/var/log/gps")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Device != "/dev/ttyUSB0" {
		t.Errorf("Device = %q", cfg.Device)
	}
	if cfg.BaudRate != 38400 {
		t.Errorf("BaudRate = %d", cfg.BaudRate)
	}
	if cfg.PollInterval != 100*time.Millisecond {
		t.Errorf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.DatabaseURL != "postgres://localhost/gps" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.OutputDir != "/var/log/gps" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric baud rate", "GPS_BAUD_RATE", "fast"},
		{"negative baud rate", "GPS_BAUD_RATE", "-9600"},
		{"unparsable poll interval", "POLL_INTERVAL", "every second"},
		{"zero poll interval", "POLL_INTERVAL", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

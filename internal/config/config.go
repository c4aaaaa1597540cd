package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string
	ExportsPath    string
	LogLevel       string
}

func Load() *Config {
	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		SessionFile:    getEnv("SESSION_FILE", defaultSessionFile()),
		ExportsPath:    getEnv("EXPORTS_PATH", "exports"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".barbearia", "session.json")
}

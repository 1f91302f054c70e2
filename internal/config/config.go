package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration from environment.
type Config struct {
	HTTPPort       string
	DatabaseURL    string
	DBPoolSize     int
	SlackToken     string
	StartupChannel string
	TemplateDir    string
	ActionTTL      time.Duration
}

// Load reads configuration from the environment. It fails if a required
// value is absent so that misconfiguration aborts startup instead of
// surfacing mid-request.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBPoolSize:     getIntEnv("DB_POOL_SIZE", 20),
		SlackToken:     os.Getenv("SLACK_TOKEN"),
		StartupChannel: os.Getenv("SLACK_STARTUP_CHANNEL"),
		TemplateDir:    getEnv("TEMPLATE_DIR", "./templates"),
		ActionTTL:      time.Duration(getIntEnv("ACTION_TTL_SEC", 86400)) * time.Second,
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.SlackToken == "" {
		return nil, fmt.Errorf("SLACK_TOKEN is not set")
	}
	if cfg.StartupChannel == "" {
		return nil, fmt.Errorf("SLACK_STARTUP_CHANNEL is not set")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

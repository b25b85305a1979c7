package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// config holds everything the server reads from the environment. Values are
// loaded after godotenv so a local .env works the same as real env vars.
type config struct {
	DBURL      string
	ListenAddr string

	OpenAIBaseURL string
	OpenAIAPIKey  string // empty disables report generation
	OpenAIModel   string

	LogLevel  string
	LogFormat string
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// loadConfig reads the environment, applying defaults for anything unset.
func loadConfig() config {
	return config{
		DBURL:         os.Getenv("DB_URL"),
		ListenAddr:    getEnv("LISTEN_ADDR", "localhost:3000"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}
}

// validate reports every problem at once rather than stopping at the first.
func (c config) validate() error {
	var err error
	if c.DBURL == "" {
		err = multierr.Append(err, errors.New("DB_URL is required"))
	}
	if c.ListenAddr == "" {
		err = multierr.Append(err, errors.New("LISTEN_ADDR must not be empty"))
	}
	if !validLogLevels[c.LogLevel] {
		err = multierr.Append(err, fmt.Errorf("LOG_LEVEL %q must be one of: debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		err = multierr.Append(err, fmt.Errorf("LOG_FORMAT %q must be json or console", c.LogFormat))
	}
	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

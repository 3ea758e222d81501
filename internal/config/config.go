// Package config provides environment-sourced configuration for the
// analyzer.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config carries process configuration. Provider credentials are optional:
// an absent key disables the corresponding suggestion provider rather than
// failing startup.
type Config struct {
	Port int `validate:"gte=1,lte=65535"`

	// Gemini is the preferred remote suggestion provider.
	GeminiAPIKey string
	GeminiModel  string

	// OpenAI is the secondary remote suggestion provider.
	OpenAIAPIKey string
	OpenAIModel  string

	RateLimit       int           `validate:"gte=0"`
	RateLimitWindow time.Duration `validate:"gte=0"`

	Debug   bool
	LogJSON bool
}

var validate = validator.New()

// FromEnv loads configuration from environment variables, applying defaults
// for anything unset.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            8080,
		GeminiAPIKey:    firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"),
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     os.Getenv("OPENAI_MODEL"),
		RateLimit:       120,
		RateLimitWindow: time.Minute,
		Debug:           os.Getenv("DEBUG") != "",
		LogJSON:         os.Getenv("LOG_JSON") != "",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = limit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that numeric fields are within their valid ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}

// firstEnv returns the first non-empty value among the given variables.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

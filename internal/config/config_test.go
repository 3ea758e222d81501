package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GOOGLE_API_KEY", "GEMINI_API_KEY", "GEMINI_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL",
		"PORT", "RATE_LIMIT", "DEBUG", "LOG_JSON",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.False(t, cfg.Debug)
}

func TestFromEnv_GoogleKeyPreferredOverGeminiKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "google-key", cfg.GeminiAPIKey)
}

func TestFromEnv_GeminiKeyFallback(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("DEBUG", "1")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.True(t, cfg.Debug)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_PortOutOfRange(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PORT", "70000")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestValidate_NegativeRateLimit(t *testing.T) {
	cfg := &Config{Port: 8080, RateLimit: -1}
	assert.Error(t, cfg.Validate())
}

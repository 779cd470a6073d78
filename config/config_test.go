package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultDecisionModel, cfg.DecisionModel)
	assert.Equal(t, DefaultResponseModel, cfg.ResponseModel)
	assert.Equal(t, float32(DefaultTemperature), cfg.Temperature)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Len(t, cfg.ProviderURLs, 5)
	assert.Equal(t, "http://weather:8001", cfg.ProviderURLs["weather"])
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NVIDIA_API_KEY", "secret")
	t.Setenv("NVIDIA_BASE_URL", "http://localhost:9000/v1")
	t.Setenv("MAPS_SERVICE_URL", "http://localhost:8002")
	t.Setenv("DECISION_MODEL", "tiny-model")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("LLM_MAX_TOKENS", "512")
	t.Setenv("ORCHESTRATOR_PORT", "9999")

	cfg := Load()

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "http://localhost:9000/v1", cfg.BaseURL)
	assert.Equal(t, "http://localhost:8002", cfg.ProviderURLs["maps"])
	assert.Equal(t, "tiny-model", cfg.DecisionModel)
	assert.Equal(t, float32(0.7), cfg.Temperature)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.Equal(t, "9999", cfg.Port)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "warm")
	t.Setenv("LLM_MAX_TOKENS", "lots")

	cfg := Load()

	assert.Equal(t, float32(DefaultTemperature), cfg.Temperature)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
}

package config

import (
	"os"
	"strconv"
)

// Defaults match the hosted NIM endpoint and the models the pipeline was
// tuned against.
const (
	DefaultBaseURL       = "https://integrate.api.nvidia.com/v1"
	DefaultDecisionModel = "nvidia/llama-3.2-nv-embedqa-1b-v2"
	DefaultResponseModel = "meta/llama-3.1-70b-instruct"
	DefaultTemperature   = 0.2
	DefaultMaxTokens     = 2000
	DefaultPort          = "8000"
)

// Config holds every tunable the pipeline reads. It is built once at startup
// and passed down explicitly; nothing below main reads the environment.
type Config struct {
	// APIKey authorizes inference calls. An empty key is not a startup
	// error; the first inference attempt fails instead.
	APIKey  string
	BaseURL string

	// ProviderURLs maps provider name to its base URL. A missing entry
	// means the provider is unconfigured and its bundle slot carries an
	// error result.
	ProviderURLs map[string]string

	DecisionModel string
	ResponseModel string
	Temperature   float32
	MaxTokens     int

	Port string
}

// Load reads the environment into an immutable Config.
func Load() Config {
	return Config{
		APIKey:  os.Getenv("NVIDIA_API_KEY"),
		BaseURL: envOr("NVIDIA_BASE_URL", DefaultBaseURL),
		ProviderURLs: map[string]string{
			"weather":  envOr("WEATHER_SERVICE_URL", "http://weather:8001"),
			"maps":     envOr("MAPS_SERVICE_URL", "http://maps:8002"),
			"news":     envOr("NEWS_SERVICE_URL", "http://news:8003"),
			"social":   envOr("SOCIAL_SERVICE_URL", "http://social:8004"),
			"resource": envOr("RESOURCE_SERVICE_URL", "http://resource:8005"),
		},
		DecisionModel: envOr("DECISION_MODEL", DefaultDecisionModel),
		ResponseModel: envOr("RESPONSE_MODEL", DefaultResponseModel),
		Temperature:   envFloat("LLM_TEMPERATURE", DefaultTemperature),
		MaxTokens:     envInt("LLM_MAX_TOKENS", DefaultMaxTokens),
		Port:          envOr("ORCHESTRATOR_PORT", DefaultPort),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

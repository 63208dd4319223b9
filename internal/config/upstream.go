package config

import "time"

// PokeAPIConfig controls how we talk to the species/data provider.
type PokeAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// TCGConfig controls the trading-card lookup.
type TCGConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// GeminiConfig controls the recommendation lookup. An empty APIKey disables it.
type GeminiConfig struct {
	APIKey string
	Model  string
}

func loadPokeAPI() PokeAPIConfig {
	return PokeAPIConfig{
		BaseURL: envOrDefault(envPokeAPIBaseURL, defaultPokeAPIBaseURL),
		Timeout: durationEnvOrDefault(envPokeAPITimeout, defaultPokeAPITimeout),
	}
}

func loadTCG() TCGConfig {
	return TCGConfig{
		BaseURL: envOrDefault(envTCGBaseURL, defaultTCGBaseURL),
		APIKey:  envOrDefault(envTCGAPIKey, ""),
		Timeout: durationEnvOrDefault(envTCGTimeout, defaultTCGTimeout),
	}
}

func loadGemini() GeminiConfig {
	return GeminiConfig{
		APIKey: envOrDefault(envGeminiAPIKey, ""),
		Model:  envOrDefault(envGeminiModel, defaultGeminiModel),
	}
}

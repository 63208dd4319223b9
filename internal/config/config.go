package config

import "github.com/joho/godotenv"

// envFile is loaded before reading the environment; variables already set win.
var envFile = ".env"

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port     string
	Provider string
	Logging  LoggingConfig
	Server   ServerConfig
	PokeAPI  PokeAPIConfig
	TCG      TCGConfig
	Gemini   GeminiConfig
	Metrics  MetricsConfig
}

// LoggingConfig controls slog handler selection.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load(envFile)

	return Config{
		Port:     portEnvOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
		Server:  loadServer(),
		PokeAPI: loadPokeAPI(),
		TCG:     loadTCG(),
		Gemini:  loadGemini(),
		Metrics: loadMetrics(),
	}
}

package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envReadTimeout     = "SERVER_READ_TIMEOUT"
	envWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envIdleTimeout     = "SERVER_IDLE_TIMEOUT"
	envShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"

	envPokeAPIBaseURL = "POKEAPI_BASE_URL"
	envPokeAPITimeout = "POKEAPI_TIMEOUT"
	envTCGBaseURL     = "TCG_BASE_URL"
	envTCGAPIKey      = "TCG_API_KEY"
	envTCGTimeout     = "TCG_TIMEOUT"
	envGeminiAPIKey   = "GEMINI_API_KEY"
	envGeminiModel    = "GEMINI_MODEL"

	defaultPort        = "4000"
	defaultProvider    = "fixture"
	defaultMetricsPort = "9090"
	defaultServiceName = "pokedex-service"

	defaultPokeAPIBaseURL = "https://pokeapi.co/api/v2"
	defaultPokeAPITimeout = 10 * time.Second
	defaultTCGBaseURL     = "https://api.pokemontcg.io/v2"
	// Card lookups are optional enrichment; keep the wait short so detail responses are not held up.
	defaultTCGTimeout  = 3 * time.Second
	defaultGeminiModel = "gemini-2.5-flash"
)

package config

import "time"

// ServerConfig carries the HTTP server deadlines. Zero values mean the
// server's own defaults apply.
type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadServer() ServerConfig {
	return ServerConfig{
		ReadTimeout:     durationEnvOrDefault(envReadTimeout, 0),
		WriteTimeout:    durationEnvOrDefault(envWriteTimeout, 0),
		IdleTimeout:     durationEnvOrDefault(envIdleTimeout, 0),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, 0),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         portEnvOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

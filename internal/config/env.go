package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envValue reads key, trims it and hands it to parse. Blank values and values
// parse rejects resolve to fallback.
func envValue[T any](key string, fallback T, parse func(string) (T, bool)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if v, ok := parse(raw); ok {
		return v
	}
	return fallback
}

func envOrDefault(key, defaultValue string) string {
	return envValue(key, defaultValue, func(raw string) (string, bool) { return raw, true })
}

// durationEnvOrDefault rejects unparsable and non-positive values.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	return envValue(key, defaultValue, func(raw string) (time.Duration, bool) {
		d, err := time.ParseDuration(raw)
		return d, err == nil && d > 0
	})
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	return envValue(key, defaultValue, func(raw string) (bool, bool) {
		switch strings.ToLower(raw) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off":
			return false, true
		}
		return false, false
	})
}

// portEnvOrDefault accepts only TCP port numbers.
func portEnvOrDefault(key, defaultValue string) string {
	return envValue(key, defaultValue, func(raw string) (string, bool) {
		n, err := strconv.Atoi(raw)
		return raw, err == nil && n > 0 && n <= 65535
	})
}

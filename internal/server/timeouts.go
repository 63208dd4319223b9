package server

import (
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/config"
)

// A detail request makes three sequential PokeAPI calls before the enrichment
// fan-out, so the write deadline sits above their combined client timeouts.
const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 45 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

type timeouts struct {
	read     time.Duration
	write    time.Duration
	idle     time.Duration
	shutdown time.Duration
}

func resolveTimeouts(cfg config.ServerConfig) timeouts {
	return timeouts{
		read:     positiveOr(cfg.ReadTimeout, defaultReadTimeout),
		write:    positiveOr(cfg.WriteTimeout, defaultWriteTimeout),
		idle:     positiveOr(cfg.IdleTimeout, defaultIdleTimeout),
		shutdown: positiveOr(cfg.ShutdownTimeout, defaultShutdownTimeout),
	}
}

func positiveOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
